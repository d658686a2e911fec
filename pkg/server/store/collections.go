package store

import (
	"errors"

	"github.com/collectionshq/collections-in-go/pkg/model"
)

// ErrCollectionNotFound is returned when no live collection exists with the
// requested id.
var ErrCollectionNotFound = errors.New("collection not found")

// ErrParentNotFound is returned on create when the referenced parent does not
// exist or has been deleted.
var ErrParentNotFound = errors.New("parent collection not found")

// ErrTitleConflict is returned on create when a live sibling under the same
// parent already carries the requested title.
var ErrTitleConflict = errors.New("sibling collection with the same title already exists")

// CreateCollectionParams carries the fields needed to create a collection.
// A nil ParentID creates a root collection.
type CreateCollectionParams struct {
	Title       string
	Description *string
	ParentID    *string
	CreatedBy   string
}

// CollectionsStore persists the collections forest. Creates and deletes also
// record an Operation row in the same transaction.
type CollectionsStore interface {
	CreateCollection(params CreateCollectionParams) (*model.Collection, *model.Operation, error)
	GetCollection(collectionID string) (*model.Collection, error)
	DeleteCollection(collectionID string, deletedBy string) error
}

// HealthStore reports on the availability of the backing database.
type HealthStore interface {
	CheckConnectivity() error
}
