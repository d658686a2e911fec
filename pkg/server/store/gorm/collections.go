package gorm

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	"github.com/collectionshq/collections-in-go/pkg/model"
	"github.com/collectionshq/collections-in-go/pkg/server/store"
)

// Operation kinds recorded alongside collection mutations.
const (
	operationKindCreate = "createCollection"
	operationKindDelete = "deleteCollection"
)

var _ store.CollectionsStore = (*CollectionsStore)(nil)

// CollectionsStore is the PostgreSQL-backed implementation of
// store.CollectionsStore.
type CollectionsStore struct {
	db *gorm.DB
}

func NewCollectionsStore(db *gorm.DB) *CollectionsStore {
	return &CollectionsStore{db: db}
}

// CreateCollection inserts a collection and its operation row in one
// transaction. Parent existence and sibling-title uniqueness are checked
// against live rows inside the transaction; the partial unique index on
// (parent_id, title) settles races between concurrent creates.
func (s *CollectionsStore) CreateCollection(
	params store.CreateCollectionParams,
) (*model.Collection, *model.Operation, error) {
	collection := &model.Collection{
		CollectionID: uuid.NewString(),
		Title:        params.Title,
		Description:  params.Description,
		ParentID:     params.ParentID,
		CreatedBy:    params.CreatedBy,
	}
	operation := &model.Operation{
		OperationID: uuid.NewString(),
		EntityID:    collection.CollectionID,
		Kind:        operationKindCreate,
		Status:      model.OperationStatusDone,
		CreatedBy:   params.CreatedBy,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if params.ParentID != nil {
			var count int64
			err := tx.Model(&model.Collection{}).
				Where("collection_id = ? AND deleted_at IS NULL", *params.ParentID).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count == 0 {
				return store.ErrParentNotFound
			}
		}

		siblings := tx.Model(&model.Collection{}).
			Where("title = ? AND deleted_at IS NULL", params.Title)
		if params.ParentID == nil {
			siblings = siblings.Where("parent_id IS NULL")
		} else {
			siblings = siblings.Where("parent_id = ?", *params.ParentID)
		}
		var count int64
		if err := siblings.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return store.ErrTitleConflict
		}

		if err := tx.Create(collection).Error; err != nil {
			return err
		}
		return tx.Create(operation).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the race against a concurrent create of the same
			// (parent_id, title); the index is the source of truth.
			return nil, nil, store.ErrTitleConflict
		}
		return nil, nil, err
	}

	return collection, operation, nil
}

// GetCollection fetches a live collection by id.
func (s *CollectionsStore) GetCollection(collectionID string) (*model.Collection, error) {
	var collection model.Collection
	err := s.db.
		Where("collection_id = ? AND deleted_at IS NULL", collectionID).
		First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrCollectionNotFound
		}
		return nil, err
	}
	return &collection, nil
}

// DeleteCollection soft-deletes a live collection and records the operation.
func (s *CollectionsStore) DeleteCollection(collectionID string, deletedBy string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Collection{}).
			Where("collection_id = ? AND deleted_at IS NULL", collectionID).
			Update("deleted_at", time.Now())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return store.ErrCollectionNotFound
		}

		return tx.Create(&model.Operation{
			OperationID: uuid.NewString(),
			EntityID:    collectionID,
			Kind:        operationKindDelete,
			Status:      model.OperationStatusDone,
			CreatedBy:   deletedBy,
		}).Error
	})
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation
// (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
