package model

import "time"

// Collection represents a node in the collections forest. Hierarchy is stored
// as a parent pointer only; children are derived from the (parent_id, title)
// index, never owned by the parent row.
type Collection struct {
	CollectionID string     `gorm:"column:collection_id;primaryKey"`
	Title        string     `gorm:"column:title;not null"`
	Description  *string    `gorm:"column:description"`
	ParentID     *string    `gorm:"column:parent_id"`
	CreatedBy    string     `gorm:"column:created_by;not null"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    *time.Time `gorm:"column:deleted_at"`
}

func (Collection) TableName() string {
	return "collections"
}
