package model

import "time"

// Operation statuses. Mutations in this service are synchronous, so an
// operation is recorded as done the moment its entity is committed.
const (
	OperationStatusDone = "done"
)

// Operation records the lifecycle operation that produced or modified an
// entity. One row is written in the same transaction as the mutation it
// describes.
type Operation struct {
	OperationID string    `gorm:"column:operation_id;primaryKey"`
	EntityID    string    `gorm:"column:entity_id;not null"`
	Kind        string    `gorm:"column:kind;not null"`
	Status      string    `gorm:"column:status;not null"`
	CreatedBy   string    `gorm:"column:created_by;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Operation) TableName() string {
	return "operations"
}
