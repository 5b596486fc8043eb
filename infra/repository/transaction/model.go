package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents a persisted ledger entry.
type Transaction struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Type         string    `gorm:"type:varchar(16);not null"`
	Amount       int64     `gorm:"not null"`
	Screenshot   string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	AdminComment string    `gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time
	ApprovedAt   *time.Time
	ApprovedBy   *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
