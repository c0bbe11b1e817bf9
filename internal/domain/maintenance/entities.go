package maintenance

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var (
	ErrNotFound          = errors.New("maintenance request not found")
	ErrInvalidTransition = errors.New("invalid maintenance status transition")
)

// CanTransition reports whether moving from s to next is legal.
// Re-sending the current status is a no-op update, not a transition.
func (s Status) CanTransition(next Status) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

type Request struct {
	ID             uint64           `gorm:"primaryKey;column:id" json:"id"`
	PropertyID     uint64           `gorm:"column:property_id;not null;index" json:"property_id"`
	TenantID       uint64           `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	Description    string           `gorm:"type:text;not null" json:"description"`
	Priority       Priority         `gorm:"type:enum('Low','Medium','High');default:'Medium'" json:"priority"`
	Cost           *decimal.Decimal `gorm:"type:decimal(12,2)" json:"cost"`
	CompletionDate *time.Time       `gorm:"type:date" json:"completion_date"`
	Status         Status           `gorm:"type:enum('Pending','In Progress','Completed','Cancelled');default:'Pending'" json:"status"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Request) TableName() string { return "maintenance_requests" }
