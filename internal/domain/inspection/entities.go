package inspection

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusRejected  Status = "Rejected"
)

type RequestType string

const (
	TypeOwnerInitiated  RequestType = "Owner Initiated"
	TypeTenantRequested RequestType = "Tenant Requested"
)

var (
	ErrNotFound          = errors.New("inspection request not found")
	ErrInvalidTransition = errors.New("invalid inspection status transition")
)

func (s Status) CanTransition(next Status) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusScheduled || next == StatusRejected
	case StatusScheduled:
		return next == StatusCompleted
	default:
		return false
	}
}

type Request struct {
	ID            uint64      `gorm:"primaryKey;column:id" json:"id"`
	PropertyID    uint64      `gorm:"column:property_id;not null;index" json:"property_id"`
	TenantID      *uint64     `gorm:"column:tenant_id;index" json:"tenant_id"`
	RequestType   RequestType `gorm:"type:enum('Owner Initiated','Tenant Requested');not null" json:"request_type"`
	ScheduledDate *time.Time  `gorm:"type:date" json:"scheduled_date"`
	Findings      string      `gorm:"type:text" json:"findings"`
	Status        Status      `gorm:"type:enum('Pending','Scheduled','Completed','Rejected');default:'Pending'" json:"status"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Request) TableName() string { return "inspection_requests" }
