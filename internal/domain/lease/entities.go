package lease

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive     Status = "Active"
	StatusExpired    Status = "Expired"
	StatusPending    Status = "Pending"
	StatusTerminated Status = "Terminated"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

var (
	ErrNotFound        = errors.New("lease not found")
	ErrRequestNotFound = errors.New("lease request not found")
	ErrAlreadyReviewed = errors.New("lease request already reviewed")
	ErrInvalidDecision = errors.New("decision must be Approved or Rejected")
	ErrDuplicateRequest = errors.New("tenant already has a pending request for this property")
)

type Lease struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"id"`
	PropertyID  uint64          `gorm:"column:property_id;not null;index" json:"property_id"`
	TenantID    uint64          `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	StartDate   time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time       `gorm:"type:date;not null" json:"end_date"`
	MonthlyRent decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monthly_rent"`
	Status      Status          `gorm:"type:enum('Active','Expired','Pending','Terminated');default:'Active'" json:"status"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Lease) TableName() string { return "leases" }

type Request struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"id"`
	PropertyID    uint64          `gorm:"column:property_id;not null;index" json:"property_id"`
	TenantID      uint64          `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	StartDate     time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate       time.Time       `gorm:"type:date;not null" json:"end_date"`
	MonthlyRent   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monthly_rent"`
	Message       string          `gorm:"type:text" json:"message"`
	OwnerResponse string          `gorm:"type:text" json:"owner_response"`
	Status        RequestStatus   `gorm:"type:enum('Pending','Approved','Rejected');default:'Pending'" json:"status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Request) TableName() string { return "lease_requests" }
