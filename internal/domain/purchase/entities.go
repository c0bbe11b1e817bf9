package purchase

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

var (
	ErrNotFound        = errors.New("purchase request not found")
	ErrAlreadyReviewed = errors.New("purchase request already reviewed")
	ErrInvalidDecision = errors.New("decision must be Approved or Rejected")
)

type Request struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"id"`
	PropertyID    uint64          `gorm:"column:property_id;not null;index" json:"property_id"`
	TenantID      uint64          `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	OfferPrice    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"offer_price"`
	Message       string          `gorm:"type:text" json:"message"`
	OwnerResponse string          `gorm:"type:text" json:"owner_response"`
	Status        RequestStatus   `gorm:"type:enum('Pending','Approved','Rejected');default:'Pending'" json:"status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Request) TableName() string { return "purchase_requests" }
