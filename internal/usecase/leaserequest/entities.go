package leaserequest

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	PropertyID  uint64
	TenantID    uint64
	StartDate   time.Time
	EndDate     time.Time
	MonthlyRent decimal.Decimal
	Message     string
}

type ReviewInput struct {
	RequestID     uint64
	Decision      string // Approved | Rejected
	OwnerResponse string
}

type RequestDTO struct {
	ID          uint64          `json:"id"`
	PropertyID  uint64          `json:"property_id"`
	TenantID    uint64          `json:"tenant_id"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ReviewDTO struct {
	RequestID     uint64  `json:"request_id"`
	Status        string  `json:"status"`
	OwnerResponse string  `json:"owner_response"`
	LeaseID       *uint64 `json:"lease_id,omitempty"`
}
