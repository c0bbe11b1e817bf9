package purchaserequest

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	PropertyID uint64
	TenantID   uint64
	OfferPrice decimal.Decimal
	Message    string
}

type ReviewInput struct {
	RequestID     uint64
	Decision      string // Approved | Rejected
	OwnerResponse string
}

type RequestDTO struct {
	ID         uint64          `json:"id"`
	PropertyID uint64          `json:"property_id"`
	TenantID   uint64          `json:"tenant_id"`
	OfferPrice decimal.Decimal `json:"offer_price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ReviewDTO struct {
	RequestID     uint64 `json:"request_id"`
	Status        string `json:"status"`
	OwnerResponse string `json:"owner_response"`
	DocumentFile  string `json:"document_file,omitempty"`
}
