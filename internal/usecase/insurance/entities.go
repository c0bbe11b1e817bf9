package insurance

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateOfferInput struct {
	PropertyID       uint64
	TenantID         uint64
	Provider         string
	CoverageType     string
	CoverageAmount   decimal.Decimal
	PremiumAmount    decimal.Decimal
	PremiumFrequency string
	StartDate        time.Time
	EndDate          time.Time
	Terms            string
	Benefits         string
}

type RespondInput struct {
	OfferID        uint64
	Decision       string // Accepted | Rejected
	TenantResponse string
}

type OfferDTO struct {
	ID             uint64          `json:"id"`
	PropertyID     uint64          `json:"property_id"`
	TenantID       uint64          `json:"tenant_id"`
	Provider       string          `json:"provider"`
	CoverageAmount decimal.Decimal `json:"coverage_amount"`
	PremiumAmount  decimal.Decimal `json:"premium_amount"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

type RespondDTO struct {
	OfferID      uint64 `json:"offer_id"`
	Status       string `json:"status"`
	PolicyNumber string `json:"policy_number,omitempty"`
}
