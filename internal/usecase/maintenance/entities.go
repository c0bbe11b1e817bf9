package maintenance

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	PropertyID  uint64
	TenantID    uint64
	Description string
	Priority    string
}

// UpdateInput carries the full payload; the status-only endpoint feeds
// the same struct with nothing but RequestID and Status set.
type UpdateInput struct {
	RequestID      uint64
	Status         string
	Description    *string
	Priority       *string
	Cost           *decimal.Decimal
	CompletionDate *time.Time
}

type RequestDTO struct {
	ID             uint64           `json:"id"`
	PropertyID     uint64           `json:"property_id"`
	TenantID       uint64           `json:"tenant_id"`
	Description    string           `json:"description"`
	Priority       string           `json:"priority"`
	Cost           *decimal.Decimal `json:"cost,omitempty"`
	CompletionDate *time.Time       `json:"completion_date,omitempty"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
}
