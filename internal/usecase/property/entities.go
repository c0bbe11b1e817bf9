package property

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	Address       string
	City          string
	PropertyType  string
	PurchasePrice decimal.Decimal
	CurrentValue  decimal.Decimal
	OwnerID       *uint64
}

type PropertyDTO struct {
	ID            uint64          `json:"id"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	PropertyType  string          `json:"property_type"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	Status        string          `json:"status"`
	OwnerID       *uint64         `json:"owner_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
