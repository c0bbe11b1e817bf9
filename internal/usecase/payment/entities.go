package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	LeaseID       uint64
	Amount        decimal.Decimal
	DueDate       time.Time
	PaymentMethod string
}

type ConfirmInput struct {
	PaymentID uint64
	Status    string // Pending | Paid | Overdue | Failed
	Notes     *string
	LateFee   *decimal.Decimal // adjustable only on confirmation
}

type PaymentDTO struct {
	ID          uint64          `json:"id"`
	LeaseID     uint64          `json:"lease_id"`
	Amount      decimal.Decimal `json:"amount"`
	LateFee     decimal.Decimal `json:"late_fee"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
	DueDate     time.Time       `json:"due_date"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
}
