package payment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "Pending"
	StatusPaid    Status = "Paid"
	StatusOverdue Status = "Overdue"
	StatusFailed  Status = "Failed"
)

var (
	ErrNotFound      = errors.New("payment not found")
	ErrInvalidStatus = errors.New("payment status must be Pending, Paid, Overdue or Failed")
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue, StatusFailed:
		return true
	}
	return false
}

// Payment is tied to a Lease; the tenant is derived through it, the
// row does not store a tenant id of its own.
type Payment struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"id"`
	LeaseID       uint64          `gorm:"column:lease_id;not null;index" json:"lease_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	LateFee       decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"late_fee"`
	PaymentMethod string          `gorm:"size:50" json:"payment_method"`
	PaymentDate   *time.Time      `gorm:"type:date" json:"payment_date"`
	DueDate       time.Time       `gorm:"type:date;not null" json:"due_date"`
	Notes         string          `gorm:"type:text" json:"notes"`
	Status        Status          `gorm:"type:enum('Pending','Paid','Overdue','Failed');default:'Pending'" json:"status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }
