package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "Income"
	TypeExpense TransactionType = "Expense"
)

const (
	CategoryRent      = "Rent"
	CategoryInsurance = "Insurance"
)

// Transaction is an append-only ledger row. There are no update or
// delete operations anywhere in the repository interface.
type Transaction struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"id"`
	PropertyID      uint64          `gorm:"column:property_id;not null;index" json:"property_id"`
	TransactionType TransactionType `gorm:"type:enum('Income','Expense');not null" json:"transaction_type"`
	Category        string          `gorm:"size:50;not null" json:"category"`
	Amount          decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Description     string          `gorm:"type:text" json:"description"`
	Reference       string          `gorm:"size:32;uniqueIndex" json:"reference"`
	TransactionDate time.Time       `gorm:"not null" json:"transaction_date"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "financial_transactions" }
