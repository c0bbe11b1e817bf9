package property

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusAvailable Status = "Available"
	StatusLeased    Status = "Leased"
	StatusSold      Status = "Sold"
)

var (
	ErrNotFound     = errors.New("property not found")
	ErrNotAvailable = errors.New("property is not available")
	ErrAlreadySold  = errors.New("property is already sold")
)

type Property struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"id"`
	Address       string          `gorm:"size:255;not null" json:"address"`
	City          string          `gorm:"size:100" json:"city"`
	PropertyType  string          `gorm:"size:50" json:"property_type"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(14,2)" json:"purchase_price"`
	CurrentValue  decimal.Decimal `gorm:"type:decimal(14,2)" json:"current_value"`
	Status        Status          `gorm:"type:enum('Available','Leased','Sold');default:'Available'" json:"status"`
	// A sold property exits the owner's portfolio, so the link is nullable.
	OwnerID   *uint64   `gorm:"column:owner_id;index" json:"owner_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Property) TableName() string { return "properties" }

// Document is a path/URL record, never a binary blob.
type Document struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"id"`
	PropertyID   uint64    `gorm:"column:property_id;not null;index" json:"property_id"`
	DocumentType string    `gorm:"size:50;not null" json:"document_type"`
	FileName     string    `gorm:"size:255;not null" json:"file_name"`
	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (Document) TableName() string { return "property_documents" }
