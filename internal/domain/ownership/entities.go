package ownership

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeOwned  Type = "Owned"
	TypeLeased Type = "Leased"
)

type Status string

const (
	StatusActive Status = "Active"
	StatusClosed Status = "Closed"
)

// Ownership is the append-mostly ledger of who holds a property.
// At most one row per property may be Active at a time; closing the
// old row before inserting a new one is the caller's obligation.
type Ownership struct {
	ID            uint64           `gorm:"primaryKey;column:id" json:"id"`
	PropertyID    uint64           `gorm:"column:property_id;not null;index:idx_ownerships_property_status" json:"property_id"`
	OwnerID       *uint64          `gorm:"column:owner_id;index" json:"owner_id"`
	TenantID      *uint64          `gorm:"column:tenant_id;index" json:"tenant_id"`
	OwnershipType Type             `gorm:"type:enum('Owned','Leased');not null" json:"ownership_type"`
	PurchasePrice *decimal.Decimal `gorm:"type:decimal(14,2)" json:"purchase_price"`
	StartDate     time.Time        `gorm:"type:date;not null" json:"start_date"`
	EndDate       *time.Time       `gorm:"type:date" json:"end_date"`
	Status        Status           `gorm:"type:enum('Active','Closed');default:'Active';index:idx_ownerships_property_status" json:"status"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Ownership) TableName() string { return "property_ownerships" }
