package party

import (
	"errors"
	"time"
)

var (
	ErrOwnerNotFound  = errors.New("owner not found")
	ErrTenantNotFound = errors.New("tenant not found")
)

type Owner struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex" json:"email"`
	Phone     string    `gorm:"size:30" json:"phone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Owner) TableName() string { return "owners" }

type Tenant struct {
	ID    uint64 `gorm:"primaryKey;column:id" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:255;uniqueIndex" json:"email"`
	Phone string `gorm:"size:30" json:"phone"`
	// Optional link used to scope "which owner's tenants" queries.
	OwnerID   *uint64   `gorm:"column:owner_id;index" json:"owner_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Tenant) TableName() string { return "tenants" }
