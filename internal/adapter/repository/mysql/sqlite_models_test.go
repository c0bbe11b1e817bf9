package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type leaseSQLite struct {
	ID          uint64          `gorm:"primaryKey;column:id"`
	PropertyID  uint64          `gorm:"column:property_id"`
	TenantID    uint64          `gorm:"column:tenant_id"`
	StartDate   time.Time       `gorm:"column:start_date"`
	EndDate     time.Time       `gorm:"column:end_date"`
	MonthlyRent decimal.Decimal `gorm:"type:numeric;column:monthly_rent"`
	Status      string          `gorm:"type:text;column:status"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (leaseSQLite) TableName() string { return "leases" }

type leaseRequestSQLite struct {
	ID            uint64          `gorm:"primaryKey;column:id"`
	PropertyID    uint64          `gorm:"column:property_id"`
	TenantID      uint64          `gorm:"column:tenant_id"`
	StartDate     time.Time       `gorm:"column:start_date"`
	EndDate       time.Time       `gorm:"column:end_date"`
	MonthlyRent   decimal.Decimal `gorm:"type:numeric;column:monthly_rent"`
	Message       string          `gorm:"type:text;column:message"`
	OwnerResponse string          `gorm:"type:text;column:owner_response"`
	Status        string          `gorm:"type:text;column:status"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (leaseRequestSQLite) TableName() string { return "lease_requests" }

type ownershipSQLite struct {
	ID            uint64           `gorm:"primaryKey;column:id"`
	PropertyID    uint64           `gorm:"column:property_id"`
	OwnerID       *uint64          `gorm:"column:owner_id"`
	TenantID      *uint64          `gorm:"column:tenant_id"`
	OwnershipType string           `gorm:"type:text;column:ownership_type"`
	PurchasePrice *decimal.Decimal `gorm:"type:numeric;column:purchase_price"`
	StartDate     time.Time        `gorm:"column:start_date"`
	EndDate       *time.Time       `gorm:"column:end_date"`
	Status        string           `gorm:"type:text;column:status"`
	CreatedAt     time.Time        `gorm:"column:created_at"`
	UpdatedAt     time.Time        `gorm:"column:updated_at"`
}

func (ownershipSQLite) TableName() string { return "property_ownerships" }

type paymentSQLite struct {
	ID            uint64          `gorm:"primaryKey;column:id"`
	LeaseID       uint64          `gorm:"column:lease_id"`
	Amount        decimal.Decimal `gorm:"type:numeric;column:amount"`
	LateFee       decimal.Decimal `gorm:"type:numeric;column:late_fee"`
	PaymentMethod string          `gorm:"column:payment_method"`
	PaymentDate   *time.Time      `gorm:"column:payment_date"`
	DueDate       time.Time       `gorm:"column:due_date"`
	Notes         string          `gorm:"type:text;column:notes"`
	Status        string          `gorm:"type:text;column:status"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (paymentSQLite) TableName() string { return "payments" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas the repository tests touch.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&leaseSQLite{}, &leaseRequestSQLite{}, &ownershipSQLite{}, &paymentSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
