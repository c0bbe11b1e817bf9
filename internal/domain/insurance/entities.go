package insurance

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OfferStatus string

const (
	OfferPending  OfferStatus = "Pending"
	OfferAccepted OfferStatus = "Accepted"
	OfferRejected OfferStatus = "Rejected"
)

type PolicyStatus string

const (
	PolicyActive    PolicyStatus = "Active"
	PolicyExpired   PolicyStatus = "Expired"
	PolicyCancelled PolicyStatus = "Cancelled"
)

var (
	ErrOfferNotFound    = errors.New("insurance offer not found")
	ErrAlreadyResponded = errors.New("insurance offer already responded to")
	ErrInvalidDecision  = errors.New("decision must be Accepted or Rejected")
)

// PolicyNumber derives the policy identifier from the accepted offer:
// POL-<year>-<offer id zero-padded to 6 digits>.
func PolicyNumber(offerID uint64, year int) string {
	return fmt.Sprintf("POL-%d-%06d", year, offerID)
}

type Offer struct {
	ID               uint64          `gorm:"primaryKey;column:id" json:"id"`
	PropertyID       uint64          `gorm:"column:property_id;not null;index" json:"property_id"`
	TenantID         uint64          `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	Provider         string          `gorm:"size:100;not null" json:"provider"`
	CoverageType     string          `gorm:"size:50;not null" json:"coverage_type"`
	CoverageAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"coverage_amount"`
	PremiumAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"premium_amount"`
	PremiumFrequency string          `gorm:"size:20" json:"premium_frequency"`
	StartDate        time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate          time.Time       `gorm:"type:date;not null" json:"end_date"`
	Terms            string          `gorm:"type:text" json:"terms"`
	Benefits         string          `gorm:"type:text" json:"benefits"`
	TenantResponse   string          `gorm:"type:text" json:"tenant_response"`
	ResponseDate     *time.Time      `gorm:"type:date" json:"response_date"`
	Status           OfferStatus     `gorm:"type:enum('Pending','Accepted','Rejected');default:'Pending'" json:"status"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Offer) TableName() string { return "insurance_offers" }

type Policy struct {
	ID               uint64          `gorm:"primaryKey;column:id" json:"id"`
	OfferID          uint64          `gorm:"column:offer_id;not null;uniqueIndex" json:"offer_id"`
	PropertyID       uint64          `gorm:"column:property_id;not null;index" json:"property_id"`
	TenantID         uint64          `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	PolicyNumber     string          `gorm:"size:20;not null;uniqueIndex" json:"policy_number"`
	Provider         string          `gorm:"size:100;not null" json:"provider"`
	CoverageType     string          `gorm:"size:50;not null" json:"coverage_type"`
	CoverageAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"coverage_amount"`
	PremiumAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"premium_amount"`
	PremiumFrequency string          `gorm:"size:20" json:"premium_frequency"`
	StartDate        time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate          time.Time       `gorm:"type:date;not null" json:"end_date"`
	Status           PolicyStatus    `gorm:"type:enum('Active','Expired','Cancelled');default:'Active'" json:"status"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Policy) TableName() string { return "insurance_policies" }
