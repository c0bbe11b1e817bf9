// Package repomock provides function-backed mocks for every domain
// repository. Fill in the Fn fields a test needs; unfilled getters
// return ErrNotImplemented, unfilled writers succeed.
package repomock

import (
	"context"
	"errors"
	"time"

	financeDomain "propertyhub-backend/internal/domain/finance"
	inspectionDomain "propertyhub-backend/internal/domain/inspection"
	insuranceDomain "propertyhub-backend/internal/domain/insurance"
	leaseDomain "propertyhub-backend/internal/domain/lease"
	maintenanceDomain "propertyhub-backend/internal/domain/maintenance"
	notificationDomain "propertyhub-backend/internal/domain/notification"
	ownershipDomain "propertyhub-backend/internal/domain/ownership"
	partyDomain "propertyhub-backend/internal/domain/party"
	paymentDomain "propertyhub-backend/internal/domain/payment"
	propertyDomain "propertyhub-backend/internal/domain/property"
	purchaseDomain "propertyhub-backend/internal/domain/purchase"
)

var ErrNotImplemented = errors.New("repomock: method not implemented")

// ---- property ----

type PropertyRepo struct {
	CreateFn           func(ctx context.Context, p *propertyDomain.Property) error
	GetByIDFn          func(ctx context.Context, id uint64) (*propertyDomain.Property, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*propertyDomain.Property, error)
	SaveFn             func(ctx context.Context, p *propertyDomain.Property) error
	ListByOwnerIDFn    func(ctx context.Context, ownerID uint64) ([]propertyDomain.Property, error)
}

func (m *PropertyRepo) Create(ctx context.Context, p *propertyDomain.Property) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *PropertyRepo) GetByID(ctx context.Context, id uint64) (*propertyDomain.Property, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *PropertyRepo) GetByIDForUpdate(ctx context.Context, id uint64) (*propertyDomain.Property, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *PropertyRepo) Save(ctx context.Context, p *propertyDomain.Property) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
func (m *PropertyRepo) ListByOwnerID(ctx context.Context, ownerID uint64) ([]propertyDomain.Property, error) {
	if m.ListByOwnerIDFn != nil {
		return m.ListByOwnerIDFn(ctx, ownerID)
	}
	return nil, ErrNotImplemented
}

type DocumentRepo struct {
	CreateFn           func(ctx context.Context, d *propertyDomain.Document) error
	ListByPropertyIDFn func(ctx context.Context, propertyID uint64) ([]propertyDomain.Document, error)
}

func (m *DocumentRepo) Create(ctx context.Context, d *propertyDomain.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}
func (m *DocumentRepo) ListByPropertyID(ctx context.Context, propertyID uint64) ([]propertyDomain.Document, error) {
	if m.ListByPropertyIDFn != nil {
		return m.ListByPropertyIDFn(ctx, propertyID)
	}
	return nil, ErrNotImplemented
}

// ---- party ----

type PartyRepo struct {
	CreateOwnerFn          func(ctx context.Context, o *partyDomain.Owner) error
	GetOwnerByIDFn         func(ctx context.Context, id uint64) (*partyDomain.Owner, error)
	CreateTenantFn         func(ctx context.Context, t *partyDomain.Tenant) error
	GetTenantByIDFn        func(ctx context.Context, id uint64) (*partyDomain.Tenant, error)
	ListTenantsByOwnerIDFn func(ctx context.Context, ownerID uint64) ([]partyDomain.Tenant, error)
}

func (m *PartyRepo) CreateOwner(ctx context.Context, o *partyDomain.Owner) error {
	if m.CreateOwnerFn != nil {
		return m.CreateOwnerFn(ctx, o)
	}
	return nil
}
func (m *PartyRepo) GetOwnerByID(ctx context.Context, id uint64) (*partyDomain.Owner, error) {
	if m.GetOwnerByIDFn != nil {
		return m.GetOwnerByIDFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *PartyRepo) CreateTenant(ctx context.Context, t *partyDomain.Tenant) error {
	if m.CreateTenantFn != nil {
		return m.CreateTenantFn(ctx, t)
	}
	return nil
}
func (m *PartyRepo) GetTenantByID(ctx context.Context, id uint64) (*partyDomain.Tenant, error) {
	if m.GetTenantByIDFn != nil {
		return m.GetTenantByIDFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *PartyRepo) ListTenantsByOwnerID(ctx context.Context, ownerID uint64) ([]partyDomain.Tenant, error) {
	if m.ListTenantsByOwnerIDFn != nil {
		return m.ListTenantsByOwnerIDFn(ctx, ownerID)
	}
	return nil, ErrNotImplemented
}

// ---- lease ----

type LeaseRepo struct {
	CreateFn                func(ctx context.Context, l *leaseDomain.Lease) error
	GetByIDFn               func(ctx context.Context, id uint64) (*leaseDomain.Lease, error)
	GetActiveByPropertyIDFn func(ctx context.Context, propertyID uint64) (*leaseDomain.Lease, error)
	SaveFn                  func(ctx context.Context, l *leaseDomain.Lease) error
}

func (m *LeaseRepo) Create(ctx context.Context, l *leaseDomain.Lease) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}
func (m *LeaseRepo) GetByID(ctx context.Context, id uint64) (*leaseDomain.Lease, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *LeaseRepo) GetActiveByPropertyID(ctx context.Context, propertyID uint64) (*leaseDomain.Lease, error) {
	if m.GetActiveByPropertyIDFn != nil {
		return m.GetActiveByPropertyIDFn(ctx, propertyID)
	}
	return nil, ErrNotImplemented
}
func (m *LeaseRepo) Save(ctx context.Context, l *leaseDomain.Lease) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

type LeaseRequestRepo struct {
	CreateFn                        func(ctx context.Context, r *leaseDomain.Request) error
	GetByIDFn                       func(ctx context.Context, id uint64) (*leaseDomain.Request, error)
	GetByIDForUpdateFn              func(ctx context.Context, id uint64) (*leaseDomain.Request, error)
	GetPendingByPropertyAndTenantFn func(ctx context.Context, propertyID, tenantID uint64) (*leaseDomain.Request, error)
	SaveFn                          func(ctx context.Context, r *leaseDomain.Request) error
}

func (m *LeaseRequestRepo) Create(ctx context.Context, r *leaseDomain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *LeaseRequestRepo) GetByID(ctx context.Context, id uint64) (*leaseDomain.Request, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *LeaseRequestRepo) GetByIDForUpdate(ctx context.Context, id uint64) (*leaseDomain.Request, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *LeaseRequestRepo) GetPendingByPropertyAndTenant(ctx context.Context, propertyID, tenantID uint64) (*leaseDomain.Request, error) {
	if m.GetPendingByPropertyAndTenantFn != nil {
		return m.GetPendingByPropertyAndTenantFn(ctx, propertyID, tenantID)
	}
	return nil, ErrNotImplemented
}
func (m *LeaseRequestRepo) Save(ctx context.Context, r *leaseDomain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

// ---- purchase ----

type PurchaseRepo struct {
	CreateFn           func(ctx context.Context, r *purchaseDomain.Request) error
	GetByIDFn          func(ctx context.Context, id uint64) (*purchaseDomain.Request, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*purchaseDomain.Request, error)
	SaveFn             func(ctx context.Context, r *purchaseDomain.Request) error
}

func (m *PurchaseRepo) Create(ctx context.Context, r *purchaseDomain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *PurchaseRepo) GetByID(ctx context.Context, id uint64) (*purchaseDomain.Request, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *PurchaseRepo) GetByIDForUpdate(ctx context.Context, id uint64) (*purchaseDomain.Request, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *PurchaseRepo) Save(ctx context.Context, r *purchaseDomain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

// ---- ownership ----

type OwnershipRepo struct {
	CreateFn                  func(ctx context.Context, o *ownershipDomain.Ownership) error
	CloseActiveByPropertyIDFn func(ctx context.Context, propertyID uint64, endDate time.Time) error
	GetActiveByPropertyIDFn   func(ctx context.Context, propertyID uint64) (*ownershipDomain.Ownership, error)
	ListByPropertyIDFn        func(ctx context.Context, propertyID uint64) ([]ownershipDomain.Ownership, error)
}

func (m *OwnershipRepo) Create(ctx context.Context, o *ownershipDomain.Ownership) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}
func (m *OwnershipRepo) CloseActiveByPropertyID(ctx context.Context, propertyID uint64, endDate time.Time) error {
	if m.CloseActiveByPropertyIDFn != nil {
		return m.CloseActiveByPropertyIDFn(ctx, propertyID, endDate)
	}
	return nil
}
func (m *OwnershipRepo) GetActiveByPropertyID(ctx context.Context, propertyID uint64) (*ownershipDomain.Ownership, error) {
	if m.GetActiveByPropertyIDFn != nil {
		return m.GetActiveByPropertyIDFn(ctx, propertyID)
	}
	return nil, ErrNotImplemented
}
func (m *OwnershipRepo) ListByPropertyID(ctx context.Context, propertyID uint64) ([]ownershipDomain.Ownership, error) {
	if m.ListByPropertyIDFn != nil {
		return m.ListByPropertyIDFn(ctx, propertyID)
	}
	return nil, ErrNotImplemented
}

// ---- insurance ----

type OfferRepo struct {
	CreateFn           func(ctx context.Context, o *insuranceDomain.Offer) error
	GetByIDFn          func(ctx context.Context, id uint64) (*insuranceDomain.Offer, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*insuranceDomain.Offer, error)
	SaveFn             func(ctx context.Context, o *insuranceDomain.Offer) error
}

func (m *OfferRepo) Create(ctx context.Context, o *insuranceDomain.Offer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}
func (m *OfferRepo) GetByID(ctx context.Context, id uint64) (*insuranceDomain.Offer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *OfferRepo) GetByIDForUpdate(ctx context.Context, id uint64) (*insuranceDomain.Offer, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *OfferRepo) Save(ctx context.Context, o *insuranceDomain.Offer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, o)
	}
	return nil
}

type PolicyRepo struct {
	CreateFn       func(ctx context.Context, p *insuranceDomain.Policy) error
	GetByOfferIDFn func(ctx context.Context, offerID uint64) (*insuranceDomain.Policy, error)
}

func (m *PolicyRepo) Create(ctx context.Context, p *insuranceDomain.Policy) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *PolicyRepo) GetByOfferID(ctx context.Context, offerID uint64) (*insuranceDomain.Policy, error) {
	if m.GetByOfferIDFn != nil {
		return m.GetByOfferIDFn(ctx, offerID)
	}
	return nil, ErrNotImplemented
}

// ---- maintenance ----

type MaintenanceRepo struct {
	CreateFn           func(ctx context.Context, r *maintenanceDomain.Request) error
	GetByIDFn          func(ctx context.Context, id uint64) (*maintenanceDomain.Request, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*maintenanceDomain.Request, error)
	SaveFn             func(ctx context.Context, r *maintenanceDomain.Request) error
}

func (m *MaintenanceRepo) Create(ctx context.Context, r *maintenanceDomain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *MaintenanceRepo) GetByID(ctx context.Context, id uint64) (*maintenanceDomain.Request, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *MaintenanceRepo) GetByIDForUpdate(ctx context.Context, id uint64) (*maintenanceDomain.Request, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *MaintenanceRepo) Save(ctx context.Context, r *maintenanceDomain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

// ---- inspection ----

type InspectionRepo struct {
	CreateFn           func(ctx context.Context, r *inspectionDomain.Request) error
	GetByIDFn          func(ctx context.Context, id uint64) (*inspectionDomain.Request, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*inspectionDomain.Request, error)
	SaveFn             func(ctx context.Context, r *inspectionDomain.Request) error
}

func (m *InspectionRepo) Create(ctx context.Context, r *inspectionDomain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *InspectionRepo) GetByID(ctx context.Context, id uint64) (*inspectionDomain.Request, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *InspectionRepo) GetByIDForUpdate(ctx context.Context, id uint64) (*inspectionDomain.Request, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *InspectionRepo) Save(ctx context.Context, r *inspectionDomain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

// ---- payment ----

type PaymentRepo struct {
	CreateFn           func(ctx context.Context, p *paymentDomain.Payment) error
	GetByIDFn          func(ctx context.Context, id uint64) (*paymentDomain.Payment, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*paymentDomain.Payment, error)
	ListByLeaseIDFn    func(ctx context.Context, leaseID uint64) ([]paymentDomain.Payment, error)
	SaveFn             func(ctx context.Context, p *paymentDomain.Payment) error
}

func (m *PaymentRepo) Create(ctx context.Context, p *paymentDomain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *PaymentRepo) GetByID(ctx context.Context, id uint64) (*paymentDomain.Payment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *PaymentRepo) GetByIDForUpdate(ctx context.Context, id uint64) (*paymentDomain.Payment, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, ErrNotImplemented
}
func (m *PaymentRepo) ListByLeaseID(ctx context.Context, leaseID uint64) ([]paymentDomain.Payment, error) {
	if m.ListByLeaseIDFn != nil {
		return m.ListByLeaseIDFn(ctx, leaseID)
	}
	return nil, ErrNotImplemented
}
func (m *PaymentRepo) Save(ctx context.Context, p *paymentDomain.Payment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

// ---- finance ----

type FinanceRepo struct {
	CreateFn           func(ctx context.Context, t *financeDomain.Transaction) error
	ListByPropertyIDFn func(ctx context.Context, propertyID uint64) ([]financeDomain.Transaction, error)
}

func (m *FinanceRepo) Create(ctx context.Context, t *financeDomain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}
func (m *FinanceRepo) ListByPropertyID(ctx context.Context, propertyID uint64) ([]financeDomain.Transaction, error) {
	if m.ListByPropertyIDFn != nil {
		return m.ListByPropertyIDFn(ctx, propertyID)
	}
	return nil, ErrNotImplemented
}

// ---- notification ----

type NotificationRepo struct {
	CreateFn     func(ctx context.Context, n *notificationDomain.Notification) error
	ListByUserFn func(ctx context.Context, userType notificationDomain.UserType, userID uint64) ([]notificationDomain.Notification, error)
	MarkReadFn   func(ctx context.Context, id uint64) error
}

func (m *NotificationRepo) Create(ctx context.Context, n *notificationDomain.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}
func (m *NotificationRepo) ListByUser(ctx context.Context, userType notificationDomain.UserType, userID uint64) ([]notificationDomain.Notification, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userType, userID)
	}
	return nil, ErrNotImplemented
}
func (m *NotificationRepo) MarkRead(ctx context.Context, id uint64) error {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, id)
	}
	return nil
}
