package uow

import (
	"context"

	"propertyhub-backend/internal/domain/finance"
	"propertyhub-backend/internal/domain/inspection"
	"propertyhub-backend/internal/domain/insurance"
	"propertyhub-backend/internal/domain/lease"
	"propertyhub-backend/internal/domain/maintenance"
	"propertyhub-backend/internal/domain/ownership"
	"propertyhub-backend/internal/domain/payment"
	"propertyhub-backend/internal/domain/property"
	"propertyhub-backend/internal/domain/purchase"
)

// Repos bundles every repository bound to the same transaction.
type Repos struct {
	Properties       property.Repository
	Documents        property.DocumentRepository
	Leases           lease.Repository
	LeaseRequests    lease.RequestRepository
	PurchaseRequests purchase.Repository
	Ownerships       ownership.Repository
	Offers           insurance.OfferRepository
	Policies         insurance.PolicyRepository
	Maintenance      maintenance.Repository
	Inspections      inspection.Repository
	Payments         payment.Repository
	Transactions     finance.Repository
}

// UnitOfWork runs fn inside one database transaction; fn returning an
// error rolls back every write made through r.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
