package mysql

import (
	"context"

	leaseDomain "propertyhub-backend/internal/domain/lease"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaseRepository struct{ db *gorm.DB }

func NewLeaseRepository(db *gorm.DB) *LeaseRepository { return &LeaseRepository{db: db} }

func (r *LeaseRepository) Create(ctx context.Context, l *leaseDomain.Lease) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LeaseRepository) Save(ctx context.Context, l *leaseDomain.Lease) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LeaseRepository) GetByID(ctx context.Context, id uint64) (*leaseDomain.Lease, error) {
	var out leaseDomain.Lease
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *LeaseRepository) GetActiveByPropertyID(ctx context.Context, propertyID uint64) (*leaseDomain.Lease, error) {
	var out leaseDomain.Lease
	res := r.db.WithContext(ctx).
		Where("property_id = ? AND status = ?", propertyID, leaseDomain.StatusActive).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

type LeaseRequestRepository struct{ db *gorm.DB }

func NewLeaseRequestRepository(db *gorm.DB) *LeaseRequestRepository {
	return &LeaseRequestRepository{db: db}
}

func (r *LeaseRequestRepository) Create(ctx context.Context, req *leaseDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *LeaseRequestRepository) Save(ctx context.Context, req *leaseDomain.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *LeaseRequestRepository) GetByID(ctx context.Context, id uint64) (*leaseDomain.Request, error) {
	var out leaseDomain.Request
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *LeaseRequestRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*leaseDomain.Request, error) {
	var out leaseDomain.Request
	res := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&out, id)
	return &out, res.Error
}

func (r *LeaseRequestRepository) GetPendingByPropertyAndTenant(ctx context.Context, propertyID, tenantID uint64) (*leaseDomain.Request, error) {
	var out leaseDomain.Request
	res := r.db.WithContext(ctx).
		Where("property_id = ? AND tenant_id = ? AND status = ?", propertyID, tenantID, leaseDomain.RequestPending).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}
