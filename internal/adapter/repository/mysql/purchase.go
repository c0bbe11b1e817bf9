package mysql

import (
	"context"

	purchaseDomain "propertyhub-backend/internal/domain/purchase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseRequestRepository struct{ db *gorm.DB }

func NewPurchaseRequestRepository(db *gorm.DB) *PurchaseRequestRepository {
	return &PurchaseRequestRepository{db: db}
}

func (r *PurchaseRequestRepository) Create(ctx context.Context, req *purchaseDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *PurchaseRequestRepository) Save(ctx context.Context, req *purchaseDomain.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *PurchaseRequestRepository) GetByID(ctx context.Context, id uint64) (*purchaseDomain.Request, error) {
	var out purchaseDomain.Request
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *PurchaseRequestRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*purchaseDomain.Request, error) {
	var out purchaseDomain.Request
	res := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&out, id)
	return &out, res.Error
}
