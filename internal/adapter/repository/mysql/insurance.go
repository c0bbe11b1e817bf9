package mysql

import (
	"context"

	insuranceDomain "propertyhub-backend/internal/domain/insurance"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OfferRepository struct{ db *gorm.DB }

func NewOfferRepository(db *gorm.DB) *OfferRepository { return &OfferRepository{db: db} }

func (r *OfferRepository) Create(ctx context.Context, o *insuranceDomain.Offer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OfferRepository) Save(ctx context.Context, o *insuranceDomain.Offer) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OfferRepository) GetByID(ctx context.Context, id uint64) (*insuranceDomain.Offer, error) {
	var out insuranceDomain.Offer
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *OfferRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*insuranceDomain.Offer, error) {
	var out insuranceDomain.Offer
	res := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&out, id)
	return &out, res.Error
}

type PolicyRepository struct{ db *gorm.DB }

func NewPolicyRepository(db *gorm.DB) *PolicyRepository { return &PolicyRepository{db: db} }

func (r *PolicyRepository) Create(ctx context.Context, p *insuranceDomain.Policy) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PolicyRepository) GetByOfferID(ctx context.Context, offerID uint64) (*insuranceDomain.Policy, error) {
	var out insuranceDomain.Policy
	res := r.db.WithContext(ctx).Where("offer_id = ?", offerID).First(&out)
	return &out, res.Error
}
