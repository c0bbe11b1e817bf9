package mysql

import (
	"context"
	"time"

	ownershipDomain "propertyhub-backend/internal/domain/ownership"

	"gorm.io/gorm"
)

type OwnershipRepository struct{ db *gorm.DB }

func NewOwnershipRepository(db *gorm.DB) *OwnershipRepository { return &OwnershipRepository{db: db} }

func (r *OwnershipRepository) Create(ctx context.Context, o *ownershipDomain.Ownership) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OwnershipRepository) CloseActiveByPropertyID(ctx context.Context, propertyID uint64, endDate time.Time) error {
	return r.db.WithContext(ctx).
		Model(&ownershipDomain.Ownership{}).
		Where("property_id = ? AND status = ?", propertyID, ownershipDomain.StatusActive).
		Updates(map[string]any{
			"status":   ownershipDomain.StatusClosed,
			"end_date": endDate,
		}).Error
}

func (r *OwnershipRepository) GetActiveByPropertyID(ctx context.Context, propertyID uint64) (*ownershipDomain.Ownership, error) {
	var out ownershipDomain.Ownership
	res := r.db.WithContext(ctx).
		Where("property_id = ? AND status = ?", propertyID, ownershipDomain.StatusActive).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

func (r *OwnershipRepository) ListByPropertyID(ctx context.Context, propertyID uint64) ([]ownershipDomain.Ownership, error) {
	var out []ownershipDomain.Ownership
	res := r.db.WithContext(ctx).Where("property_id = ?", propertyID).Order("id").Find(&out)
	return out, res.Error
}
