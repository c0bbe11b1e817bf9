package mysql

import (
	"context"

	partyDomain "propertyhub-backend/internal/domain/party"

	"gorm.io/gorm"
)

type PartyRepository struct{ db *gorm.DB }

func NewPartyRepository(db *gorm.DB) *PartyRepository { return &PartyRepository{db: db} }

func (r *PartyRepository) CreateOwner(ctx context.Context, o *partyDomain.Owner) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *PartyRepository) GetOwnerByID(ctx context.Context, id uint64) (*partyDomain.Owner, error) {
	var out partyDomain.Owner
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *PartyRepository) CreateTenant(ctx context.Context, t *partyDomain.Tenant) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *PartyRepository) GetTenantByID(ctx context.Context, id uint64) (*partyDomain.Tenant, error) {
	var out partyDomain.Tenant
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *PartyRepository) ListTenantsByOwnerID(ctx context.Context, ownerID uint64) ([]partyDomain.Tenant, error) {
	var out []partyDomain.Tenant
	res := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&out)
	return out, res.Error
}
