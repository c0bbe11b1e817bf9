package mysql

import (
	"context"

	propertyDomain "propertyhub-backend/internal/domain/property"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PropertyRepository struct{ db *gorm.DB }

func NewPropertyRepository(db *gorm.DB) *PropertyRepository { return &PropertyRepository{db: db} }

func (r *PropertyRepository) Create(ctx context.Context, p *propertyDomain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyRepository) Save(ctx context.Context, p *propertyDomain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PropertyRepository) GetByID(ctx context.Context, id uint64) (*propertyDomain.Property, error) {
	var out propertyDomain.Property
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *PropertyRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*propertyDomain.Property, error) {
	var out propertyDomain.Property
	res := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&out, id)
	return &out, res.Error
}

func (r *PropertyRepository) ListByOwnerID(ctx context.Context, ownerID uint64) ([]propertyDomain.Property, error) {
	var out []propertyDomain.Property
	res := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&out)
	return out, res.Error
}

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Create(ctx context.Context, d *propertyDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) ListByPropertyID(ctx context.Context, propertyID uint64) ([]propertyDomain.Document, error) {
	var out []propertyDomain.Document
	res := r.db.WithContext(ctx).Where("property_id = ?", propertyID).Order("id").Find(&out)
	return out, res.Error
}
