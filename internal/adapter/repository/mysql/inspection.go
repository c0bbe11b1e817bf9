package mysql

import (
	"context"

	inspectionDomain "propertyhub-backend/internal/domain/inspection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InspectionRepository struct{ db *gorm.DB }

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

func (r *InspectionRepository) Create(ctx context.Context, req *inspectionDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *InspectionRepository) Save(ctx context.Context, req *inspectionDomain.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *InspectionRepository) GetByID(ctx context.Context, id uint64) (*inspectionDomain.Request, error) {
	var out inspectionDomain.Request
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *InspectionRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*inspectionDomain.Request, error) {
	var out inspectionDomain.Request
	res := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&out, id)
	return &out, res.Error
}
