package mysql

import (
	"context"

	maintenanceDomain "propertyhub-backend/internal/domain/maintenance"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MaintenanceRepository struct{ db *gorm.DB }

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(ctx context.Context, req *maintenanceDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *MaintenanceRepository) Save(ctx context.Context, req *maintenanceDomain.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id uint64) (*maintenanceDomain.Request, error) {
	var out maintenanceDomain.Request
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *MaintenanceRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*maintenanceDomain.Request, error) {
	var out maintenanceDomain.Request
	res := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&out, id)
	return &out, res.Error
}
