package mysql

import (
	"context"

	financeDomain "propertyhub-backend/internal/domain/finance"

	"gorm.io/gorm"
)

// TransactionRepository appends ledger rows; the interface carries no
// update or delete on purpose.
type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *financeDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) ListByPropertyID(ctx context.Context, propertyID uint64) ([]financeDomain.Transaction, error) {
	var out []financeDomain.Transaction
	res := r.db.WithContext(ctx).Where("property_id = ?", propertyID).Order("id").Find(&out)
	return out, res.Error
}
