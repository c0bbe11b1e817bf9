package mysql

import (
	"context"

	"propertyhub-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepos(tx))
	})
}

// newRepos binds every repository to the same *gorm.DB, which is a
// transaction handle when called from WithinTx.
func newRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Properties:       &PropertyRepository{db: tx},
		Documents:        &DocumentRepository{db: tx},
		Leases:           &LeaseRepository{db: tx},
		LeaseRequests:    &LeaseRequestRepository{db: tx},
		PurchaseRequests: &PurchaseRequestRepository{db: tx},
		Ownerships:       &OwnershipRepository{db: tx},
		Offers:           &OfferRepository{db: tx},
		Policies:         &PolicyRepository{db: tx},
		Maintenance:      &MaintenanceRepository{db: tx},
		Inspections:      &InspectionRepository{db: tx},
		Payments:         &PaymentRepository{db: tx},
		Transactions:     &TransactionRepository{db: tx},
	}
}
