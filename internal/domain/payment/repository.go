package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id uint64) (*Payment, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Payment, error)
	ListByLeaseID(ctx context.Context, leaseID uint64) ([]Payment, error)
	Save(ctx context.Context, p *Payment) error
}
