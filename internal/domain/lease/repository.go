package lease

import "context"

type Repository interface {
	Create(ctx context.Context, l *Lease) error
	GetByID(ctx context.Context, id uint64) (*Lease, error)
	GetActiveByPropertyID(ctx context.Context, propertyID uint64) (*Lease, error)
	Save(ctx context.Context, l *Lease) error
}

type RequestRepository interface {
	Create(ctx context.Context, r *Request) error
	GetByID(ctx context.Context, id uint64) (*Request, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Request, error)
	GetPendingByPropertyAndTenant(ctx context.Context, propertyID, tenantID uint64) (*Request, error)
	Save(ctx context.Context, r *Request) error
}
