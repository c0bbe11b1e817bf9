package party

import "context"

type Repository interface {
	CreateOwner(ctx context.Context, o *Owner) error
	GetOwnerByID(ctx context.Context, id uint64) (*Owner, error)
	CreateTenant(ctx context.Context, t *Tenant) error
	GetTenantByID(ctx context.Context, id uint64) (*Tenant, error)
	ListTenantsByOwnerID(ctx context.Context, ownerID uint64) ([]Tenant, error)
}
