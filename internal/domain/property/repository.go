package property

import "context"

type Repository interface {
	Create(ctx context.Context, p *Property) error
	GetByID(ctx context.Context, id uint64) (*Property, error)
	// GetByIDForUpdate locks the row until the surrounding tx ends.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Property, error)
	Save(ctx context.Context, p *Property) error
	ListByOwnerID(ctx context.Context, ownerID uint64) ([]Property, error)
}

type DocumentRepository interface {
	Create(ctx context.Context, d *Document) error
	ListByPropertyID(ctx context.Context, propertyID uint64) ([]Document, error)
}
