package finance

import "context"

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	ListByPropertyID(ctx context.Context, propertyID uint64) ([]Transaction, error)
}
