package ownership

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, o *Ownership) error
	// CloseActiveByPropertyID marks every Active row for the property
	// Closed with the given end date. Must run before Create when a
	// transition replaces the holder.
	CloseActiveByPropertyID(ctx context.Context, propertyID uint64, endDate time.Time) error
	GetActiveByPropertyID(ctx context.Context, propertyID uint64) (*Ownership, error)
	ListByPropertyID(ctx context.Context, propertyID uint64) ([]Ownership, error)
}
