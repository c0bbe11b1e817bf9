package insurance

import "context"

type OfferRepository interface {
	Create(ctx context.Context, o *Offer) error
	GetByID(ctx context.Context, id uint64) (*Offer, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Offer, error)
	Save(ctx context.Context, o *Offer) error
}

type PolicyRepository interface {
	Create(ctx context.Context, p *Policy) error
	GetByOfferID(ctx context.Context, offerID uint64) (*Policy, error)
}
