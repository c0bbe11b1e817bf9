package property

import (
	"context"
	"time"

	ownershipDomain "propertyhub-backend/internal/domain/ownership"
	propertyDomain "propertyhub-backend/internal/domain/property"
	"propertyhub-backend/internal/domain/uow"
)

type Usecase struct {
	properties propertyDomain.Repository
	uow        uow.UnitOfWork
}

func NewUsecase(properties propertyDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{properties: properties, uow: tx}
}

func today() time.Time { return time.Now().UTC().Truncate(24 * time.Hour) }

// Create registers a property. When an owner is given, the first
// Active ownership row opens with it, so the ledger starts consistent.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*PropertyDTO, error) {
	var dto *PropertyDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p := &propertyDomain.Property{
			Address:       in.Address,
			City:          in.City,
			PropertyType:  in.PropertyType,
			PurchasePrice: in.PurchasePrice,
			CurrentValue:  in.CurrentValue,
			Status:        propertyDomain.StatusAvailable,
			OwnerID:       in.OwnerID,
		}
		if err := r.Properties.Create(ctx, p); err != nil {
			return err
		}

		if in.OwnerID != nil {
			price := in.PurchasePrice
			own := &ownershipDomain.Ownership{
				PropertyID:    p.ID,
				OwnerID:       in.OwnerID,
				OwnershipType: ownershipDomain.TypeOwned,
				PurchasePrice: &price,
				StartDate:     today(),
				Status:        ownershipDomain.StatusActive,
			}
			if err := r.Ownerships.Create(ctx, own); err != nil {
				return err
			}
		}

		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*PropertyDTO, error) {
	p, err := u.properties.GetByID(ctx, id)
	if err != nil {
		return nil, propertyDomain.ErrNotFound
	}
	return toDTO(p), nil
}

func toDTO(p *propertyDomain.Property) *PropertyDTO {
	return &PropertyDTO{
		ID:            p.ID,
		Address:       p.Address,
		City:          p.City,
		PropertyType:  p.PropertyType,
		PurchasePrice: p.PurchasePrice,
		CurrentValue:  p.CurrentValue,
		Status:        string(p.Status),
		OwnerID:       p.OwnerID,
		CreatedAt:     p.CreatedAt,
	}
}
