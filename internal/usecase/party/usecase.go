package party

import (
	"context"

	partyDomain "propertyhub-backend/internal/domain/party"
)

type Usecase struct{ parties partyDomain.Repository }

func NewUsecase(parties partyDomain.Repository) *Usecase { return &Usecase{parties: parties} }

type CreateOwnerInput struct {
	Name  string
	Email string
	Phone string
}

type CreateTenantInput struct {
	Name    string
	Email   string
	Phone   string
	OwnerID *uint64
}

func (u *Usecase) CreateOwner(ctx context.Context, in CreateOwnerInput) (*partyDomain.Owner, error) {
	o := &partyDomain.Owner{Name: in.Name, Email: in.Email, Phone: in.Phone}
	if err := u.parties.CreateOwner(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (u *Usecase) GetOwner(ctx context.Context, id uint64) (*partyDomain.Owner, error) {
	o, err := u.parties.GetOwnerByID(ctx, id)
	if err != nil {
		return nil, partyDomain.ErrOwnerNotFound
	}
	return o, nil
}

func (u *Usecase) CreateTenant(ctx context.Context, in CreateTenantInput) (*partyDomain.Tenant, error) {
	t := &partyDomain.Tenant{Name: in.Name, Email: in.Email, Phone: in.Phone, OwnerID: in.OwnerID}
	if err := u.parties.CreateTenant(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (u *Usecase) GetTenant(ctx context.Context, id uint64) (*partyDomain.Tenant, error) {
	t, err := u.parties.GetTenantByID(ctx, id)
	if err != nil {
		return nil, partyDomain.ErrTenantNotFound
	}
	return t, nil
}
