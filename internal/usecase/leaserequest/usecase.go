package leaserequest

import (
	"context"
	"errors"
	"fmt"
	"time"

	leaseDomain "propertyhub-backend/internal/domain/lease"
	notificationDomain "propertyhub-backend/internal/domain/notification"
	ownershipDomain "propertyhub-backend/internal/domain/ownership"
	propertyDomain "propertyhub-backend/internal/domain/property"
	"propertyhub-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type Usecase struct {
	requests   leaseDomain.RequestRepository
	properties propertyDomain.Repository
	uow        uow.UnitOfWork
	sink       notificationDomain.Sink
}

// NewUsecase: plain repos for reads, a UoW for the approval tx, a sink
// for post-commit notifications.
func NewUsecase(requests leaseDomain.RequestRepository, properties propertyDomain.Repository, tx uow.UnitOfWork, sink notificationDomain.Sink) *Usecase {
	return &Usecase{requests: requests, properties: properties, uow: tx, sink: sink}
}

func today() time.Time { return time.Now().UTC().Truncate(24 * time.Hour) }

// Create files a tenant's lease request against an available property.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*RequestDTO, error) {
	p, err := u.properties.GetByID(ctx, in.PropertyID)
	if err != nil {
		return nil, propertyDomain.ErrNotFound
	}
	if p.Status != propertyDomain.StatusAvailable {
		return nil, fmt.Errorf("%w (property %d)", propertyDomain.ErrNotAvailable, p.ID)
	}

	// Block a second pending request from the same tenant for the same property.
	pending, err := u.requests.GetPendingByPropertyAndTenant(ctx, in.PropertyID, in.TenantID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w (request %d)", leaseDomain.ErrDuplicateRequest, pending.ID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	req := &leaseDomain.Request{
		PropertyID:  in.PropertyID,
		TenantID:    in.TenantID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		MonthlyRent: in.MonthlyRent,
		Message:     in.Message,
		Status:      leaseDomain.RequestPending,
	}
	if err := u.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	if p.OwnerID != nil {
		u.sink.Notify(ctx, notificationDomain.Notification{
			UserType:  notificationDomain.UserOwner,
			UserID:    *p.OwnerID,
			Title:     "New lease request",
			Message:   fmt.Sprintf("A tenant requested to lease %s", p.Address),
			Type:      notificationDomain.TypeLeaseRequest,
			RelatedID: req.ID,
		})
	}

	return &RequestDTO{
		ID:          req.ID,
		PropertyID:  req.PropertyID,
		TenantID:    req.TenantID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MonthlyRent: req.MonthlyRent,
		Status:      string(req.Status),
		CreatedAt:   req.CreatedAt,
	}, nil
}

// Review settles a pending request. Approval inserts the lease, flips
// the property to Leased and replaces the active ownership row, all in
// one transaction; rejection only records the decision.
func (u *Usecase) Review(ctx context.Context, in ReviewInput) (*ReviewDTO, error) {
	decision := leaseDomain.RequestStatus(in.Decision)
	if decision != leaseDomain.RequestApproved && decision != leaseDomain.RequestRejected {
		return nil, leaseDomain.ErrInvalidDecision
	}

	var dto *ReviewDTO
	var note notificationDomain.Notification

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.LeaseRequests.GetByIDForUpdate(ctx, in.RequestID)
		if err != nil {
			return leaseDomain.ErrRequestNotFound
		}
		if req.Status != leaseDomain.RequestPending {
			return leaseDomain.ErrAlreadyReviewed
		}

		req.Status = decision
		req.OwnerResponse = in.OwnerResponse
		if err := r.LeaseRequests.Save(ctx, req); err != nil {
			return err
		}

		dto = &ReviewDTO{RequestID: req.ID, Status: string(decision), OwnerResponse: req.OwnerResponse}

		if decision == leaseDomain.RequestApproved {
			p, err := r.Properties.GetByIDForUpdate(ctx, req.PropertyID)
			if err != nil {
				return propertyDomain.ErrNotFound
			}
			// Re-checked under the row lock: another pending request may
			// have been approved since this one was filed.
			if p.Status != propertyDomain.StatusAvailable {
				return fmt.Errorf("%w (property %d)", propertyDomain.ErrNotAvailable, p.ID)
			}

			l := &leaseDomain.Lease{
				PropertyID:  req.PropertyID,
				TenantID:    req.TenantID,
				StartDate:   req.StartDate,
				EndDate:     req.EndDate,
				MonthlyRent: req.MonthlyRent,
				Status:      leaseDomain.StatusActive,
			}
			if err := r.Leases.Create(ctx, l); err != nil {
				return err
			}

			p.Status = propertyDomain.StatusLeased
			if err := r.Properties.Save(ctx, p); err != nil {
				return err
			}

			// Close-before-insert keeps at most one Active ledger row.
			start := today()
			if err := r.Ownerships.CloseActiveByPropertyID(ctx, req.PropertyID, start); err != nil {
				return err
			}
			tenantID := req.TenantID
			own := &ownershipDomain.Ownership{
				PropertyID:    req.PropertyID,
				OwnerID:       p.OwnerID,
				TenantID:      &tenantID,
				OwnershipType: ownershipDomain.TypeLeased,
				StartDate:     start,
				Status:        ownershipDomain.StatusActive,
			}
			if err := r.Ownerships.Create(ctx, own); err != nil {
				return err
			}
			dto.LeaseID = &l.ID
		}

		note = notificationDomain.Notification{
			UserType:  notificationDomain.UserTenant,
			UserID:    req.TenantID,
			Type:      notificationDomain.TypeLeaseRequest,
			RelatedID: req.ID,
		}
		if decision == leaseDomain.RequestApproved {
			note.Title = "Lease request approved"
			note.Message = "Your lease request has been approved. Welcome to your new home!"
		} else {
			note.Title = "Lease request rejected"
			note.Message = "Your lease request has been rejected."
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.sink.Notify(ctx, note)
	return dto, nil
}

// Get returns a request without side effects.
func (u *Usecase) Get(ctx context.Context, requestID uint64) (*RequestDTO, error) {
	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, leaseDomain.ErrRequestNotFound
	}
	return &RequestDTO{
		ID:          req.ID,
		PropertyID:  req.PropertyID,
		TenantID:    req.TenantID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MonthlyRent: req.MonthlyRent,
		Status:      string(req.Status),
		CreatedAt:   req.CreatedAt,
	}, nil
}
