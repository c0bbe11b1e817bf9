package maintenance

import (
	"context"
	"time"

	maintenanceDomain "propertyhub-backend/internal/domain/maintenance"
	notificationDomain "propertyhub-backend/internal/domain/notification"
	"propertyhub-backend/internal/domain/uow"
)

type Usecase struct {
	requests maintenanceDomain.Repository
	uow      uow.UnitOfWork
	sink     notificationDomain.Sink
}

func NewUsecase(requests maintenanceDomain.Repository, tx uow.UnitOfWork, sink notificationDomain.Sink) *Usecase {
	return &Usecase{requests: requests, uow: tx, sink: sink}
}

func today() time.Time { return time.Now().UTC().Truncate(24 * time.Hour) }

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*RequestDTO, error) {
	priority := maintenanceDomain.Priority(in.Priority)
	if priority == "" {
		priority = maintenanceDomain.PriorityMedium
	}
	req := &maintenanceDomain.Request{
		PropertyID:  in.PropertyID,
		TenantID:    in.TenantID,
		Description: in.Description,
		Priority:    priority,
		Status:      maintenanceDomain.StatusPending,
	}
	if err := u.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	return toDTO(req), nil
}

// Update applies a full-payload update. The status-only endpoint goes
// through the same path, so both produce identical notification
// behavior: the tenant hears about it only when the status changed.
func (u *Usecase) Update(ctx context.Context, in UpdateInput) (*RequestDTO, error) {
	next := maintenanceDomain.Status(in.Status)

	var dto *RequestDTO
	var note *notificationDomain.Notification

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Maintenance.GetByIDForUpdate(ctx, in.RequestID)
		if err != nil {
			return maintenanceDomain.ErrNotFound
		}
		if !req.Status.CanTransition(next) {
			return maintenanceDomain.ErrInvalidTransition
		}

		changed := req.Status != next
		req.Status = next
		if in.Description != nil {
			req.Description = *in.Description
		}
		if in.Priority != nil {
			req.Priority = maintenanceDomain.Priority(*in.Priority)
		}
		if next == maintenanceDomain.StatusCompleted {
			if in.Cost != nil {
				req.Cost = in.Cost
			}
			if in.CompletionDate != nil {
				req.CompletionDate = in.CompletionDate
			} else if req.CompletionDate == nil {
				done := today()
				req.CompletionDate = &done
			}
		}
		if err := r.Maintenance.Save(ctx, req); err != nil {
			return err
		}

		if changed {
			note = &notificationDomain.Notification{
				UserType:  notificationDomain.UserTenant,
				UserID:    req.TenantID,
				Title:     "Maintenance request " + string(next),
				Message:   "Your maintenance request is now " + string(next),
				Type:      notificationDomain.TypeMaintenance,
				RelatedID: req.ID,
			}
		}
		dto = toDTO(req)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if note != nil {
		u.sink.Notify(ctx, *note)
	}
	return dto, nil
}

// UpdateStatus is the lightweight transition path: same guards, same
// notifications, no payload beyond the new status.
func (u *Usecase) UpdateStatus(ctx context.Context, requestID uint64, status string) (*RequestDTO, error) {
	return u.Update(ctx, UpdateInput{RequestID: requestID, Status: status})
}

// Get returns a request without side effects.
func (u *Usecase) Get(ctx context.Context, requestID uint64) (*RequestDTO, error) {
	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, maintenanceDomain.ErrNotFound
	}
	return toDTO(req), nil
}

func toDTO(req *maintenanceDomain.Request) *RequestDTO {
	return &RequestDTO{
		ID:             req.ID,
		PropertyID:     req.PropertyID,
		TenantID:       req.TenantID,
		Description:    req.Description,
		Priority:       string(req.Priority),
		Cost:           req.Cost,
		CompletionDate: req.CompletionDate,
		Status:         string(req.Status),
		CreatedAt:      req.CreatedAt,
	}
}
