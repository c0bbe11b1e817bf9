package inspection

import (
	"context"

	inspectionDomain "propertyhub-backend/internal/domain/inspection"
	notificationDomain "propertyhub-backend/internal/domain/notification"
	"propertyhub-backend/internal/domain/uow"
)

type Usecase struct {
	requests inspectionDomain.Repository
	uow      uow.UnitOfWork
	sink     notificationDomain.Sink
}

func NewUsecase(requests inspectionDomain.Repository, tx uow.UnitOfWork, sink notificationDomain.Sink) *Usecase {
	return &Usecase{requests: requests, uow: tx, sink: sink}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*RequestDTO, error) {
	req := &inspectionDomain.Request{
		PropertyID:  in.PropertyID,
		TenantID:    in.TenantID,
		RequestType: inspectionDomain.RequestType(in.RequestType),
		Status:      inspectionDomain.StatusPending,
	}
	if err := u.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	return toDTO(req), nil
}

// Update applies a full-payload update; UpdateStatus reuses it so the
// quick path notifies exactly like this one.
func (u *Usecase) Update(ctx context.Context, in UpdateInput) (*RequestDTO, error) {
	next := inspectionDomain.Status(in.Status)

	var dto *RequestDTO
	var note *notificationDomain.Notification

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Inspections.GetByIDForUpdate(ctx, in.RequestID)
		if err != nil {
			return inspectionDomain.ErrNotFound
		}
		if !req.Status.CanTransition(next) {
			return inspectionDomain.ErrInvalidTransition
		}

		changed := req.Status != next
		req.Status = next
		if in.ScheduledDate != nil {
			req.ScheduledDate = in.ScheduledDate
		}
		if in.Findings != nil {
			req.Findings = *in.Findings
		}
		if err := r.Inspections.Save(ctx, req); err != nil {
			return err
		}

		if changed && req.TenantID != nil {
			note = &notificationDomain.Notification{
				UserType:  notificationDomain.UserTenant,
				UserID:    *req.TenantID,
				Title:     "Inspection " + string(next),
				Message:   "The inspection of your property is now " + string(next),
				Type:      notificationDomain.TypeInspection,
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

func (u *Usecase) UpdateStatus(ctx context.Context, requestID uint64, status string) (*RequestDTO, error) {
	return u.Update(ctx, UpdateInput{RequestID: requestID, Status: status})
}

func (u *Usecase) Get(ctx context.Context, requestID uint64) (*RequestDTO, error) {
	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, inspectionDomain.ErrNotFound
	}
	return toDTO(req), nil
}

func toDTO(req *inspectionDomain.Request) *RequestDTO {
	return &RequestDTO{
		ID:            req.ID,
		PropertyID:    req.PropertyID,
		TenantID:      req.TenantID,
		RequestType:   string(req.RequestType),
		ScheduledDate: req.ScheduledDate,
		Findings:      req.Findings,
		Status:        string(req.Status),
		CreatedAt:     req.CreatedAt,
	}
}
