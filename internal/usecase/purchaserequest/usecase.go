package purchaserequest

import (
	"context"
	"fmt"
	"time"

	notificationDomain "propertyhub-backend/internal/domain/notification"
	ownershipDomain "propertyhub-backend/internal/domain/ownership"
	propertyDomain "propertyhub-backend/internal/domain/property"
	purchaseDomain "propertyhub-backend/internal/domain/purchase"
	"propertyhub-backend/internal/domain/uow"

	"github.com/google/uuid"
)

type Usecase struct {
	requests   purchaseDomain.Repository
	properties propertyDomain.Repository
	uow        uow.UnitOfWork
	sink       notificationDomain.Sink
}

func NewUsecase(requests purchaseDomain.Repository, properties propertyDomain.Repository, tx uow.UnitOfWork, sink notificationDomain.Sink) *Usecase {
	return &Usecase{requests: requests, properties: properties, uow: tx, sink: sink}
}

func today() time.Time { return time.Now().UTC().Truncate(24 * time.Hour) }

// Create files a tenant's purchase offer. Only a sold property is off
// the market; leased properties can still receive offers.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*RequestDTO, error) {
	p, err := u.properties.GetByID(ctx, in.PropertyID)
	if err != nil {
		return nil, propertyDomain.ErrNotFound
	}
	if p.Status == propertyDomain.StatusSold {
		return nil, fmt.Errorf("%w (property %d)", propertyDomain.ErrAlreadySold, p.ID)
	}

	req := &purchaseDomain.Request{
		PropertyID: in.PropertyID,
		TenantID:   in.TenantID,
		OfferPrice: in.OfferPrice,
		Message:    in.Message,
		Status:     purchaseDomain.RequestPending,
	}
	if err := u.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	if p.OwnerID != nil {
		u.sink.Notify(ctx, notificationDomain.Notification{
			UserType:  notificationDomain.UserOwner,
			UserID:    *p.OwnerID,
			Title:     "New purchase offer",
			Message:   fmt.Sprintf("A tenant offered %s for %s", in.OfferPrice.StringFixed(2), p.Address),
			Type:      notificationDomain.TypePurchaseRequest,
			RelatedID: req.ID,
		})
	}

	return &RequestDTO{
		ID:         req.ID,
		PropertyID: req.PropertyID,
		TenantID:   req.TenantID,
		OfferPrice: req.OfferPrice,
		Status:     string(req.Status),
		CreatedAt:  req.CreatedAt,
	}, nil
}

// Review settles a pending offer. Approval transfers ownership: the
// active ledger row is closed before the Owned row for the buyer is
// inserted, the property flips to Sold and leaves the owner's
// portfolio, and a sale agreement document is recorded.
func (u *Usecase) Review(ctx context.Context, in ReviewInput) (*ReviewDTO, error) {
	decision := purchaseDomain.RequestStatus(in.Decision)
	if decision != purchaseDomain.RequestApproved && decision != purchaseDomain.RequestRejected {
		return nil, purchaseDomain.ErrInvalidDecision
	}

	var dto *ReviewDTO
	var note notificationDomain.Notification

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.PurchaseRequests.GetByIDForUpdate(ctx, in.RequestID)
		if err != nil {
			return purchaseDomain.ErrNotFound
		}
		if req.Status != purchaseDomain.RequestPending {
			return purchaseDomain.ErrAlreadyReviewed
		}

		req.Status = decision
		req.OwnerResponse = in.OwnerResponse
		if err := r.PurchaseRequests.Save(ctx, req); err != nil {
			return err
		}

		dto = &ReviewDTO{RequestID: req.ID, Status: string(decision), OwnerResponse: req.OwnerResponse}

		if decision == purchaseDomain.RequestApproved {
			p, err := r.Properties.GetByIDForUpdate(ctx, req.PropertyID)
			if err != nil {
				return propertyDomain.ErrNotFound
			}
			// Re-checked under the row lock: an earlier approval may have
			// sold the property while this offer sat pending.
			if p.Status == propertyDomain.StatusSold {
				return fmt.Errorf("%w (property %d)", propertyDomain.ErrAlreadySold, p.ID)
			}

			closed := today()
			// Close-before-insert: the reverse order would transiently
			// leave two Active rows for the property.
			if err := r.Ownerships.CloseActiveByPropertyID(ctx, req.PropertyID, closed); err != nil {
				return err
			}
			buyerID := req.TenantID
			price := req.OfferPrice
			own := &ownershipDomain.Ownership{
				PropertyID:    req.PropertyID,
				TenantID:      &buyerID,
				OwnershipType: ownershipDomain.TypeOwned,
				PurchasePrice: &price,
				StartDate:     closed,
				Status:        ownershipDomain.StatusActive,
			}
			if err := r.Ownerships.Create(ctx, own); err != nil {
				return err
			}

			p.Status = propertyDomain.StatusSold
			p.OwnerID = nil
			if err := r.Properties.Save(ctx, p); err != nil {
				return err
			}

			doc := &propertyDomain.Document{
				PropertyID:   req.PropertyID,
				DocumentType: "Sale Agreement",
				FileName:     fmt.Sprintf("sale-agreement-%d-%s.pdf", req.PropertyID, uuid.NewString()),
			}
			if err := r.Documents.Create(ctx, doc); err != nil {
				return err
			}
			dto.DocumentFile = doc.FileName
		}

		note = notificationDomain.Notification{
			UserType:  notificationDomain.UserTenant,
			UserID:    req.TenantID,
			Type:      notificationDomain.TypePurchaseRequest,
			RelatedID: req.ID,
		}
		if decision == purchaseDomain.RequestApproved {
			note.Title = "Purchase offer accepted"
			note.Message = "Congratulations! Your purchase offer has been accepted."
		} else {
			note.Title = "Purchase offer declined"
			note.Message = "Your purchase offer has been declined."
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.sink.Notify(ctx, note)
	return dto, nil
}

// Get returns an offer without side effects.
func (u *Usecase) Get(ctx context.Context, requestID uint64) (*RequestDTO, error) {
	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, purchaseDomain.ErrNotFound
	}
	return &RequestDTO{
		ID:         req.ID,
		PropertyID: req.PropertyID,
		TenantID:   req.TenantID,
		OfferPrice: req.OfferPrice,
		Status:     string(req.Status),
		CreatedAt:  req.CreatedAt,
	}, nil
}
