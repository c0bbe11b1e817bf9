package insurance

import (
	"context"
	"fmt"
	"time"

	financeDomain "propertyhub-backend/internal/domain/finance"
	insuranceDomain "propertyhub-backend/internal/domain/insurance"
	notificationDomain "propertyhub-backend/internal/domain/notification"
	propertyDomain "propertyhub-backend/internal/domain/property"
	"propertyhub-backend/internal/domain/uow"
	"propertyhub-backend/pkg/id"
)

type Usecase struct {
	offers     insuranceDomain.OfferRepository
	properties propertyDomain.Repository
	uow        uow.UnitOfWork
	sink       notificationDomain.Sink
}

func NewUsecase(offers insuranceDomain.OfferRepository, properties propertyDomain.Repository, tx uow.UnitOfWork, sink notificationDomain.Sink) *Usecase {
	return &Usecase{offers: offers, properties: properties, uow: tx, sink: sink}
}

func today() time.Time { return time.Now().UTC().Truncate(24 * time.Hour) }

// CreateOffer records an owner's insurance proposal to a tenant.
func (u *Usecase) CreateOffer(ctx context.Context, in CreateOfferInput) (*OfferDTO, error) {
	if _, err := u.properties.GetByID(ctx, in.PropertyID); err != nil {
		return nil, propertyDomain.ErrNotFound
	}

	offer := &insuranceDomain.Offer{
		PropertyID:       in.PropertyID,
		TenantID:         in.TenantID,
		Provider:         in.Provider,
		CoverageType:     in.CoverageType,
		CoverageAmount:   in.CoverageAmount,
		PremiumAmount:    in.PremiumAmount,
		PremiumFrequency: in.PremiumFrequency,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		Terms:            in.Terms,
		Benefits:         in.Benefits,
		Status:           insuranceDomain.OfferPending,
	}
	if err := u.offers.Create(ctx, offer); err != nil {
		return nil, err
	}

	u.sink.Notify(ctx, notificationDomain.Notification{
		UserType:  notificationDomain.UserTenant,
		UserID:    in.TenantID,
		Title:     "New insurance offer",
		Message:   fmt.Sprintf("%s offered %s coverage for your property", in.Provider, in.CoverageType),
		Type:      notificationDomain.TypeInsuranceOffer,
		RelatedID: offer.ID,
	})

	return &OfferDTO{
		ID:             offer.ID,
		PropertyID:     offer.PropertyID,
		TenantID:       offer.TenantID,
		Provider:       offer.Provider,
		CoverageAmount: offer.CoverageAmount,
		PremiumAmount:  offer.PremiumAmount,
		Status:         string(offer.Status),
		CreatedAt:      offer.CreatedAt,
	}, nil
}

// Respond settles a pending offer. Acceptance spawns the policy and
// the premium expense in the same transaction as the status change;
// rejection records the decision only. Either way the owner is told
// what the tenant said, after commit.
func (u *Usecase) Respond(ctx context.Context, in RespondInput) (*RespondDTO, error) {
	decision := insuranceDomain.OfferStatus(in.Decision)
	if decision != insuranceDomain.OfferAccepted && decision != insuranceDomain.OfferRejected {
		return nil, insuranceDomain.ErrInvalidDecision
	}

	var dto *RespondDTO
	var propertyID uint64

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		offer, err := r.Offers.GetByIDForUpdate(ctx, in.OfferID)
		if err != nil {
			return insuranceDomain.ErrOfferNotFound
		}
		if offer.Status != insuranceDomain.OfferPending {
			return insuranceDomain.ErrAlreadyResponded
		}

		respondedAt := today()
		offer.Status = decision
		offer.TenantResponse = in.TenantResponse
		offer.ResponseDate = &respondedAt
		if err := r.Offers.Save(ctx, offer); err != nil {
			return err
		}

		dto = &RespondDTO{OfferID: offer.ID, Status: string(decision)}

		if decision == insuranceDomain.OfferAccepted {
			policyNumber := insuranceDomain.PolicyNumber(offer.ID, time.Now().UTC().Year())
			policy := &insuranceDomain.Policy{
				OfferID:          offer.ID,
				PropertyID:       offer.PropertyID,
				TenantID:         offer.TenantID,
				PolicyNumber:     policyNumber,
				Provider:         offer.Provider,
				CoverageType:     offer.CoverageType,
				CoverageAmount:   offer.CoverageAmount,
				PremiumAmount:    offer.PremiumAmount,
				PremiumFrequency: offer.PremiumFrequency,
				StartDate:        offer.StartDate,
				EndDate:          offer.EndDate,
				Status:           insuranceDomain.PolicyActive,
			}
			if err := r.Policies.Create(ctx, policy); err != nil {
				return err
			}

			tx := &financeDomain.Transaction{
				PropertyID:      offer.PropertyID,
				TransactionType: financeDomain.TypeExpense,
				Category:        financeDomain.CategoryInsurance,
				Amount:          offer.PremiumAmount,
				Description:     fmt.Sprintf("Insurance premium for policy %s", policyNumber),
				Reference:       id.NewID32(),
				TransactionDate: time.Now().UTC(),
			}
			if err := r.Transactions.Create(ctx, tx); err != nil {
				return err
			}
			dto.PolicyNumber = policyNumber
		}

		propertyID = offer.PropertyID
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The owner address lookup stays outside the transaction: a failed
	// read must not undo an accepted policy.
	if p, perr := u.properties.GetByID(ctx, propertyID); perr == nil && p.OwnerID != nil {
		verb := "rejected"
		if decision == insuranceDomain.OfferAccepted {
			verb = "accepted"
		}
		msg := fmt.Sprintf("The tenant %s your insurance offer", verb)
		if in.TenantResponse != "" {
			msg += ": " + in.TenantResponse
		}
		u.sink.Notify(ctx, notificationDomain.Notification{
			UserType:  notificationDomain.UserOwner,
			UserID:    *p.OwnerID,
			Title:     "Insurance offer " + string(decision),
			Message:   msg,
			Type:      notificationDomain.TypeInsuranceOffer,
			RelatedID: in.OfferID,
		})
	}
	return dto, nil
}

// GetOffer returns an offer without side effects.
func (u *Usecase) GetOffer(ctx context.Context, offerID uint64) (*OfferDTO, error) {
	offer, err := u.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, insuranceDomain.ErrOfferNotFound
	}
	return &OfferDTO{
		ID:             offer.ID,
		PropertyID:     offer.PropertyID,
		TenantID:       offer.TenantID,
		Provider:       offer.Provider,
		CoverageAmount: offer.CoverageAmount,
		PremiumAmount:  offer.PremiumAmount,
		Status:         string(offer.Status),
		CreatedAt:      offer.CreatedAt,
	}, nil
}
