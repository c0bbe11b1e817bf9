package payment

import (
	"context"
	"fmt"
	"time"

	financeDomain "propertyhub-backend/internal/domain/finance"
	leaseDomain "propertyhub-backend/internal/domain/lease"
	notificationDomain "propertyhub-backend/internal/domain/notification"
	paymentDomain "propertyhub-backend/internal/domain/payment"
	"propertyhub-backend/internal/domain/uow"
	"propertyhub-backend/pkg/id"
)

type Usecase struct {
	payments paymentDomain.Repository
	leases   leaseDomain.Repository
	uow      uow.UnitOfWork
	sink     notificationDomain.Sink
}

func NewUsecase(payments paymentDomain.Repository, leases leaseDomain.Repository, tx uow.UnitOfWork, sink notificationDomain.Sink) *Usecase {
	return &Usecase{payments: payments, leases: leases, uow: tx, sink: sink}
}

func today() time.Time { return time.Now().UTC().Truncate(24 * time.Hour) }

// Create records an expected rent payment against a lease.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*PaymentDTO, error) {
	l, err := u.leases.GetByID(ctx, in.LeaseID)
	if err != nil {
		return nil, leaseDomain.ErrNotFound
	}

	p := &paymentDomain.Payment{
		LeaseID:       l.ID,
		Amount:        in.Amount,
		DueDate:       in.DueDate,
		PaymentMethod: in.PaymentMethod,
		Status:        paymentDomain.StatusPending,
	}
	if err := u.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

// Confirm updates the payment's status, notes and late fee. Only the
// first transition into Paid records income and notifies the tenant;
// re-confirming an already-Paid payment must not double-count revenue.
// The previous status is read under the row lock, so two racing
// confirms cannot both see a non-Paid payment.
func (u *Usecase) Confirm(ctx context.Context, in ConfirmInput) (*PaymentDTO, error) {
	status := paymentDomain.Status(in.Status)
	if !paymentDomain.ValidStatus(status) {
		return nil, paymentDomain.ErrInvalidStatus
	}

	var dto *PaymentDTO
	var note *notificationDomain.Notification

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByIDForUpdate(ctx, in.PaymentID)
		if err != nil {
			return paymentDomain.ErrNotFound
		}

		previous := p.Status
		p.Status = status
		if in.Notes != nil {
			p.Notes = *in.Notes
		}
		if in.LateFee != nil {
			p.LateFee = *in.LateFee
		}
		if status == paymentDomain.StatusPaid && p.PaymentDate == nil {
			paidOn := today()
			p.PaymentDate = &paidOn
		}
		if err := r.Payments.Save(ctx, p); err != nil {
			return err
		}

		if previous != paymentDomain.StatusPaid && status == paymentDomain.StatusPaid {
			l, err := r.Leases.GetByID(ctx, p.LeaseID)
			if err != nil {
				return leaseDomain.ErrNotFound
			}
			tx := &financeDomain.Transaction{
				PropertyID:      l.PropertyID,
				TransactionType: financeDomain.TypeIncome,
				Category:        financeDomain.CategoryRent,
				Amount:          p.Amount.Add(p.LateFee),
				Description:     fmt.Sprintf("Rent payment for lease %d via %s", l.ID, p.PaymentMethod),
				Reference:       id.NewID32(),
				TransactionDate: time.Now().UTC(),
			}
			if err := r.Transactions.Create(ctx, tx); err != nil {
				return err
			}

			// Payment does not store the tenant; derive it via the lease.
			note = &notificationDomain.Notification{
				UserType:  notificationDomain.UserTenant,
				UserID:    l.TenantID,
				Title:     "Payment received",
				Message:   fmt.Sprintf("Your rent payment of %s has been confirmed", p.Amount.Add(p.LateFee).StringFixed(2)),
				Type:      notificationDomain.TypePayment,
				RelatedID: p.ID,
			}
		}

		dto = toDTO(p)
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

// Get returns a payment without side effects.
func (u *Usecase) Get(ctx context.Context, paymentID uint64) (*PaymentDTO, error) {
	p, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, paymentDomain.ErrNotFound
	}
	return toDTO(p), nil
}

func toDTO(p *paymentDomain.Payment) *PaymentDTO {
	return &PaymentDTO{
		ID:          p.ID,
		LeaseID:     p.LeaseID,
		Amount:      p.Amount,
		LateFee:     p.LateFee,
		PaymentDate: p.PaymentDate,
		DueDate:     p.DueDate,
		Status:      string(p.Status),
		Notes:       p.Notes,
	}
}
