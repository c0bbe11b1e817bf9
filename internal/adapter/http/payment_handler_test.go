package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	financeDomain "propertyhub-backend/internal/domain/finance"
	leaseDomain "propertyhub-backend/internal/domain/lease"
	paymentDomain "propertyhub-backend/internal/domain/payment"
	"propertyhub-backend/internal/domain/uow"
	"propertyhub-backend/internal/testutil/repomock"
	"propertyhub-backend/internal/testutil/sinkmock"
	"propertyhub-backend/internal/testutil/uowmock"
	"propertyhub-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func TestConfirmPayment_Success(t *testing.T) {
	e := newEchoWithValidator()

	payments := &repomock.PaymentRepo{
		GetByIDForUpdateFn: func(context.Context, uint64) (*paymentDomain.Payment, error) {
			return &paymentDomain.Payment{
				ID:      77,
				LeaseID: 301,
				Amount:  decimal.NewFromInt(1000),
				Status:  paymentDomain.StatusPending,
			}, nil
		},
	}
	leases := &repomock.LeaseRepo{
		GetByIDFn: func(context.Context, uint64) (*leaseDomain.Lease, error) {
			return &leaseDomain.Lease{ID: 301, PropertyID: 10, TenantID: 20}, nil
		},
	}
	txs := &repomock.FinanceRepo{
		CreateFn: func(_ context.Context, tr *financeDomain.Transaction) error {
			if tr.TransactionType != financeDomain.TypeIncome {
				t.Fatalf("expected income, got %s", tr.TransactionType)
			}
			return nil
		},
	}
	tx := &uowmock.UoW{Repos: uow.Repos{Payments: payments, Leases: leases, Transactions: txs}}
	uc := payment.NewUsecase(payments, leases, tx, &sinkmock.Sink{})
	h := NewPaymentHandler(uc)

	body := map[string]any{"status": "Paid", "late_fee": 50.00}
	req := httptest.NewRequest(stdhttp.MethodPatch, "/payments/77", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("77")

	if err := h.Confirm(c); err != nil {
		t.Fatalf("Confirm error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}

	var dto payment.PaymentDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.Status != "Paid" || dto.PaymentDate == nil {
		t.Fatalf("dto mismatch: %+v", dto)
	}
}

func TestConfirmPayment_UnknownStatusIs422(t *testing.T) {
	e := newEchoWithValidator()
	uc := payment.NewUsecase(&repomock.PaymentRepo{}, &repomock.LeaseRepo{}, &uowmock.UoW{}, &sinkmock.Sink{})
	h := NewPaymentHandler(uc)

	req := httptest.NewRequest(stdhttp.MethodPatch, "/payments/77", mustJSON(map[string]any{"status": "Settled"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("77")

	if err := h.Confirm(c); err != nil {
		t.Fatalf("Confirm error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestCreatePayment_UnknownLeaseIs404(t *testing.T) {
	e := newEchoWithValidator()
	leases := &repomock.LeaseRepo{}
	uc := payment.NewUsecase(&repomock.PaymentRepo{}, leases, &uowmock.UoW{}, &sinkmock.Sink{})
	h := NewPaymentHandler(uc)

	body := map[string]any{
		"lease_id": 999,
		"amount":   1000.00,
		"due_date": "2026-02-01",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/payments", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404, body=%s", rec.Code, rec.Body.String())
	}
}
