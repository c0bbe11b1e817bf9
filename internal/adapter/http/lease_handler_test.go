package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	leaseDomain "propertyhub-backend/internal/domain/lease"
	propertyDomain "propertyhub-backend/internal/domain/property"
	"propertyhub-backend/internal/domain/uow"
	"propertyhub-backend/internal/testutil/repomock"
	"propertyhub-backend/internal/testutil/sinkmock"
	"propertyhub-backend/internal/testutil/uowmock"
	"propertyhub-backend/internal/usecase/leaserequest"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func newLeaseHandler(reqs *repomock.LeaseRequestRepo, props *repomock.PropertyRepo) *LeaseHandler {
	tx := &uowmock.UoW{Repos: uow.Repos{LeaseRequests: reqs, Properties: props}}
	uc := leaserequest.NewUsecase(reqs, props, tx, &sinkmock.Sink{})
	return NewLeaseHandler(uc)
}

func TestCreateLeaseRequest_Success(t *testing.T) {
	e := newEchoWithValidator()

	props := &repomock.PropertyRepo{
		GetByIDFn: func(context.Context, uint64) (*propertyDomain.Property, error) {
			return &propertyDomain.Property{ID: 10, Status: propertyDomain.StatusAvailable}, nil
		},
	}
	reqs := &repomock.LeaseRequestRepo{
		GetPendingByPropertyAndTenantFn: func(context.Context, uint64, uint64) (*leaseDomain.Request, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(_ context.Context, r *leaseDomain.Request) error {
			r.ID = 42
			return nil
		},
	}
	h := newLeaseHandler(reqs, props)

	body := map[string]any{
		"property_id":  10,
		"tenant_id":    20,
		"start_date":   "2026-01-01",
		"end_date":     "2026-12-31",
		"monthly_rent": 1500.00,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/lease-requests", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateRequest(c); err != nil {
		t.Fatalf("CreateRequest error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", rec.Code, rec.Body.String())
	}

	var dto leaserequest.RequestDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.ID != 42 || dto.Status != "Pending" {
		t.Fatalf("dto mismatch: %+v", dto)
	}
}

func TestCreateLeaseRequest_ValidationErrors(t *testing.T) {
	e := newEchoWithValidator()
	h := newLeaseHandler(&repomock.LeaseRequestRepo{}, &repomock.PropertyRepo{})

	body := map[string]any{
		"property_id":  10,
		"tenant_id":    20,
		"start_date":   "01/01/2026", // wrong format
		"end_date":     "2026-12-31",
		"monthly_rent": 1500.123, // too many decimals
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/lease-requests", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateRequest(c); err != nil {
		t.Fatalf("CreateRequest error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	fields := map[string]bool{}
	for _, d := range resp.Details {
		fields[d.Field] = true
	}
	if !fields["StartDate"] || !fields["MonthlyRent"] {
		t.Fatalf("missing expected field errors: %+v", resp.Details)
	}
}

func TestReviewLeaseRequest_StatusMapping(t *testing.T) {
	e := newEchoWithValidator()

	tests := []struct {
		name     string
		paramID  string
		decision string
		getFn    func(context.Context, uint64) (*leaseDomain.Request, error)
		want     int
	}{
		{
			name:     "rejection succeeds",
			paramID:  "42",
			decision: "Rejected",
			getFn: func(context.Context, uint64) (*leaseDomain.Request, error) {
				return &leaseDomain.Request{ID: 42, TenantID: 20, Status: leaseDomain.RequestPending}, nil
			},
			want: stdhttp.StatusOK,
		},
		{
			name:     "unknown request is 404",
			paramID:  "42",
			decision: "Rejected",
			getFn: func(context.Context, uint64) (*leaseDomain.Request, error) {
				return nil, gorm.ErrRecordNotFound
			},
			want: stdhttp.StatusNotFound,
		},
		{
			name:     "second review is 409",
			paramID:  "42",
			decision: "Approved",
			getFn: func(context.Context, uint64) (*leaseDomain.Request, error) {
				return &leaseDomain.Request{ID: 42, Status: leaseDomain.RequestApproved}, nil
			},
			want: stdhttp.StatusConflict,
		},
		{
			name:     "garbage id is 400",
			paramID:  "abc",
			decision: "Approved",
			want:     stdhttp.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			reqs := &repomock.LeaseRequestRepo{GetByIDForUpdateFn: tt.getFn}
			h := newLeaseHandler(reqs, &repomock.PropertyRepo{})

			body := map[string]any{"decision": tt.decision}
			req := httptest.NewRequest(stdhttp.MethodPatch, "/lease-requests/"+tt.paramID, mustJSON(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.paramID)

			if err := h.ReviewRequest(c); err != nil {
				t.Fatalf("ReviewRequest error: %v", err)
			}
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d, body=%s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestReviewLeaseRequest_RejectsUnknownDecision(t *testing.T) {
	e := newEchoWithValidator()
	h := newLeaseHandler(&repomock.LeaseRequestRepo{}, &repomock.PropertyRepo{})

	req := httptest.NewRequest(stdhttp.MethodPatch, "/lease-requests/42", mustJSON(map[string]any{"decision": "Maybe"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.ReviewRequest(c); err != nil {
		t.Fatalf("ReviewRequest error: %v", err)
	}
	// The oneof tag catches it before the usecase runs.
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}
