package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	inspectionDomain "propertyhub-backend/internal/domain/inspection"
	"propertyhub-backend/internal/domain/uow"
	"propertyhub-backend/internal/testutil/repomock"
	"propertyhub-backend/internal/testutil/sinkmock"
	"propertyhub-backend/internal/testutil/uowmock"
	"propertyhub-backend/internal/usecase/inspection"

	"github.com/labstack/echo/v4"
)

func newInspectionHandler(reqs *repomock.InspectionRepo) *InspectionHandler {
	tx := &uowmock.UoW{Repos: uow.Repos{Inspections: reqs}}
	uc := inspection.NewUsecase(reqs, tx, &sinkmock.Sink{})
	return NewInspectionHandler(uc)
}

func TestInspectionUpdateStatus(t *testing.T) {
	e := newEchoWithValidator()

	doStatus := func(t *testing.T, h *InspectionHandler, status string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(stdhttp.MethodPatch, "/inspection-requests/7/status", mustJSON(map[string]any{"status": status}))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("7")
		if err := h.UpdateStatus(c); err != nil {
			t.Fatalf("UpdateStatus error: %v", err)
		}
		return rec
	}

	t.Run("unknown status is a validation error, not a conflict", func(t *testing.T) {
		reqs := &repomock.InspectionRepo{
			GetByIDForUpdateFn: func(context.Context, uint64) (*inspectionDomain.Request, error) {
				t.Fatal("garbage input must not reach the transition guards")
				return nil, nil
			},
		}
		rec := doStatus(t, newInspectionHandler(reqs), "Cancelled")
		if rec.Code != stdhttp.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422, body=%s", rec.Code, rec.Body.String())
		}
	})

	t.Run("known status goes through", func(t *testing.T) {
		tenantID := uint64(20)
		reqs := &repomock.InspectionRepo{
			GetByIDForUpdateFn: func(context.Context, uint64) (*inspectionDomain.Request, error) {
				return &inspectionDomain.Request{ID: 7, TenantID: &tenantID, Status: inspectionDomain.StatusScheduled}, nil
			},
		}
		rec := doStatus(t, newInspectionHandler(reqs), "Completed")
		if rec.Code != stdhttp.StatusOK {
			t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
		}
	})
}
