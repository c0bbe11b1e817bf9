package http

import (
	"net/http"

	"propertyhub-backend/internal/usecase/maintenance"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type MaintenanceHandler struct{ uc *maintenance.Usecase }

func NewMaintenanceHandler(uc *maintenance.Usecase) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc}
}

type createMaintenanceReq struct {
	PropertyID  uint64 `json:"property_id" validate:"required"`
	TenantID    uint64 `json:"tenant_id"   validate:"required"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=Low Medium High"`
}

type updateMaintenanceReq struct {
	Status         string   `json:"status"          validate:"required,oneof=Pending 'In Progress' Completed Cancelled"`
	Description    *string  `json:"description"`
	Priority       *string  `json:"priority"        validate:"omitempty,oneof=Low Medium High"`
	Cost           *float64 `json:"cost"            validate:"omitempty,gte=0,dec2"`
	CompletionDate *string  `json:"completion_date" validate:"omitempty,datetime=2006-01-02"`
}

// Same enum as the full update; an unknown status is a validation
// error, not a transition conflict.
type maintenanceStatusReq struct {
	Status string `json:"status" validate:"required,oneof=Pending 'In Progress' Completed Cancelled"`
}

func (h *MaintenanceHandler) Create(c echo.Context) error {
	var req createMaintenanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), maintenance.CreateInput{
		PropertyID:  req.PropertyID,
		TenantID:    req.TenantID,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *MaintenanceHandler) Update(c echo.Context) error {
	requestID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
	}
	var req updateMaintenanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := maintenance.UpdateInput{
		RequestID:   requestID,
		Status:      req.Status,
		Description: req.Description,
		Priority:    req.Priority,
	}
	if req.Cost != nil {
		cost := decimal.NewFromFloat(*req.Cost)
		in.Cost = &cost
	}
	if req.CompletionDate != nil {
		done, _ := parseDate(*req.CompletionDate)
		in.CompletionDate = &done
	}
	dto, err := h.uc.Update(c.Request().Context(), in)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// UpdateStatus is the quick transition path; notification behavior is
// identical to the full update.
func (h *MaintenanceHandler) UpdateStatus(c echo.Context) error {
	requestID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
	}
	var req maintenanceStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.UpdateStatus(c.Request().Context(), requestID, req.Status)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MaintenanceHandler) Get(c echo.Context) error {
	requestID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), requestID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
