package http

import (
	"net/http"

	"propertyhub-backend/internal/usecase/inspection"

	"github.com/labstack/echo/v4"
)

type InspectionHandler struct{ uc *inspection.Usecase }

func NewInspectionHandler(uc *inspection.Usecase) *InspectionHandler {
	return &InspectionHandler{uc: uc}
}

type createInspectionReq struct {
	PropertyID  uint64  `json:"property_id"  validate:"required"`
	TenantID    *uint64 `json:"tenant_id"`
	RequestType string  `json:"request_type" validate:"required,oneof='Owner Initiated' 'Tenant Requested'"`
}

type inspectionStatusReq struct {
	Status string `json:"status" validate:"required,oneof=Pending Scheduled Completed Rejected"`
}

type updateInspectionReq struct {
	Status        string  `json:"status"         validate:"required,oneof=Pending Scheduled Completed Rejected"`
	ScheduledDate *string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	Findings      *string `json:"findings"`
}

func (h *InspectionHandler) Create(c echo.Context) error {
	var req createInspectionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), inspection.CreateInput{
		PropertyID:  req.PropertyID,
		TenantID:    req.TenantID,
		RequestType: req.RequestType,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InspectionHandler) Update(c echo.Context) error {
	requestID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
	}
	var req updateInspectionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := inspection.UpdateInput{
		RequestID: requestID,
		Status:    req.Status,
		Findings:  req.Findings,
	}
	if req.ScheduledDate != nil {
		when, _ := parseDate(*req.ScheduledDate)
		in.ScheduledDate = &when
	}
	dto, err := h.uc.Update(c.Request().Context(), in)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// UpdateStatus mirrors the maintenance quick path.
func (h *InspectionHandler) UpdateStatus(c echo.Context) error {
	requestID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
	}
	var req inspectionStatusReq
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

func (h *InspectionHandler) Get(c echo.Context) error {
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
