package http

import (
	"net/http"

	"propertyhub-backend/internal/usecase/leaserequest"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LeaseHandler struct{ uc *leaserequest.Usecase }

func NewLeaseHandler(uc *leaserequest.Usecase) *LeaseHandler { return &LeaseHandler{uc: uc} }

type createLeaseRequestReq struct {
	PropertyID  uint64  `json:"property_id"  validate:"required"`
	TenantID    uint64  `json:"tenant_id"    validate:"required"`
	StartDate   string  `json:"start_date"   validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date"     validate:"required,datetime=2006-01-02"`
	MonthlyRent float64 `json:"monthly_rent" validate:"required,gt=0,dec2"`
	Message     string  `json:"message"`
}

type reviewLeaseRequestReq struct {
	Decision      string `json:"decision"       validate:"required,oneof=Approved Rejected"`
	OwnerResponse string `json:"owner_response"`
}

func (h *LeaseHandler) CreateRequest(c echo.Context) error {
	var req createLeaseRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	start, _ := parseDate(req.StartDate)
	end, _ := parseDate(req.EndDate)

	dto, err := h.uc.Create(c.Request().Context(), leaserequest.CreateInput{
		PropertyID:  req.PropertyID,
		TenantID:    req.TenantID,
		StartDate:   start,
		EndDate:     end,
		MonthlyRent: decimal.NewFromFloat(req.MonthlyRent),
		Message:     req.Message,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LeaseHandler) ReviewRequest(c echo.Context) error {
	requestID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
	}
	var req reviewLeaseRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Review(c.Request().Context(), leaserequest.ReviewInput{
		RequestID:     requestID,
		Decision:      req.Decision,
		OwnerResponse: req.OwnerResponse,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LeaseHandler) GetRequest(c echo.Context) error {
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
