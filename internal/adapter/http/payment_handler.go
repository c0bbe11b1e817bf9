package http

import (
	"net/http"

	"propertyhub-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type createPaymentReq struct {
	LeaseID       uint64  `json:"lease_id"       validate:"required"`
	Amount        float64 `json:"amount"         validate:"required,gt=0,dec2"`
	DueDate       string  `json:"due_date"       validate:"required,datetime=2006-01-02"`
	PaymentMethod string  `json:"payment_method"`
}

type confirmPaymentReq struct {
	Status  string   `json:"status"   validate:"required,oneof=Pending Paid Overdue Failed"`
	Notes   *string  `json:"notes"`
	LateFee *float64 `json:"late_fee" validate:"omitempty,gte=0,dec2"`
}

func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	due, _ := parseDate(req.DueDate)

	dto, err := h.uc.Create(c.Request().Context(), payment.CreateInput{
		LeaseID:       req.LeaseID,
		Amount:        decimal.NewFromFloat(req.Amount),
		DueDate:       due,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PaymentHandler) Confirm(c echo.Context) error {
	paymentID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment id"})
	}
	var req confirmPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := payment.ConfirmInput{
		PaymentID: paymentID,
		Status:    req.Status,
		Notes:     req.Notes,
	}
	if req.LateFee != nil {
		fee := decimal.NewFromFloat(*req.LateFee)
		in.LateFee = &fee
	}
	dto, err := h.uc.Confirm(c.Request().Context(), in)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) Get(c echo.Context) error {
	paymentID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), paymentID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
