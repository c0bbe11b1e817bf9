package http

import (
	"net/http"

	"propertyhub-backend/internal/usecase/purchaserequest"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PurchaseHandler struct{ uc *purchaserequest.Usecase }

func NewPurchaseHandler(uc *purchaserequest.Usecase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

type createPurchaseRequestReq struct {
	PropertyID uint64  `json:"property_id" validate:"required"`
	TenantID   uint64  `json:"tenant_id"   validate:"required"`
	OfferPrice float64 `json:"offer_price" validate:"required,gt=0,dec2"`
	Message    string  `json:"message"`
}

type reviewPurchaseRequestReq struct {
	Decision      string `json:"decision"       validate:"required,oneof=Approved Rejected"`
	OwnerResponse string `json:"owner_response"`
}

func (h *PurchaseHandler) CreateRequest(c echo.Context) error {
	var req createPurchaseRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), purchaserequest.CreateInput{
		PropertyID: req.PropertyID,
		TenantID:   req.TenantID,
		OfferPrice: decimal.NewFromFloat(req.OfferPrice),
		Message:    req.Message,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PurchaseHandler) ReviewRequest(c echo.Context) error {
	requestID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
	}
	var req reviewPurchaseRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Review(c.Request().Context(), purchaserequest.ReviewInput{
		RequestID:     requestID,
		Decision:      req.Decision,
		OwnerResponse: req.OwnerResponse,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
