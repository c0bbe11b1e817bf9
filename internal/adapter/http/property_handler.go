package http

import (
	"net/http"

	"propertyhub-backend/internal/usecase/property"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PropertyHandler struct{ uc *property.Usecase }

func NewPropertyHandler(uc *property.Usecase) *PropertyHandler { return &PropertyHandler{uc: uc} }

type createPropertyReq struct {
	Address       string  `json:"address"        validate:"required"`
	City          string  `json:"city"`
	PropertyType  string  `json:"property_type"`
	PurchasePrice float64 `json:"purchase_price" validate:"required,gt=0,dec2"`
	CurrentValue  float64 `json:"current_value"  validate:"omitempty,gte=0,dec2"`
	OwnerID       *uint64 `json:"owner_id"`
}

func (h *PropertyHandler) Create(c echo.Context) error {
	var req createPropertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), property.CreateInput{
		Address:       req.Address,
		City:          req.City,
		PropertyType:  req.PropertyType,
		PurchasePrice: decimal.NewFromFloat(req.PurchasePrice),
		CurrentValue:  decimal.NewFromFloat(req.CurrentValue),
		OwnerID:       req.OwnerID,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
