package http

import (
	"net/http"

	"propertyhub-backend/internal/usecase/party"

	"github.com/labstack/echo/v4"
)

type PartyHandler struct{ uc *party.Usecase }

func NewPartyHandler(uc *party.Usecase) *PartyHandler { return &PartyHandler{uc: uc} }

type createOwnerReq struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

type createTenantReq struct {
	Name    string  `json:"name"  validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   string  `json:"phone"`
	OwnerID *uint64 `json:"owner_id"`
}

func (h *PartyHandler) CreateOwner(c echo.Context) error {
	var req createOwnerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	o, err := h.uc.CreateOwner(c.Request().Context(), party.CreateOwnerInput(req))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *PartyHandler) GetOwner(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid owner id"})
	}
	o, err := h.uc.GetOwner(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *PartyHandler) CreateTenant(c echo.Context) error {
	var req createTenantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	t, err := h.uc.CreateTenant(c.Request().Context(), party.CreateTenantInput(req))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *PartyHandler) GetTenant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tenant id"})
	}
	t, err := h.uc.GetTenant(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}
