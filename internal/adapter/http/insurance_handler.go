package http

import (
	"net/http"

	"propertyhub-backend/internal/usecase/insurance"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type InsuranceHandler struct{ uc *insurance.Usecase }

func NewInsuranceHandler(uc *insurance.Usecase) *InsuranceHandler {
	return &InsuranceHandler{uc: uc}
}

type createOfferReq struct {
	PropertyID       uint64  `json:"property_id"       validate:"required"`
	TenantID         uint64  `json:"tenant_id"         validate:"required"`
	Provider         string  `json:"provider"          validate:"required"`
	CoverageType     string  `json:"coverage_type"     validate:"required"`
	CoverageAmount   float64 `json:"coverage_amount"   validate:"required,gt=0,dec2"`
	PremiumAmount    float64 `json:"premium_amount"    validate:"required,gt=0,dec2"`
	PremiumFrequency string  `json:"premium_frequency" validate:"omitempty,oneof=Monthly Quarterly Yearly"`
	StartDate        string  `json:"start_date"        validate:"required,datetime=2006-01-02"`
	EndDate          string  `json:"end_date"          validate:"required,datetime=2006-01-02"`
	Terms            string  `json:"terms"`
	Benefits         string  `json:"benefits"`
}

type respondOfferReq struct {
	Decision       string `json:"decision"        validate:"required,oneof=Accepted Rejected"`
	TenantResponse string `json:"tenant_response"`
}

func (h *InsuranceHandler) CreateOffer(c echo.Context) error {
	var req createOfferReq
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

	dto, err := h.uc.CreateOffer(c.Request().Context(), insurance.CreateOfferInput{
		PropertyID:       req.PropertyID,
		TenantID:         req.TenantID,
		Provider:         req.Provider,
		CoverageType:     req.CoverageType,
		CoverageAmount:   decimal.NewFromFloat(req.CoverageAmount),
		PremiumAmount:    decimal.NewFromFloat(req.PremiumAmount),
		PremiumFrequency: req.PremiumFrequency,
		StartDate:        start,
		EndDate:          end,
		Terms:            req.Terms,
		Benefits:         req.Benefits,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InsuranceHandler) RespondOffer(c echo.Context) error {
	offerID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid offer id"})
	}
	var req respondOfferReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Respond(c.Request().Context(), insurance.RespondInput{
		OfferID:        offerID,
		Decision:       req.Decision,
		TenantResponse: req.TenantResponse,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InsuranceHandler) GetOffer(c echo.Context) error {
	offerID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid offer id"})
	}
	dto, err := h.uc.GetOffer(c.Request().Context(), offerID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
