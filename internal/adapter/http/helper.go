package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	inspectionDomain "propertyhub-backend/internal/domain/inspection"
	insuranceDomain "propertyhub-backend/internal/domain/insurance"
	leaseDomain "propertyhub-backend/internal/domain/lease"
	maintenanceDomain "propertyhub-backend/internal/domain/maintenance"
	partyDomain "propertyhub-backend/internal/domain/party"
	paymentDomain "propertyhub-backend/internal/domain/payment"
	propertyDomain "propertyhub-backend/internal/domain/property"
	purchaseDomain "propertyhub-backend/internal/domain/purchase"
)

// pathID parses a numeric :id path param.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// parseDate accepts the canonical YYYY-MM-DD wire format.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

var notFoundErrs = []error{
	propertyDomain.ErrNotFound,
	partyDomain.ErrOwnerNotFound,
	partyDomain.ErrTenantNotFound,
	leaseDomain.ErrNotFound,
	leaseDomain.ErrRequestNotFound,
	purchaseDomain.ErrNotFound,
	insuranceDomain.ErrOfferNotFound,
	maintenanceDomain.ErrNotFound,
	inspectionDomain.ErrNotFound,
	paymentDomain.ErrNotFound,
	gorm.ErrRecordNotFound,
}

var conflictErrs = []error{
	propertyDomain.ErrNotAvailable,
	propertyDomain.ErrAlreadySold,
	leaseDomain.ErrAlreadyReviewed,
	leaseDomain.ErrDuplicateRequest,
	purchaseDomain.ErrAlreadyReviewed,
	insuranceDomain.ErrAlreadyResponded,
	maintenanceDomain.ErrInvalidTransition,
	inspectionDomain.ErrInvalidTransition,
}

var badRequestErrs = []error{
	leaseDomain.ErrInvalidDecision,
	purchaseDomain.ErrInvalidDecision,
	insuranceDomain.ErrInvalidDecision,
	paymentDomain.ErrInvalidStatus,
}

func errorStatus(err error) int {
	for _, t := range notFoundErrs {
		if errors.Is(err, t) {
			return http.StatusNotFound
		}
	}
	for _, t := range conflictErrs {
		if errors.Is(err, t) {
			return http.StatusConflict
		}
	}
	for _, t := range badRequestErrs {
		if errors.Is(err, t) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// jsonError maps a usecase error onto the conventional status code.
func jsonError(c echo.Context, err error) error {
	return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
}
