package http

import (
	"errors"
	stdhttp "net/http"
	"testing"
	"time"

	inspectionDomain "propertyhub-backend/internal/domain/inspection"
	insuranceDomain "propertyhub-backend/internal/domain/insurance"
	leaseDomain "propertyhub-backend/internal/domain/lease"
	paymentDomain "propertyhub-backend/internal/domain/payment"
	propertyDomain "propertyhub-backend/internal/domain/property"

	"gorm.io/gorm"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{propertyDomain.ErrNotFound, stdhttp.StatusNotFound},
		{leaseDomain.ErrRequestNotFound, stdhttp.StatusNotFound},
		{gorm.ErrRecordNotFound, stdhttp.StatusNotFound},
		{propertyDomain.ErrNotAvailable, stdhttp.StatusConflict},
		{propertyDomain.ErrAlreadySold, stdhttp.StatusConflict},
		{leaseDomain.ErrAlreadyReviewed, stdhttp.StatusConflict},
		{leaseDomain.ErrDuplicateRequest, stdhttp.StatusConflict},
		{insuranceDomain.ErrAlreadyResponded, stdhttp.StatusConflict},
		{inspectionDomain.ErrInvalidTransition, stdhttp.StatusConflict},
		{leaseDomain.ErrInvalidDecision, stdhttp.StatusBadRequest},
		{paymentDomain.ErrInvalidStatus, stdhttp.StatusBadRequest},
		{errors.New("database on fire"), stdhttp.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := errorStatus(tt.err); got != tt.want {
			t.Errorf("errorStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}

	// Wrapped sentinels still map through errors.Is.
	wrapped := errors.Join(errors.New("context"), leaseDomain.ErrDuplicateRequest)
	if got := errorStatus(wrapped); got != stdhttp.StatusConflict {
		t.Errorf("wrapped duplicate request = %d, want 409", got)
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-03-15")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if !got.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date: %v", got)
	}

	for _, s := range []string{"15/03/2026", "yesterday", ""} {
		if _, err := parseDate(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}
