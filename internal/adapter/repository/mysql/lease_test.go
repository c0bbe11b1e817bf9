package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	leaseDomain "propertyhub-backend/internal/domain/lease"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func makeLeaseRequest(propertyID, tenantID uint64) *leaseDomain.Request {
	return &leaseDomain.Request{
		PropertyID:  propertyID,
		TenantID:    tenantID,
		StartDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(1500),
		Status:      leaseDomain.RequestPending,
	}
}

func TestLeaseRequestCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewLeaseRequestRepository(db)
	ctx := context.Background()

	req := makeLeaseRequest(10, 20)
	if err := repo.Create(ctx, req); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if req.ID == 0 {
		t.Fatal("Create did not set auto-increment ID")
	}

	got, err := repo.GetByID(ctx, req.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.PropertyID != 10 || got.TenantID != 20 || got.Status != leaseDomain.RequestPending {
		t.Errorf("unexpected request: %+v", got)
	}
	if !got.MonthlyRent.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("rent mismatch: %s", got.MonthlyRent)
	}
}

func TestLeaseRequestGetPendingByPropertyAndTenant(t *testing.T) {
	db := openTestDB(t)
	repo := NewLeaseRequestRepository(db)
	ctx := context.Background()

	req := makeLeaseRequest(10, 20)
	if err := repo.Create(ctx, req); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetPendingByPropertyAndTenant(ctx, 10, 20)
	if err != nil {
		t.Fatalf("GetPendingByPropertyAndTenant: %v", err)
	}
	if got.ID != req.ID {
		t.Errorf("unexpected request: %+v", got)
	}

	// A settled request no longer counts as pending.
	req.Status = leaseDomain.RequestRejected
	if err := repo.Save(ctx, req); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := repo.GetPendingByPropertyAndTenant(ctx, 10, 20); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	// Another tenant's pending request must not leak across.
	if _, err := repo.GetPendingByPropertyAndTenant(ctx, 10, 21); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLeaseGetActiveByPropertyID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLeaseRepository(db)
	ctx := context.Background()

	l := &leaseDomain.Lease{
		PropertyID:  10,
		TenantID:    20,
		StartDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.NewFromInt(1500),
		Status:      leaseDomain.StatusActive,
	}
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetActiveByPropertyID(ctx, 10)
	if err != nil {
		t.Fatalf("GetActiveByPropertyID: %v", err)
	}
	if got.ID != l.ID {
		t.Errorf("unexpected lease: %+v", got)
	}

	l.Status = leaseDomain.StatusTerminated
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := repo.GetActiveByPropertyID(ctx, 10); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
