package uowmock

import (
	"context"
	"errors"
	"testing"

	"propertyhub-backend/internal/domain/uow"
	"propertyhub-backend/internal/testutil/repomock"
)

func TestUoW_PassesReposThrough(t *testing.T) {
	leases := &repomock.LeaseRepo{}
	owns := &repomock.OwnershipRepo{}
	m := &UoW{Repos: uow.Repos{Leases: leases, Ownerships: owns}}

	innerCalled := false
	err := m.WithinTx(context.Background(), func(r uow.Repos) error {
		innerCalled = true
		if r.Leases != leases || r.Ownerships != owns {
			t.Fatal("repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx err: %v", err)
	}
	if !innerCalled {
		t.Fatal("fn was not called")
	}
}

func TestUoW_PropagatesError(t *testing.T) {
	m := &UoW{}
	boom := errors.New("boom")
	if err := m.WithinTx(context.Background(), func(uow.Repos) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}

func TestUoW_OverrideFn(t *testing.T) {
	m := &UoW{
		WithinTxFn: func(context.Context, func(r uow.Repos) error) error {
			return errors.New("tx refused")
		},
	}
	if err := m.WithinTx(context.Background(), func(uow.Repos) error { return nil }); err == nil {
		t.Fatal("expected the override to run")
	}
}
