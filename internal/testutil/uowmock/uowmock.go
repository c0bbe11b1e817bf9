// Package uowmock fakes the unit of work for usecase tests. The mock
// passes its Repos field straight to fn, so tests observe every write
// without a real transaction.
package uowmock

import (
	"context"

	"propertyhub-backend/internal/domain/uow"
)

type UoW struct {
	Repos uow.Repos
	// WithinTxFn overrides the default pass-through when set.
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

var _ uow.UnitOfWork = (*UoW)(nil)

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}
