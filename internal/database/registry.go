package database

import (
	"context"
	"errors"

	"github.com/Rana718/dbfixture/internal/config"
	"github.com/Rana718/dbfixture/internal/types"
)

// Registry holds one connected adapter per retained dialect, in the fixed
// dialect order.
type Registry struct {
	adapters map[types.Dialect]DatabaseAdapter
	order    []types.Dialect
}

// NewRegistry wraps adapters that are already connected.
func NewRegistry(adapters ...DatabaseAdapter) *Registry {
	r := &Registry{adapters: make(map[types.Dialect]DatabaseAdapter, len(adapters))}
	for _, dialect := range types.Dialects {
		for _, adapter := range adapters {
			if adapter.Dialect() == dialect {
				r.adapters[dialect] = adapter
				r.order = append(r.order, dialect)
				break
			}
		}
	}
	return r
}

// Open connects every dialect retained in cfg. Connecting is eager: the
// first failure closes whatever was already opened and is returned as a
// *types.ConnectionError before any schema is touched.
func Open(ctx context.Context, cfg *config.Config) (*Registry, error) {
	var opened []DatabaseAdapter

	for _, conn := range cfg.Connections() {
		adapter, err := NewAdapter(conn)
		if err != nil {
			closeAll(opened)
			return nil, &types.ConnectionError{Dialect: conn.Dialect(), Err: err}
		}

		if err := adapter.Connect(ctx); err != nil {
			closeAll(opened)
			return nil, &types.ConnectionError{Dialect: conn.Dialect(), Err: err}
		}
		opened = append(opened, adapter)
	}

	return NewRegistry(opened...), nil
}

func closeAll(adapters []DatabaseAdapter) {
	for _, adapter := range adapters {
		adapter.Close()
	}
}

func (r *Registry) Get(dialect types.Dialect) (DatabaseAdapter, bool) {
	adapter, ok := r.adapters[dialect]
	return adapter, ok
}

// Dialects returns the connected dialects in processing order.
func (r *Registry) Dialects() []types.Dialect {
	return append([]types.Dialect(nil), r.order...)
}

func (r *Registry) Len() int {
	return len(r.order)
}

func (r *Registry) Close() error {
	var errs []error
	for _, dialect := range r.order {
		if err := r.adapters[dialect].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
