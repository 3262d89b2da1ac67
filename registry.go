package saga

import (
	"sort"

	"github.com/puzpuzpuz/xsync/v3"
)

// SagaName identifies a registered saga.
type SagaName string

// Registry holds named sagas over a shared pair of action-result/action
// types, so driver loops can look up which saga serves an incoming stream.
//
// A driver typically resolves a saga once per stream, then calls
// ComputeNewActions per received action result. The registry itself is safe
// for concurrent use; the reaction functions inside registered sagas are
// subject to the usual purity contract and carry their own concurrency
// obligations.
type Registry[AR, A any] struct {
	sagas *xsync.MapOf[SagaName, Saga[AR, A]]
}

// NewRegistry creates an empty saga registry.
func NewRegistry[AR, A any]() *Registry[AR, A] {
	return &Registry[AR, A]{
		sagas: xsync.NewMapOf[SagaName, Saga[AR, A]](),
	}
}

// Register adds a saga to the registry under the given name. Registering a
// name twice fails with ErrDuplicateSaga.
func (r *Registry[AR, A]) Register(name SagaName, s Saga[AR, A]) error {
	if _, loaded := r.sagas.LoadOrStore(name, s); loaded {
		return duplicateSagaError(name)
	}
	return nil
}

// Get retrieves a saga from the registry by its name. Returns
// ErrSagaNotFound if no saga is registered under the name.
func (r *Registry[AR, A]) Get(name SagaName) (Saga[AR, A], error) {
	s, ok := r.sagas.Load(name)
	if !ok {
		return Saga[AR, A]{}, sagaNotFoundError(name)
	}
	return s, nil
}

// Names returns the names of all registered sagas in lexical order.
func (r *Registry[AR, A]) Names() []SagaName {
	names := make([]SagaName, 0, r.sagas.Size())
	r.sagas.Range(func(name SagaName, _ Saga[AR, A]) bool {
		names = append(names, name)
		return true
	})
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
