package application

import (
	"context"
	"sync"

	"bazaar/contexts/identity-access/session-service/domain/entities"

	"golang.org/x/sync/singleflight"
)

// Resolver memoizes session resolution for the lifetime of one request.
// Every access check in a request tree observes the same AuthenticatedUser
// snapshot from a single IdentityProvider round trip; concurrent callers
// are coalesced rather than re-fetching and risking a mid-request profile
// change showing two different users.
type Resolver struct {
	service Service
	token   string

	flight singleflight.Group

	mu     sync.Mutex
	done   bool
	cached entities.Resolution
}

func NewResolver(service Service, token string) *Resolver {
	return &Resolver{service: service, token: token}
}

// Resolve returns the memoized resolution, performing the underlying
// lookup at most once per request.
func (r *Resolver) Resolve(ctx context.Context) entities.Resolution {
	r.mu.Lock()
	if r.done {
		cached := r.cached
		r.mu.Unlock()
		return cached
	}
	r.mu.Unlock()

	value, _, _ := r.flight.Do("session", func() (any, error) {
		return r.service.Resolve(ctx, r.token), nil
	})
	resolution := value.(entities.Resolution)

	r.mu.Lock()
	if !r.done {
		r.done = true
		r.cached = resolution
	}
	resolution = r.cached
	r.mu.Unlock()
	return resolution
}

type contextKey struct{}

// NewContext attaches a per-request resolver to the request context.
func NewContext(ctx context.Context, resolver *Resolver) context.Context {
	return context.WithValue(ctx, contextKey{}, resolver)
}

// FromContext returns the request-scoped resolver, if one was attached.
func FromContext(ctx context.Context) (*Resolver, bool) {
	resolver, ok := ctx.Value(contextKey{}).(*Resolver)
	return resolver, ok
}
