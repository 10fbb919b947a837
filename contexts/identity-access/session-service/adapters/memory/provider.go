package memory

import (
	"context"
	"sync"

	domainerrors "bazaar/contexts/identity-access/session-service/domain/errors"
	"bazaar/contexts/identity-access/session-service/ports"
)

// Provider is an in-memory identity provider and profile store for tests
// and local development wiring.
type Provider struct {
	mu       sync.RWMutex
	tokens   map[string]ports.Identity
	expired  map[string]bool
	profiles map[string]ports.Profile

	failAuthentication bool
	failProfileLookup  bool

	authenticateCalls int
}

func NewProvider() *Provider {
	return &Provider{
		tokens:   map[string]ports.Identity{},
		expired:  map[string]bool{},
		profiles: map[string]ports.Profile{},
	}
}

// SeedSession registers a token that authenticates as the given identity.
func (p *Provider) SeedSession(token string, identity ports.Identity) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tokens[token] = identity
}

// SeedExpiredSession registers a token that fails with a token-expired error.
func (p *Provider) SeedExpiredSession(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.expired[token] = true
}

// SeedProfile stores the profile record for a user ID.
func (p *Provider) SeedProfile(userID string, profile ports.Profile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profiles[userID] = profile
}

// FailAuthentication makes every Authenticate call fail, simulating an
// unreachable identity service.
func (p *Provider) FailAuthentication(fail bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failAuthentication = fail
}

// FailProfileLookup makes every GetProfile call fail.
func (p *Provider) FailProfileLookup(fail bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failProfileLookup = fail
}

// AuthenticateCalls reports how many times Authenticate ran, for
// memoization assertions.
func (p *Provider) AuthenticateCalls() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.authenticateCalls
}

func (p *Provider) Authenticate(_ context.Context, token string) (ports.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.authenticateCalls++

	if p.failAuthentication {
		return ports.Identity{}, domainerrors.ErrUnauthenticated
	}
	if p.expired[token] {
		return ports.Identity{}, domainerrors.ErrTokenExpired
	}
	identity, ok := p.tokens[token]
	if !ok {
		return ports.Identity{}, domainerrors.ErrUnauthenticated
	}
	return identity, nil
}

func (p *Provider) GetProfile(_ context.Context, userID string) (ports.Profile, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.failProfileLookup {
		return ports.Profile{}, domainerrors.ErrProfileNotFound
	}
	profile, ok := p.profiles[userID]
	if !ok {
		return ports.Profile{}, domainerrors.ErrProfileNotFound
	}
	return profile, nil
}
