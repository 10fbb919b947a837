package ports

import "context"

// Identity is the raw authenticated identity returned by the provider.
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
}

// IdentityProvider validates a bearer token with the external identity
// service. Any failure is treated as "not authenticated" by the resolver;
// ErrTokenExpired from the domain errors package distinguishes expiry for
// the redirect reason only.
type IdentityProvider interface {
	Authenticate(ctx context.Context, token string) (Identity, error)
}

// Profile is the stored account record keyed by the identity's user ID.
type Profile struct {
	Role        string
	IsApproved  bool
	Permissions map[string]string
}

// ProfileStore reads account profiles. The store is externally owned and
// read-only from the session resolver's perspective.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (Profile, error)
}
