// Package identity resolves request credentials to an owning user. The
// service currently ships with a stub provider; a real OAuth or OIDC
// provider can be swapped in behind the same interface.
package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNoToken is returned when a request carries no credential at all.
var ErrNoToken = errors.New("identity: missing token")

// User is the resolved identity behind a credential.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Provider resolves a bearer token to a user.
type Provider interface {
	Identify(ctx context.Context, token string) (User, error)
}

// StubProvider accepts any non-empty token and derives a stable user ID
// from it, so repeated requests with the same token land on the same
// tracker. It never talks to the network.
type StubProvider struct {
	namespace uuid.UUID
}

// NewStubProvider returns a stub provider with a fixed namespace so IDs
// are stable across restarts.
func NewStubProvider() *StubProvider {
	return &StubProvider{
		namespace: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
	}
}

func (p *StubProvider) Identify(_ context.Context, token string) (User, error) {
	if token == "" {
		return User{}, ErrNoToken
	}
	id := uuid.NewSHA1(p.namespace, []byte(token))
	return User{
		ID:    id.String(),
		Name:  "Demo User",
		Email: "demo@example.com",
	}, nil
}
