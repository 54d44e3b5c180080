package ports

import (
	"context"
	"time"

	"github.com/propertyai/agent-platform/internal/core/domain"
)

// TokenPair is the credential set returned by login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // access token lifetime in seconds
}

// RegisterInput carries the fields accepted at account creation.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Company   string
	Role      string
}

// AuthService implements registration, login and token refresh.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
	// Refresh validates and rotates a refresh token: the presented token is
	// revoked and a fresh pair is issued. A revoked or unknown token yields
	// domain.ErrInvalidToken.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
}

// RefreshTokenStore records issued refresh-token IDs so they can be rotated
// and revoked. Backed by Redis with a TTL matching the token lifetime.
type RefreshTokenStore interface {
	Save(ctx context.Context, jti, userID string, ttl time.Duration) error
	// Consume atomically validates and revokes a token ID, returning the
	// user it was issued to. Unknown or already-consumed IDs return
	// domain.ErrInvalidToken.
	Consume(ctx context.Context, jti string) (string, error)
	RevokeAll(ctx context.Context, userID string) error
}
