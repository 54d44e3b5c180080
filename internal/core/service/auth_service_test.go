package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/propertyai/agent-platform/internal/core/domain"
	"github.com/propertyai/agent-platform/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by ID
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = "user_" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

type stubTokenStore struct {
	tokens map[string]string // jti -> userID
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: make(map[string]string)}
}

func (s *stubTokenStore) Save(_ context.Context, jti, userID string, _ time.Duration) error {
	s.tokens[jti] = userID
	return nil
}

func (s *stubTokenStore) Consume(_ context.Context, jti string) (string, error) {
	userID, ok := s.tokens[jti]
	if !ok {
		return "", domain.ErrInvalidToken
	}
	delete(s.tokens, jti)
	return userID, nil
}

func (s *stubTokenStore) RevokeAll(_ context.Context, userID string) error {
	for jti, uid := range s.tokens {
		if uid == userID {
			delete(s.tokens, jti)
		}
	}
	return nil
}

func newTestAuthService() (*AuthService, *stubUserRepo, *stubTokenStore) {
	repo := newStubUserRepo()
	tokens := newStubTokenStore()
	return NewAuthService(repo, tokens, "secret", time.Hour, 24*time.Hour), repo, tokens
}

func register(t *testing.T, svc *AuthService, email, password string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), registerInput(email, password))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return user
}

func registerInput(email, password string) ports.RegisterInput {
	return ports.RegisterInput{
		Email:     email,
		Password:  password,
		FirstName: "Ana",
		LastName:  "Ruiz",
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	user := register(t, svc, "ana@example.com", "s3cret")
	if user.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleAgent {
		t.Fatalf("expected default role agent, got %s", user.Role)
	}
	if user.OnboardingStep != domain.StepPersonal {
		t.Fatalf("expected onboarding to start at step 1, got %d", user.OnboardingStep)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuthService()

	register(t, svc, "bob@example.com", "pass")
	if _, err := svc.Register(context.Background(), registerInput("bob@example.com", "pass2")); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_IssuesTokenPair(t *testing.T) {
	svc, _, _ := newTestAuthService()
	register(t, svc, "carol@example.com", "s3cret")

	pair, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}
	if user == nil || user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(pair.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("access token invalid: %v", err)
	}
	if claims["typ"] != "access" {
		t.Fatalf("expected access token type, got %v", claims["typ"])
	}
	if claims["sub"] != user.ID {
		t.Fatalf("expected sub %s, got %v", user.ID, claims["sub"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	register(t, svc, "dave@example.com", "goodpass")

	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	register(t, svc, "erin@example.com", "pass")

	pair, _, err := svc.Login(context.Background(), "erin@example.com", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	next, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if next.RefreshToken == pair.RefreshToken {
		t.Fatalf("expected rotated refresh token")
	}

	// Replaying the consumed token must fail.
	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken on replay, got %v", err)
	}

	// One live token remains (the rotated one).
	if len(tokens.tokens) != 1 {
		t.Fatalf("expected exactly one live refresh token, got %d", len(tokens.tokens))
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, _, _ := newTestAuthService()
	register(t, svc, "frank@example.com", "pass")

	pair, _, err := svc.Login(context.Background(), "frank@example.com", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), pair.AccessToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for access token, got %v", err)
	}
}
