package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrForbidden = errors.New("access forbidden")

// BrandColors is the three-colour palette attached to a branding profile.
type BrandColors struct {
	Primary   string `json:"primary" bson:"primary"`
	Secondary string `json:"secondary" bson:"secondary"`
	Accent    string `json:"accent" bson:"accent"`
}

// Branding holds the agent's AI-suggested (or hand-edited) brand identity.
type Branding struct {
	Tagline string      `json:"tagline" bson:"tagline"`
	About   string      `json:"about" bson:"about"`
	Colors  BrandColors `json:"colors" bson:"colors"`
}

// User models a real-estate agent (or admin) account. Accounts are never
// hard-deleted; logout only clears the client session.
type User struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	PasswordHash        string    `json:"-"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	Phone               string    `json:"phone,omitempty"`
	Company             string    `json:"company,omitempty"`
	Position            string    `json:"position,omitempty"`
	LicenseNumber       string    `json:"license_number,omitempty"`
	Role                string    `json:"role"`
	OnboardingStep      int       `json:"onboarding_step"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	Branding            Branding  `json:"branding"`
	PhotoURL            string    `json:"photo_url,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
