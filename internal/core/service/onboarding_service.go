package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/propertyai/agent-platform/internal/api/metrics"
	"github.com/propertyai/agent-platform/internal/core/domain"
	"github.com/propertyai/agent-platform/internal/core/ports"
)

// OnboardingService drives the 6-step agent setup wizard.
type OnboardingService struct {
	users     ports.UserRepository
	generator ports.ContentGenerator
	logger    zerolog.Logger
}

func NewOnboardingService(users ports.UserRepository, generator ports.ContentGenerator, logger zerolog.Logger) *OnboardingService {
	return &OnboardingService{users: users, generator: generator, logger: logger}
}

// SaveStep validates the step's required fields, merges its data into the
// user profile and advances the stored step monotonically. A replayed
// earlier step updates the profile but never moves progress backwards.
func (s *OnboardingService) SaveStep(ctx context.Context, in ports.StepInput) (*ports.ProgressResult, error) {
	if err := domain.ValidateStepData(in.StepNumber, in.Data); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	applyStepData(user, in.StepNumber, in.Data)

	next := in.StepNumber + 1
	if next > domain.StepCount {
		next = domain.StepCount
	}
	if next > user.OnboardingStep {
		user.OnboardingStep = next
	}
	if in.Completed {
		user.OnboardingCompleted = true
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	metrics.OnboardingStepsTotal.WithLabelValues(domain.StepName(in.StepNumber)).Inc()
	s.logger.Info().
		Str("user_id", user.ID).
		Int("step", in.StepNumber).
		Msg("onboarding step saved")

	return progressOf(user), nil
}

func (s *OnboardingService) Complete(ctx context.Context, userID string) (*ports.ProgressResult, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.OnboardingStep = domain.StepCount
	user.OnboardingCompleted = true
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	metrics.OnboardingCompletedTotal.Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("onboarding completed")

	return progressOf(user), nil
}

func (s *OnboardingService) Progress(ctx context.Context, userID string) (*ports.ProgressResult, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return progressOf(user), nil
}

// BrandingSuggestions asks the content generator for brand identity
// proposals. A non-empty company name is required.
func (s *OnboardingService) BrandingSuggestions(ctx context.Context, req ports.BrandingRequest) ([]ports.BrandingSuggestion, error) {
	if req.CompanyName == "" {
		return nil, domain.ErrStepValidation
	}

	suggestions, err := s.generator.BrandingSuggestions(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Str("company", req.CompanyName).Msg("branding generation failed")
		return nil, err
	}

	metrics.BrandingSuggestionsTotal.Inc()
	return suggestions, nil
}

// applyStepData merges the submitted fields of one step into the profile.
// Unknown keys are ignored; the wizard sends only the step's own fields.
func applyStepData(user *domain.User, step int, data map[string]string) {
	set := func(dst *string, key string) {
		if v, ok := data[key]; ok && v != "" {
			*dst = v
		}
	}

	switch step {
	case domain.StepPersonal:
		set(&user.FirstName, "first_name")
		set(&user.LastName, "last_name")
		set(&user.Phone, "phone")
	case domain.StepCompany:
		set(&user.Company, "company")
		set(&user.Position, "position")
		set(&user.LicenseNumber, "license_number")
	case domain.StepBranding:
		set(&user.Branding.Tagline, "tagline")
		set(&user.Branding.About, "about")
		set(&user.Branding.Colors.Primary, "primary_color")
		set(&user.Branding.Colors.Secondary, "secondary_color")
		set(&user.Branding.Colors.Accent, "accent_color")
	case domain.StepPhoto:
		set(&user.PhotoURL, "photo_url")
	}
}

func progressOf(user *domain.User) *ports.ProgressResult {
	return &ports.ProgressResult{
		UserID:      user.ID,
		CurrentStep: user.OnboardingStep,
		Completed:   user.OnboardingCompleted,
		StepName:    domain.StepName(user.OnboardingStep),
	}
}
