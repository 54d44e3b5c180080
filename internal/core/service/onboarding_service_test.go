package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/propertyai/agent-platform/internal/core/domain"
	"github.com/propertyai/agent-platform/internal/core/ports"
)

type stubGenerator struct {
	posts       map[string]*ports.PostContent // keyed by language
	suggestions []ports.BrandingSuggestion
	err         error
	postCalls   []string // languages requested, in order
	brandCalls  int
}

func (g *stubGenerator) GeneratePost(_ context.Context, req ports.PostRequest) (*ports.PostContent, error) {
	g.postCalls = append(g.postCalls, req.Language)
	if g.err != nil {
		return nil, g.err
	}
	if c, ok := g.posts[req.Language]; ok {
		return c, nil
	}
	return &ports.PostContent{Title: "t-" + req.Language, Body: "b-" + req.Language}, nil
}

func (g *stubGenerator) BrandingSuggestions(_ context.Context, _ ports.BrandingRequest) ([]ports.BrandingSuggestion, error) {
	g.brandCalls++
	if g.err != nil {
		return nil, g.err
	}
	return g.suggestions, nil
}

func seedUser(repo *stubUserRepo, step int) *domain.User {
	created, _ := repo.Create(context.Background(), &domain.User{
		Email:          "agent@example.com",
		FirstName:      "Ana",
		LastName:       "Ruiz",
		Role:           domain.RoleAgent,
		OnboardingStep: step,
		CreatedAt:      time.Now().UTC(),
	})
	return created
}

func TestOnboardingService_SaveStep_AdvancesAndMergesProfile(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, domain.StepCompany)
	svc := NewOnboardingService(repo, &stubGenerator{}, zerolog.Nop())

	progress, err := svc.SaveStep(context.Background(), ports.StepInput{
		UserID:     user.ID,
		StepNumber: domain.StepCompany,
		Data:       map[string]string{"company": "Skyline Realty", "position": "Broker"},
	})
	if err != nil {
		t.Fatalf("SaveStep failed: %v", err)
	}
	if progress.CurrentStep != domain.StepBranding {
		t.Fatalf("expected step %d, got %d", domain.StepBranding, progress.CurrentStep)
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if stored.Company != "Skyline Realty" || stored.Position != "Broker" {
		t.Fatalf("profile not merged: %+v", stored)
	}
}

func TestOnboardingService_SaveStep_ValidationBlocks(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, domain.StepCompany)
	svc := NewOnboardingService(repo, &stubGenerator{}, zerolog.Nop())

	_, err := svc.SaveStep(context.Background(), ports.StepInput{
		UserID:     user.ID,
		StepNumber: domain.StepCompany,
		Data:       map[string]string{"company": ""},
	})
	if !errors.Is(err, domain.ErrStepValidation) {
		t.Fatalf("expected ErrStepValidation, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if stored.OnboardingStep != domain.StepCompany {
		t.Fatalf("step advanced despite validation failure: %d", stored.OnboardingStep)
	}
}

func TestOnboardingService_SaveStep_NeverMovesBackwards(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, domain.StepTerms)
	svc := NewOnboardingService(repo, &stubGenerator{}, zerolog.Nop())

	progress, err := svc.SaveStep(context.Background(), ports.StepInput{
		UserID:     user.ID,
		StepNumber: domain.StepPersonal,
		Data:       map[string]string{"first_name": "Ana", "last_name": "Ruiz"},
	})
	if err != nil {
		t.Fatalf("SaveStep failed: %v", err)
	}
	if progress.CurrentStep != domain.StepTerms {
		t.Fatalf("replayed earlier step moved progress backwards: %d", progress.CurrentStep)
	}
}

func TestOnboardingService_Complete(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, domain.StepPhoto)
	svc := NewOnboardingService(repo, &stubGenerator{}, zerolog.Nop())

	progress, err := svc.Complete(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if !progress.Completed || progress.CurrentStep != domain.StepCount {
		t.Fatalf("unexpected progress: %+v", progress)
	}
}

func TestOnboardingService_BrandingSuggestions_RequiresCompany(t *testing.T) {
	repo := newStubUserRepo()
	gen := &stubGenerator{suggestions: []ports.BrandingSuggestion{{Tagline: "Homes with heart"}}}
	svc := NewOnboardingService(repo, gen, zerolog.Nop())

	if _, err := svc.BrandingSuggestions(context.Background(), ports.BrandingRequest{}); !errors.Is(err, domain.ErrStepValidation) {
		t.Fatalf("expected ErrStepValidation for empty company, got %v", err)
	}
	if gen.brandCalls != 0 {
		t.Fatalf("generator should not be called without a company")
	}

	got, err := svc.BrandingSuggestions(context.Background(), ports.BrandingRequest{CompanyName: "Skyline Realty"})
	if err != nil {
		t.Fatalf("BrandingSuggestions failed: %v", err)
	}
	if len(got) != 1 || got[0].Tagline != "Homes with heart" {
		t.Fatalf("unexpected suggestions: %+v", got)
	}
}
