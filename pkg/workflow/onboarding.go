package workflow

import (
	"context"
	"fmt"

	"github.com/propertyai/agent-platform/pkg/client"
)

// Wizard step numbers. The flow is linear: Personal → Company → Branding →
// Social → Terms → Photo.
const (
	StepPersonal = 1
	StepCompany  = 2
	StepBranding = 3
	StepSocial   = 4
	StepTerms    = 5
	StepPhoto    = 6

	stepCount = 6
)

var stepTitles = map[int]string{
	StepPersonal: "Personal details",
	StepCompany:  "Company",
	StepBranding: "Branding",
	StepSocial:   "Social accounts",
	StepTerms:    "Terms",
	StepPhoto:    "Profile photo",
}

// OnboardingAPI is the slice of the SDK the wizard needs. *client.Client
// satisfies it.
type OnboardingAPI interface {
	SaveOnboardingStep(ctx context.Context, userID string, step int, data map[string]string, completed bool) (*client.OnboardingProgress, error)
	CompleteOnboarding(ctx context.Context, userID string) (*client.OnboardingProgress, error)
	BrandingSuggest(ctx context.Context, req client.BrandingSuggestRequest) ([]client.BrandingSuggestion, error)
}

// SessionReloader refreshes the cached user profile after onboarding
// mutations. *client.Session satisfies it.
type SessionReloader interface {
	Reload(ctx context.Context) error
}

// Wizard drives the six-step onboarding locally. Progress is optimistic: the
// local step advances even when persistence fails, so a flaky connection
// never traps the user on a step.
type Wizard struct {
	api      OnboardingAPI
	notifier Notifier
	session  SessionReloader // optional

	userID string
	step   int
	form   map[string]string

	// Branding holds the accepted AI suggestion, nil until generated.
	Branding *client.BrandingSuggestion
	// OnComplete fires after Complete, whether or not persistence worked.
	OnComplete func()
}

// NewWizard starts a wizard at step 1 for the given user.
func NewWizard(api OnboardingAPI, notifier Notifier, userID string) *Wizard {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Wizard{
		api:      api,
		notifier: notifier,
		userID:   userID,
		step:     StepPersonal,
		form:     make(map[string]string),
	}
}

// SetSession attaches a session to reload after completion.
func (w *Wizard) SetSession(s SessionReloader) { w.session = s }

// Step returns the current step number (1..6).
func (w *Wizard) Step() int { return w.step }

// StepTitle returns the current step's display title.
func (w *Wizard) StepTitle() string { return stepTitles[w.step] }

// SetField records one form field.
func (w *Wizard) SetField(key, value string) { w.form[key] = value }

// Field reads one form field.
func (w *Wizard) Field(key string) string { return w.form[key] }

// validateStep is the pure per-step required-field check. An empty return
// means the step is valid; otherwise it is the user-facing message.
func validateStep(step int, form map[string]string) string {
	switch step {
	case StepPersonal:
		if form["first_name"] == "" || form["last_name"] == "" {
			return "Please enter your first and last name"
		}
	case StepCompany:
		if form["company"] == "" {
			return "Please enter your company name"
		}
	case StepTerms:
		if form["terms_accepted"] != "true" || form["privacy_accepted"] != "true" {
			return "Please accept the terms and privacy policy"
		}
	}
	return ""
}

// ValidateCurrentStep checks the current step's required fields without side
// effects. Returns "" when valid.
func (w *Wizard) ValidateCurrentStep() string {
	return validateStep(w.step, w.form)
}

// Next validates the current step and advances. Persistence is best-effort:
// a failed save warns and the step still increments. At the last step it
// delegates to Complete.
func (w *Wizard) Next(ctx context.Context) error {
	if msg := w.ValidateCurrentStep(); msg != "" {
		w.notifier.Error(msg)
		return fmt.Errorf("step %d invalid: %s", w.step, msg)
	}

	if w.step == stepCount {
		return w.Complete(ctx)
	}

	if _, err := w.api.SaveOnboardingStep(ctx, w.userID, w.step, w.copyForm(), false); err != nil {
		w.notifier.Warn("Could not save your progress, continuing anyway")
	}
	w.step++
	return nil
}

// Back moves one step back, clamped at the first step. Nothing is persisted.
func (w *Wizard) Back() {
	if w.step > StepPersonal {
		w.step--
	}
}

// Skip advances without validation or persistence. No advance past the last
// step.
func (w *Wizard) Skip() {
	if w.step < stepCount {
		w.step++
	}
}

// Complete persists completion, reloads the session and fires OnComplete.
// The callback fires even when persistence fails: the user must leave the
// wizard either way.
func (w *Wizard) Complete(ctx context.Context) error {
	_, err := w.api.CompleteOnboarding(ctx, w.userID)
	if err != nil {
		w.notifier.Warn("Could not record completion, your profile may be out of date")
	}

	if w.session != nil {
		if rerr := w.session.Reload(ctx); rerr != nil {
			w.notifier.Warn("Could not refresh your profile")
		}
	}

	if w.OnComplete != nil {
		w.OnComplete()
	}
	return err
}

// GenerateBranding asks for AI suggestions based on the company field and
// keeps the first one. A failure leaves any previous suggestion in place.
func (w *Wizard) GenerateBranding(ctx context.Context) error {
	company := w.form["company"]
	if company == "" {
		w.notifier.Error("Please enter your company name")
		return fmt.Errorf("company name required for branding suggestions")
	}

	suggestions, err := w.api.BrandingSuggest(ctx, client.BrandingSuggestRequest{
		CompanyName: company,
		AgentName:   w.form["first_name"] + " " + w.form["last_name"],
		Style:       w.form["branding_style"],
	})
	if err != nil || len(suggestions) == 0 {
		w.notifier.Error("Could not generate branding suggestions")
		if err == nil {
			err = fmt.Errorf("no branding suggestions returned")
		}
		return err
	}

	suggestion := suggestions[0]
	if suggestion.Tagline == "" {
		suggestion.Tagline = company
	}
	if suggestion.Colors.Primary == "" {
		suggestion.Colors = client.BrandColors{Primary: "#1E3A8A", Secondary: "#F59E0B", Accent: "#10B981"}
	}
	w.Branding = &suggestion

	w.form["branding_tagline"] = suggestion.Tagline
	w.form["branding_about"] = suggestion.About
	return nil
}

func (w *Wizard) copyForm() map[string]string {
	out := make(map[string]string, len(w.form))
	for k, v := range w.form {
		out[k] = v
	}
	return out
}
