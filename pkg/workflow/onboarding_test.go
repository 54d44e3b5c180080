package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propertyai/agent-platform/pkg/client"
)

type recordingNotifier struct {
	infos  []string
	warns  []string
	errors []string
}

func (n *recordingNotifier) Info(msg string)  { n.infos = append(n.infos, msg) }
func (n *recordingNotifier) Warn(msg string)  { n.warns = append(n.warns, msg) }
func (n *recordingNotifier) Error(msg string) { n.errors = append(n.errors, msg) }

type stubOnboardingAPI struct {
	saveCalls     int
	savedSteps    []int
	saveErr       error
	completeCalls int
	completeErr   error
	suggestions   []client.BrandingSuggestion
	suggestErr    error
}

func (s *stubOnboardingAPI) SaveOnboardingStep(ctx context.Context, userID string, step int, data map[string]string, completed bool) (*client.OnboardingProgress, error) {
	s.saveCalls++
	s.savedSteps = append(s.savedSteps, step)
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	return &client.OnboardingProgress{UserID: userID, CurrentStep: step + 1}, nil
}

func (s *stubOnboardingAPI) CompleteOnboarding(ctx context.Context, userID string) (*client.OnboardingProgress, error) {
	s.completeCalls++
	if s.completeErr != nil {
		return nil, s.completeErr
	}
	return &client.OnboardingProgress{UserID: userID, CurrentStep: 6, Completed: true}, nil
}

func (s *stubOnboardingAPI) BrandingSuggest(ctx context.Context, req client.BrandingSuggestRequest) ([]client.BrandingSuggestion, error) {
	if s.suggestErr != nil {
		return nil, s.suggestErr
	}
	return s.suggestions, nil
}

type stubReloader struct {
	calls int
	err   error
}

func (r *stubReloader) Reload(ctx context.Context) error {
	r.calls++
	return r.err
}

func TestValidateStep_TruthTable(t *testing.T) {
	tests := []struct {
		name  string
		step  int
		form  map[string]string
		valid bool
	}{
		{"step1 both names", StepPersonal, map[string]string{"first_name": "Ana", "last_name": "Ruiz"}, true},
		{"step1 missing last", StepPersonal, map[string]string{"first_name": "Ana"}, false},
		{"step1 empty", StepPersonal, map[string]string{}, false},
		{"step2 with company", StepCompany, map[string]string{"company": "Acme Homes"}, true},
		{"step2 empty company", StepCompany, map[string]string{"company": ""}, false},
		{"step3 always valid", StepBranding, map[string]string{}, true},
		{"step4 always valid", StepSocial, map[string]string{}, true},
		{"step5 both accepted", StepTerms, map[string]string{"terms_accepted": "true", "privacy_accepted": "true"}, true},
		{"step5 terms only", StepTerms, map[string]string{"terms_accepted": "true"}, false},
		{"step5 privacy only", StepTerms, map[string]string{"privacy_accepted": "true"}, false},
		{"step5 false values", StepTerms, map[string]string{"terms_accepted": "false", "privacy_accepted": "true"}, false},
		{"step6 always valid", StepPhoto, map[string]string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateStep(tt.step, tt.form)
			if tt.valid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestWizard_NextAdvancesDespitePersistenceError(t *testing.T) {
	api := &stubOnboardingAPI{saveErr: errors.New("connection refused")}
	notifier := &recordingNotifier{}
	w := NewWizard(api, notifier, "user_1")
	w.SetField("first_name", "Ana")
	w.SetField("last_name", "Ruiz")

	require.NoError(t, w.Next(context.Background()))

	assert.Equal(t, 2, w.Step())
	assert.Len(t, notifier.warns, 1)
	assert.Empty(t, notifier.errors)
}

func TestWizard_Step2EmptyCompanyBlocksWithMessage(t *testing.T) {
	api := &stubOnboardingAPI{}
	notifier := &recordingNotifier{}
	w := NewWizard(api, notifier, "user_1")
	w.SetField("first_name", "Ana")
	w.SetField("last_name", "Ruiz")
	require.NoError(t, w.Next(context.Background()))
	require.Equal(t, 2, w.Step())

	err := w.Next(context.Background())
	require.Error(t, err)

	assert.Equal(t, 2, w.Step())
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "Please enter your company name", notifier.errors[0])
	// The invalid step is never sent to the server.
	assert.Equal(t, []int{1}, api.savedSteps)
}

func TestWizard_BackClampsAtFirstStep(t *testing.T) {
	w := NewWizard(&stubOnboardingAPI{}, nil, "user_1")

	w.Back()
	assert.Equal(t, 1, w.Step())

	w.Skip()
	w.Skip()
	require.Equal(t, 3, w.Step())
	w.Back()
	assert.Equal(t, 2, w.Step())
}

func TestWizard_SkipNeverPassesLastStep(t *testing.T) {
	api := &stubOnboardingAPI{}
	w := NewWizard(api, nil, "user_1")

	for i := 0; i < 10; i++ {
		w.Skip()
	}

	assert.Equal(t, 6, w.Step())
	assert.Zero(t, api.saveCalls)
}

func TestWizard_CompleteFiresCallbackEvenOnFailure(t *testing.T) {
	api := &stubOnboardingAPI{completeErr: errors.New("gateway timeout")}
	notifier := &recordingNotifier{}
	reloader := &stubReloader{}
	w := NewWizard(api, notifier, "user_1")
	w.SetSession(reloader)

	fired := false
	w.OnComplete = func() { fired = true }

	err := w.Complete(context.Background())
	require.Error(t, err)

	assert.True(t, fired)
	assert.Equal(t, 1, api.completeCalls)
	assert.Equal(t, 1, reloader.calls)
	assert.NotEmpty(t, notifier.warns)
}

func TestWizard_NextAtLastStepCompletes(t *testing.T) {
	api := &stubOnboardingAPI{}
	w := NewWizard(api, nil, "user_1")
	for i := 0; i < 5; i++ {
		w.Skip()
	}
	require.Equal(t, 6, w.Step())

	fired := false
	w.OnComplete = func() { fired = true }

	require.NoError(t, w.Next(context.Background()))
	assert.True(t, fired)
	assert.Equal(t, 1, api.completeCalls)
}

func TestWizard_GenerateBrandingRequiresCompany(t *testing.T) {
	api := &stubOnboardingAPI{suggestions: []client.BrandingSuggestion{{Tagline: "t"}}}
	notifier := &recordingNotifier{}
	w := NewWizard(api, notifier, "user_1")

	err := w.GenerateBranding(context.Background())
	require.Error(t, err)
	assert.Nil(t, w.Branding)
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "Please enter your company name", notifier.errors[0])
}

func TestWizard_GenerateBrandingKeepsFirstSuggestionWithFallbacks(t *testing.T) {
	api := &stubOnboardingAPI{suggestions: []client.BrandingSuggestion{
		{About: "about text"}, // empty tagline and colors
		{Tagline: "second"},
	}}
	w := NewWizard(api, nil, "user_1")
	w.SetField("company", "Acme Homes")

	require.NoError(t, w.GenerateBranding(context.Background()))

	require.NotNil(t, w.Branding)
	assert.Equal(t, "Acme Homes", w.Branding.Tagline)
	assert.Equal(t, "about text", w.Branding.About)
	assert.NotEmpty(t, w.Branding.Colors.Primary)
}

func TestWizard_GenerateBrandingFailureKeepsPrior(t *testing.T) {
	api := &stubOnboardingAPI{suggestions: []client.BrandingSuggestion{{Tagline: "keep me"}}}
	w := NewWizard(api, nil, "user_1")
	w.SetField("company", "Acme Homes")
	require.NoError(t, w.GenerateBranding(context.Background()))

	api.suggestErr = errors.New("ai service down")
	err := w.GenerateBranding(context.Background())
	require.Error(t, err)

	require.NotNil(t, w.Branding)
	assert.Equal(t, "keep me", w.Branding.Tagline)
}
