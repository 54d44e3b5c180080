package workflow

import (
	"context"
	"fmt"
	"sort"

	"github.com/propertyai/agent-platform/pkg/client"
)

// Stage is one screen of the publishing flow.
type Stage string

const (
	StageProperty Stage = "property"
	StageSetup    Stage = "setup"
	StageGenerate Stage = "generate"
	StageReview   Stage = "review"
	StagePublish  Stage = "publish"
)

// stageOrder fixes the navigation sequence. GoBack walks it in reverse.
var stageOrder = []Stage{StageProperty, StageSetup, StageGenerate, StageReview, StagePublish}

// Styles accepted by the setup screen.
var validStyles = map[string]bool{
	"professional": true,
	"friendly":     true,
	"luxury":       true,
	"casual":       true,
}

// PublishingAPI is the slice of the SDK the flow needs. *client.Client
// satisfies it.
type PublishingAPI interface {
	ListDrafts(ctx context.Context, propertyID string) ([]*client.Draft, error)
	GenerateDrafts(ctx context.Context, req client.GenerateRequest) ([]client.GeneratedDraft, error)
	UpdateDraft(ctx context.Context, draftID string, patch client.DraftPatch) (*client.Draft, error)
	MarkDraftReady(ctx context.Context, draftID string) (*client.Draft, error)
	PublishDrafts(ctx context.Context, draftIDs []string) (*client.PublishResult, error)
}

// Flow drives the social publishing workflow: pick a property, choose
// channels and languages, generate drafts, review them and publish the
// approved batch. Drafts are keyed by language; a language that already has
// an unpublished draft is never regenerated.
type Flow struct {
	api      PublishingAPI
	notifier Notifier

	index    int
	property *client.Property

	channels  map[string]bool
	languages map[string]bool
	style     string

	drafts      map[string]*client.Draft
	edited      map[string]bool
	readyDrafts []string
}

// NewFlow starts a flow at the property-selection stage.
func NewFlow(api PublishingAPI, notifier Notifier) *Flow {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	f := &Flow{api: api, notifier: notifier}
	f.reset()
	return f
}

func (f *Flow) reset() {
	f.index = 0
	f.property = nil
	f.channels = make(map[string]bool)
	f.languages = make(map[string]bool)
	f.style = ""
	f.drafts = make(map[string]*client.Draft)
	f.edited = make(map[string]bool)
	f.readyDrafts = nil
}

// Stage returns the current stage.
func (f *Flow) Stage() Stage { return stageOrder[f.index] }

// GoBack moves one stage back, clamped at the first.
func (f *Flow) GoBack() {
	if f.index > 0 {
		f.index--
	}
}

// Property returns the selected property, nil before selection.
func (f *Flow) Property() *client.Property { return f.property }

// Draft returns the draft for a language, nil when none exists.
func (f *Flow) Draft(language string) *client.Draft { return f.drafts[language] }

// ReadyDrafts returns the IDs approved for publishing.
func (f *Flow) ReadyDrafts() []string { return f.readyDrafts }

// SelectProperty loads the property's existing drafts into the flow and
// advances to setup. Existing drafts claim their language: regeneration will
// skip it.
func (f *Flow) SelectProperty(ctx context.Context, p *client.Property) error {
	drafts, err := f.api.ListDrafts(ctx, p.ID)
	if err != nil {
		f.notifier.Error("Could not load existing drafts")
		return err
	}

	f.property = p
	for _, d := range drafts {
		f.drafts[d.Language] = d
	}
	f.index = 1
	return nil
}

// ToggleChannel flips a channel selection.
func (f *Flow) ToggleChannel(name string) {
	if f.channels[name] {
		delete(f.channels, name)
		return
	}
	f.channels[name] = true
}

// ToggleLanguage flips a language selection.
func (f *Flow) ToggleLanguage(code string) {
	if f.languages[code] {
		delete(f.languages, code)
		return
	}
	f.languages[code] = true
}

// SetStyle sets the tone. Unknown styles are rejected with a toast.
func (f *Flow) SetStyle(style string) {
	if !validStyles[style] {
		f.notifier.Error("Unknown style: " + style)
		return
	}
	f.style = style
}

// CanGenerate reports whether setup is complete enough to generate.
func (f *Flow) CanGenerate() bool {
	return len(f.channels) > 0 && len(f.languages) > 0
}

// Generate requests one draft per selected language that has none yet, one
// language at a time. Languages already drafted keep their content. On any
// failure nothing is merged and the stage does not advance.
func (f *Flow) Generate(ctx context.Context) error {
	if f.property == nil {
		f.notifier.Error("Select a property first")
		return fmt.Errorf("no property selected")
	}
	if !f.CanGenerate() {
		f.notifier.Error("Select at least one channel and one language")
		return fmt.Errorf("channels and languages required")
	}

	var missing []string
	for lang := range f.languages {
		if _, ok := f.drafts[lang]; ok {
			f.notifier.Info("Using existing content for " + lang)
			continue
		}
		missing = append(missing, lang)
	}
	sort.Strings(missing)

	channels := f.channelList()
	generated := make(map[string]*client.Draft, len(missing))
	for _, lang := range missing {
		results, err := f.api.GenerateDrafts(ctx, client.GenerateRequest{
			PropertyID: f.property.ID,
			Languages:  []string{lang},
			Channels:   channels,
			Tone:       f.style,
		})
		if err != nil {
			f.notifier.Error("Generation failed for " + lang)
			return err
		}
		for _, r := range results {
			generated[r.Draft.Language] = r.Draft
		}
	}

	for lang, d := range generated {
		f.drafts[lang] = d
	}
	f.index = 3
	return nil
}

// EditDraft applies a local edit to a language's draft and marks it edited.
// Edits reach the server when the draft is approved.
func (f *Flow) EditDraft(language string, patch client.DraftPatch) error {
	d, ok := f.drafts[language]
	if !ok {
		return fmt.Errorf("no draft for language %s", language)
	}

	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Body != nil {
		d.Body = *patch.Body
	}
	if patch.Hashtags != nil {
		d.Hashtags = patch.Hashtags
	}
	d.Status = "edited"
	f.edited[language] = true
	return nil
}

// MarkReady pushes any local edits, approves the draft server-side and
// records its ID for the publish batch. Calling it twice for the same
// language records the ID once.
func (f *Flow) MarkReady(ctx context.Context, language string) error {
	d, ok := f.drafts[language]
	if !ok {
		return fmt.Errorf("no draft for language %s", language)
	}

	if f.edited[language] {
		updated, err := f.api.UpdateDraft(ctx, d.ID, client.DraftPatch{
			Title:    &d.Title,
			Body:     &d.Body,
			Hashtags: d.Hashtags,
		})
		if err != nil {
			f.notifier.Error("Could not save edits for " + language)
			return err
		}
		f.drafts[language] = updated
		f.edited[language] = false
		d = updated
	}

	ready, err := f.api.MarkDraftReady(ctx, d.ID)
	if err != nil {
		f.notifier.Error("Could not approve draft for " + language)
		return err
	}
	f.drafts[language] = ready

	for _, id := range f.readyDrafts {
		if id == ready.ID {
			return nil
		}
	}
	f.readyDrafts = append(f.readyDrafts, ready.ID)
	return nil
}

// Publish sends the approved batch. On success the flow resets to property
// selection; on failure nothing changes.
func (f *Flow) Publish(ctx context.Context) (*client.PublishResult, error) {
	if len(f.readyDrafts) == 0 {
		f.notifier.Error("No drafts approved for publishing")
		return nil, fmt.Errorf("nothing to publish")
	}

	result, err := f.api.PublishDrafts(ctx, f.readyDrafts)
	if err != nil {
		f.notifier.Error("Publishing failed")
		return nil, err
	}

	f.notifier.Info(fmt.Sprintf("Published %d posts", result.Count))
	f.reset()
	return result, nil
}

// AdvanceToPublish moves from review to the publish confirmation stage.
func (f *Flow) AdvanceToPublish() {
	if f.Stage() == StageReview {
		f.index = 4
	}
}

func (f *Flow) channelList() []string {
	out := make([]string, 0, len(f.channels))
	for name := range f.channels {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
