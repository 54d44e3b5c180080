package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propertyai/agent-platform/pkg/client"
)

type stubPublishingAPI struct {
	existing []*client.Draft
	listErr  error

	generateCalls []client.GenerateRequest
	generateErr   error

	updateCalls int
	updateErr   error

	readyCalls []string
	readyErr   error

	publishCalls [][]string
	publishErr   error
}

func (s *stubPublishingAPI) ListDrafts(ctx context.Context, propertyID string) ([]*client.Draft, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.existing, nil
}

func (s *stubPublishingAPI) GenerateDrafts(ctx context.Context, req client.GenerateRequest) ([]client.GeneratedDraft, error) {
	s.generateCalls = append(s.generateCalls, req)
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	out := make([]client.GeneratedDraft, 0, len(req.Languages))
	for _, lang := range req.Languages {
		out = append(out, client.GeneratedDraft{
			Draft: &client.Draft{
				ID:         "draft_" + lang,
				PropertyID: req.PropertyID,
				Language:   lang,
				Title:      "Generated " + lang,
				Status:     "generated",
			},
		})
	}
	return out, nil
}

func (s *stubPublishingAPI) UpdateDraft(ctx context.Context, draftID string, patch client.DraftPatch) (*client.Draft, error) {
	s.updateCalls++
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	d := &client.Draft{ID: draftID, Status: "edited"}
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Body != nil {
		d.Body = *patch.Body
	}
	d.Hashtags = patch.Hashtags
	return d, nil
}

func (s *stubPublishingAPI) MarkDraftReady(ctx context.Context, draftID string) (*client.Draft, error) {
	s.readyCalls = append(s.readyCalls, draftID)
	if s.readyErr != nil {
		return nil, s.readyErr
	}
	return &client.Draft{ID: draftID, Status: "ready"}, nil
}

func (s *stubPublishingAPI) PublishDrafts(ctx context.Context, draftIDs []string) (*client.PublishResult, error) {
	s.publishCalls = append(s.publishCalls, draftIDs)
	if s.publishErr != nil {
		return nil, s.publishErr
	}
	published := make([]*client.Draft, 0, len(draftIDs))
	for _, id := range draftIDs {
		published = append(published, &client.Draft{ID: id, Status: "published"})
	}
	return &client.PublishResult{Published: published, Count: len(published)}, nil
}

func testProperty() *client.Property {
	return &client.Property{ID: "prop_1", Title: "Sunny Villa", Location: "Valencia"}
}

func setupFlow(t *testing.T, api *stubPublishingAPI, notifier Notifier) *Flow {
	t.Helper()
	f := NewFlow(api, notifier)
	require.NoError(t, f.SelectProperty(context.Background(), testProperty()))
	return f
}

func TestFlow_SelectPropertyLoadsExistingDrafts(t *testing.T) {
	api := &stubPublishingAPI{existing: []*client.Draft{
		{ID: "draft_en", Language: "en", Title: "Existing", Status: "generated"},
	}}
	f := setupFlow(t, api, nil)

	assert.Equal(t, StageSetup, f.Stage())
	require.NotNil(t, f.Draft("en"))
	assert.Equal(t, "Existing", f.Draft("en").Title)
}

func TestFlow_GenerateSkipsLanguagesWithDrafts(t *testing.T) {
	api := &stubPublishingAPI{existing: []*client.Draft{
		{ID: "draft_en", Language: "en", Title: "Existing", Status: "generated"},
	}}
	notifier := &recordingNotifier{}
	f := setupFlow(t, api, notifier)

	f.ToggleChannel("instagram")
	f.ToggleLanguage("en")
	f.ToggleLanguage("hi")

	require.NoError(t, f.Generate(context.Background()))

	// Exactly one request, for the language with no draft.
	require.Len(t, api.generateCalls, 1)
	assert.Equal(t, []string{"hi"}, api.generateCalls[0].Languages)

	// The existing draft survives regeneration untouched.
	assert.Equal(t, "Existing", f.Draft("en").Title)
	assert.Equal(t, "Generated hi", f.Draft("hi").Title)
	assert.Contains(t, notifier.infos, "Using existing content for en")
	assert.Equal(t, StageReview, f.Stage())
}

func TestFlow_GenerateRequiresChannelsAndLanguages(t *testing.T) {
	api := &stubPublishingAPI{}
	notifier := &recordingNotifier{}
	f := setupFlow(t, api, notifier)

	err := f.Generate(context.Background())
	require.Error(t, err)
	assert.Empty(t, api.generateCalls)
	assert.Equal(t, StageSetup, f.Stage())
}

func TestFlow_GenerateFailureLeavesStateUnchanged(t *testing.T) {
	api := &stubPublishingAPI{generateErr: errors.New("ai service down")}
	f := setupFlow(t, api, nil)
	f.ToggleChannel("facebook")
	f.ToggleLanguage("en")

	err := f.Generate(context.Background())
	require.Error(t, err)
	assert.Nil(t, f.Draft("en"))
	assert.Equal(t, StageSetup, f.Stage())
}

func TestFlow_MarkReadyTwiceRecordsOneEntry(t *testing.T) {
	api := &stubPublishingAPI{}
	f := setupFlow(t, api, nil)
	f.ToggleChannel("instagram")
	f.ToggleLanguage("en")
	require.NoError(t, f.Generate(context.Background()))

	require.NoError(t, f.MarkReady(context.Background(), "en"))
	require.NoError(t, f.MarkReady(context.Background(), "en"))

	assert.Equal(t, []string{"draft_en"}, f.ReadyDrafts())
}

func TestFlow_EditThenMarkReadyPushesEdits(t *testing.T) {
	api := &stubPublishingAPI{}
	f := setupFlow(t, api, nil)
	f.ToggleChannel("instagram")
	f.ToggleLanguage("en")
	require.NoError(t, f.Generate(context.Background()))

	title := "Edited title"
	require.NoError(t, f.EditDraft("en", client.DraftPatch{Title: &title}))
	assert.Equal(t, "edited", f.Draft("en").Status)
	assert.Zero(t, api.updateCalls)

	require.NoError(t, f.MarkReady(context.Background(), "en"))
	assert.Equal(t, 1, api.updateCalls)
	assert.Equal(t, "ready", f.Draft("en").Status)
}

func TestFlow_EditUnknownLanguageFails(t *testing.T) {
	f := setupFlow(t, &stubPublishingAPI{}, nil)
	title := "x"
	assert.Error(t, f.EditDraft("de", client.DraftPatch{Title: &title}))
}

func TestFlow_PublishResetsFlow(t *testing.T) {
	api := &stubPublishingAPI{}
	f := setupFlow(t, api, nil)
	f.ToggleChannel("instagram")
	f.ToggleLanguage("en")
	require.NoError(t, f.Generate(context.Background()))
	require.NoError(t, f.MarkReady(context.Background(), "en"))

	result, err := f.Publish(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)

	assert.Equal(t, StageProperty, f.Stage())
	assert.Nil(t, f.Property())
	assert.Empty(t, f.ReadyDrafts())
	assert.Nil(t, f.Draft("en"))
}

func TestFlow_PublishFailureKeepsState(t *testing.T) {
	api := &stubPublishingAPI{publishErr: errors.New("not all drafts ready")}
	f := setupFlow(t, api, nil)
	f.ToggleChannel("instagram")
	f.ToggleLanguage("en")
	require.NoError(t, f.Generate(context.Background()))
	require.NoError(t, f.MarkReady(context.Background(), "en"))

	_, err := f.Publish(context.Background())
	require.Error(t, err)

	assert.Equal(t, []string{"draft_en"}, f.ReadyDrafts())
	assert.NotNil(t, f.Property())
}

func TestFlow_PublishWithNothingReady(t *testing.T) {
	api := &stubPublishingAPI{}
	f := setupFlow(t, api, nil)

	_, err := f.Publish(context.Background())
	require.Error(t, err)
	assert.Empty(t, api.publishCalls)
}

func TestFlow_GoBackWalksStages(t *testing.T) {
	f := setupFlow(t, &stubPublishingAPI{}, nil)
	require.Equal(t, StageSetup, f.Stage())

	f.GoBack()
	assert.Equal(t, StageProperty, f.Stage())
	f.GoBack()
	assert.Equal(t, StageProperty, f.Stage())
}

func TestFlow_SetStyleRejectsUnknown(t *testing.T) {
	notifier := &recordingNotifier{}
	f := NewFlow(&stubPublishingAPI{}, notifier)

	f.SetStyle("professional")
	assert.Equal(t, "professional", f.style)

	f.SetStyle("sarcastic")
	assert.Equal(t, "professional", f.style)
	assert.NotEmpty(t, notifier.errors)
}
