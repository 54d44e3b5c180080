package domain

import "testing"

func TestDraftStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to DraftStatus
		want     bool
	}{
		{DraftGenerated, DraftEdited, true},
		{DraftGenerated, DraftReady, true},
		{DraftGenerated, DraftPublished, false},
		{DraftEdited, DraftEdited, true},
		{DraftEdited, DraftReady, true},
		{DraftEdited, DraftPublished, false},
		{DraftReady, DraftEdited, true},
		{DraftReady, DraftPublished, true},
		{DraftPublished, DraftEdited, false},
		{DraftPublished, DraftReady, false},
		{DraftPublished, DraftPublished, false},
	}

	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestLeadStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to LeadStatus
		want     bool
	}{
		{LeadNew, LeadContacted, true},
		{LeadNew, LeadQualified, false},
		{LeadNew, LeadClosed, true},
		{LeadContacted, LeadQualified, true},
		{LeadContacted, LeadNew, false},
		{LeadQualified, LeadClosed, true},
		{LeadClosed, LeadNew, false},
	}

	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}
