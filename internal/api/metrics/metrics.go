// Package metrics defines and registers all custom Prometheus metrics for
// the PropertyAI platform. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// Prometheus registry via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "propertyai"

// ── Publishing metrics ────────────────────────────────────────────────────────

// DraftsGeneratedTotal counts AI drafts created, by language.
var DraftsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "drafts_generated_total",
		Help:      "Total number of AI post drafts generated, by language.",
	},
	[]string{"language"},
)

// DraftsPublishedTotal counts drafts published, by language.
var DraftsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "drafts_published_total",
		Help:      "Total number of drafts published, by language.",
	},
	[]string{"language"},
)

// ── Onboarding metrics ────────────────────────────────────────────────────────

// OnboardingStepsTotal counts saved onboarding steps, by step name.
var OnboardingStepsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "onboarding_steps_total",
		Help:      "Total number of onboarding step submissions, by step.",
	},
	[]string{"step"},
)

// OnboardingCompletedTotal counts completed onboarding flows.
var OnboardingCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "onboarding_completed_total",
		Help:      "Total number of agents that completed onboarding.",
	},
)

// BrandingSuggestionsTotal counts successful branding suggestion calls.
var BrandingSuggestionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "branding_suggestions_total",
		Help:      "Total number of branding suggestion sets generated.",
	},
)

// ── Lead metrics ──────────────────────────────────────────────────────────────

// LeadsCapturedTotal counts captured leads, by source.
var LeadsCapturedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_captured_total",
		Help:      "Total number of leads captured, by source.",
	},
	[]string{"source"},
)
