// Package workflow implements the two client-side state machines of the
// platform: the six-step onboarding wizard and the social publishing flow.
// Both are driven through the pkg/client SDK and report user-facing events
// through a Notifier.
package workflow

// Notifier receives user-facing messages from a workflow. UIs map these to
// toasts; the CLI maps them to log lines.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// NopNotifier discards all messages.
type NopNotifier struct{}

func (NopNotifier) Info(string)  {}
func (NopNotifier) Warn(string)  {}
func (NopNotifier) Error(string) {}
