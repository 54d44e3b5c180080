// agentctl is a small CLI over the platform SDK: it logs in, runs the
// onboarding wizard and the publishing flow, and prints dashboard metrics.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/propertyai/agent-platform/pkg/client"
	"github.com/propertyai/agent-platform/pkg/workflow"
)

const defaultAPI = "http://localhost:8080"

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger()

// logNotifier maps workflow toasts to log lines.
type logNotifier struct{}

func (logNotifier) Info(msg string)  { log.Info().Msg(msg) }
func (logNotifier) Warn(msg string)  { log.Warn().Msg(msg) }
func (logNotifier) Error(msg string) { log.Error().Msg(msg) }

func usage() {
	fmt.Fprintf(os.Stderr, `usage: agentctl <command> [flags]

commands:
  login      authenticate and persist the session
  me         show the current profile
  onboard    run the onboarding wizard non-interactively
  publish    generate, approve and publish drafts for a property
  dashboard  show dashboard metrics

environment:
  PROPERTYAI_API  base URL of the platform (default %s)
`, defaultAPI)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	baseURL := os.Getenv("PROPERTYAI_API")
	if baseURL == "" {
		baseURL = defaultAPI
	}

	c := client.New(baseURL)
	session := client.NewSession(c, client.NewFileStore(sessionPath()))
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "login":
		err = runLogin(ctx, session, os.Args[2:])
	case "me":
		err = runMe(ctx, session)
	case "onboard":
		err = runOnboard(ctx, c, session, os.Args[2:])
	case "publish":
		err = runPublish(ctx, c, session, os.Args[2:])
	case "dashboard":
		err = runDashboard(ctx, c, session)
	default:
		usage()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func sessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".propertyai-session.json"
	}
	return filepath.Join(home, ".propertyai", "session.json")
}

func runLogin(ctx context.Context, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("both -email and -password are required")
	}

	user, err := session.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	log.Info().Str("user", user.Email).Str("role", user.Role).Msg("logged in")
	return nil
}

func requireSession(ctx context.Context, session *client.Session) (*client.User, error) {
	if err := session.Init(ctx); err != nil {
		return nil, err
	}
	current := session.Current()
	if !current.IsAuthenticated {
		return nil, fmt.Errorf("not logged in, run: agentctl login")
	}
	return current.User, nil
}

func runMe(ctx context.Context, session *client.Session) error {
	user, err := requireSession(ctx, session)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
	fmt.Printf("company: %s\n", user.Company)
	fmt.Printf("onboarding: step %d, completed=%v\n", user.OnboardingStep, user.OnboardingCompleted)
	return nil
}

func runOnboard(ctx context.Context, c *client.Client, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("onboard", flag.ExitOnError)
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	company := fs.String("company", "", "company name")
	branding := fs.Bool("branding", false, "request AI branding suggestions")
	fs.Parse(args)

	user, err := requireSession(ctx, session)
	if err != nil {
		return err
	}

	wizard := workflow.NewWizard(c, logNotifier{}, user.ID)
	wizard.SetSession(session)
	wizard.OnComplete = func() { log.Info().Msg("onboarding complete") }

	wizard.SetField("first_name", *first)
	wizard.SetField("last_name", *last)
	wizard.SetField("company", *company)
	wizard.SetField("terms_accepted", "true")
	wizard.SetField("privacy_accepted", "true")

	for wizard.Step() < 6 {
		step := wizard.Step()
		if step == 3 && *branding {
			if err := wizard.GenerateBranding(ctx); err == nil {
				log.Info().Str("tagline", wizard.Branding.Tagline).Msg("branding suggestion accepted")
			}
		}
		if err := wizard.Next(ctx); err != nil {
			return err
		}
		log.Info().Int("from", step).Int("to", wizard.Step()).Str("step", wizard.StepTitle()).Msg("advanced")
	}
	return wizard.Complete(ctx)
}

func runPublish(ctx context.Context, c *client.Client, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("publish", flag.ExitOnError)
	propertyID := fs.String("property", "", "property ID")
	languages := fs.String("languages", "en", "comma-separated language codes")
	channels := fs.String("channels", "instagram", "comma-separated channels")
	style := fs.String("style", "professional", "tone: professional, friendly, luxury, casual")
	fs.Parse(args)

	if *propertyID == "" {
		return fmt.Errorf("-property is required")
	}
	if _, err := requireSession(ctx, session); err != nil {
		return err
	}

	property, err := c.GetProperty(ctx, *propertyID)
	if err != nil {
		return err
	}

	flow := workflow.NewFlow(c, logNotifier{})
	if err := flow.SelectProperty(ctx, property); err != nil {
		return err
	}
	for _, ch := range strings.Split(*channels, ",") {
		flow.ToggleChannel(strings.TrimSpace(ch))
	}
	langs := strings.Split(*languages, ",")
	for _, lang := range langs {
		flow.ToggleLanguage(strings.TrimSpace(lang))
	}
	flow.SetStyle(*style)

	if err := flow.Generate(ctx); err != nil {
		return err
	}
	for _, lang := range langs {
		lang = strings.TrimSpace(lang)
		if d := flow.Draft(lang); d != nil {
			log.Info().Str("language", lang).Str("title", d.Title).Msg("draft")
		}
		if err := flow.MarkReady(ctx, lang); err != nil {
			return err
		}
	}

	result, err := flow.Publish(ctx)
	if err != nil {
		return err
	}
	log.Info().Int("count", result.Count).Msg("published")
	return nil
}

func runDashboard(ctx context.Context, c *client.Client, session *client.Session) error {
	if _, err := requireSession(ctx, session); err != nil {
		return err
	}

	summary, err := c.DashboardSummary(ctx)
	if err != nil {
		return err
	}
	if summary.Sample {
		log.Warn().Msg("showing sample data, the platform was unreachable")
	}

	fmt.Printf("leads:      %d\n", summary.TotalLeads)
	for status, n := range summary.LeadsByStatus {
		fmt.Printf("  %-10s %d\n", status, n)
	}
	fmt.Printf("properties: %d\n", summary.TotalProperties)
	fmt.Printf("drafts:     %d generated, %d published\n", summary.DraftsGenerated, summary.DraftsPublished)
	return nil
}
