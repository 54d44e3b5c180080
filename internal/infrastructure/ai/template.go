package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/propertyai/agent-platform/internal/core/ports"
)

// TemplateGenerator produces deterministic content from fill-in templates.
// Used in development and as a degraded mode when the AI service is down or
// unconfigured.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

var postTemplates = map[string]struct {
	title string
	body  string
}{
	"en": {
		title: "%s in %s",
		body:  "Discover this %d bed, %d bath home in %s. %s of living space priced at %s. %s Contact us today for a viewing.",
	},
	"es": {
		title: "%s en %s",
		body:  "Descubre esta propiedad de %d habitaciones y %d banos en %s. %s de superficie por %s. %s Contactanos hoy para una visita.",
	},
	"hi": {
		title: "%s - %s",
		body:  "%s mein %d bedroom, %d bathroom ka ghar. %s kshetrafal, keemat %s. %s Aaj hi sampark karein.",
	},
}

func (g *TemplateGenerator) GeneratePost(ctx context.Context, req ports.PostRequest) (*ports.PostContent, error) {
	tpl, ok := postTemplates[req.Language]
	if !ok {
		tpl = postTemplates["en"]
	}

	p := req.Property
	features := ""
	if len(p.Features) > 0 {
		features = strings.Join(p.Features, ", ") + "."
	}
	area := fmt.Sprintf("%.0f sqft", p.AreaSqft)
	price := fmt.Sprintf("$%.0f", p.Price)

	var title, body string
	if req.Language == "hi" {
		title = fmt.Sprintf(tpl.title, p.Title, p.Location)
		body = fmt.Sprintf(tpl.body, p.Location, p.Bedrooms, p.Bathrooms, area, price, features)
	} else {
		title = fmt.Sprintf(tpl.title, p.Title, p.Location)
		body = fmt.Sprintf(tpl.body, p.Bedrooms, p.Bathrooms, p.Location, area, price, features)
	}

	return &ports.PostContent{
		Title:    title,
		Body:     strings.TrimSpace(body),
		Hashtags: hashtagsFor(p.Type, p.Location),
	}, nil
}

func (g *TemplateGenerator) BrandingSuggestions(ctx context.Context, req ports.BrandingRequest) ([]ports.BrandingSuggestion, error) {
	name := req.CompanyName
	return []ports.BrandingSuggestion{
		{
			Tagline:        fmt.Sprintf("%s: your home, our mission", name),
			About:          fmt.Sprintf("%s helps families find the right home with honest advice and local expertise.", name),
			PrimaryColor:   "#1E3A8A",
			SecondaryColor: "#F59E0B",
			AccentColor:    "#10B981",
		},
		{
			Tagline:        fmt.Sprintf("Opening doors with %s", name),
			About:          fmt.Sprintf("At %s we combine market insight with personal service for buyers and sellers alike.", name),
			PrimaryColor:   "#0F766E",
			SecondaryColor: "#E11D48",
			AccentColor:    "#FACC15",
		},
		{
			Tagline:        fmt.Sprintf("%s, where every listing feels like home", name),
			About:          fmt.Sprintf("%s is a full-service agency focused on transparent deals and lasting relationships.", name),
			PrimaryColor:   "#7C3AED",
			SecondaryColor: "#0EA5E9",
			AccentColor:    "#F97316",
		},
	}, nil
}

func hashtagsFor(propertyType, location string) []string {
	tags := []string{"#realestate", "#property", "#forsale"}
	if propertyType != "" {
		tags = append(tags, "#"+strings.ToLower(propertyType))
	}
	if location != "" {
		city := strings.Fields(location)
		if len(city) > 0 {
			tags = append(tags, "#"+strings.ToLower(strings.Trim(city[0], ",")))
		}
	}
	return tags
}
