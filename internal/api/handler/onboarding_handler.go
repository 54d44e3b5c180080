package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertyai/agent-platform/internal/core/ports"
)

// OnboardingHandler handles the wizard's persistence and branding endpoints.
type OnboardingHandler struct {
	service ports.OnboardingService
}

func NewOnboardingHandler(service ports.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{service: service}
}

type saveStepRequest struct {
	StepNumber int               `json:"step_number" validate:"required,gte=1,max=6"`
	Data       map[string]string `json:"data"`
	Completed  bool              `json:"completed"`
}

type progressResponse struct {
	UserID      string `json:"user_id"`
	CurrentStep int    `json:"current_step"`
	StepName    string `json:"step_name"`
	Completed   bool   `json:"completed"`
}

type brandingSuggestRequest struct {
	CompanyName string `json:"company_name" validate:"required"`
	AgentName   string `json:"agent_name"`
	Style       string `json:"style" validate:"omitempty,oneof=modern classic bold minimal"`
}

type colorsResponse struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

type brandingSuggestionResponse struct {
	Tagline string         `json:"tagline"`
	About   string         `json:"about"`
	Colors  colorsResponse `json:"colors"`
}

// SaveStep persists one onboarding step.
//
// @Summary      Save an onboarding step
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string           true  "User ID"
// @Param        body     body      saveStepRequest  true  "Step payload"
// @Success      200      {object}  progressResponse
// @Failure      400      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Router       /onboarding/{user_id} [post]
func (h *OnboardingHandler) SaveStep(c echo.Context) error {
	targetID := c.Param("user_id")
	if _, err := requireSelfOrAdmin(c, targetID); err != nil {
		return err
	}

	var req saveStepRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	progress, err := h.service.SaveStep(c.Request().Context(), ports.StepInput{
		UserID:     targetID,
		StepNumber: req.StepNumber,
		Data:       req.Data,
		Completed:  req.Completed,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProgressResponse(progress))
}

// Complete marks the wizard as finished.
//
// @Summary      Complete onboarding
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  progressResponse
// @Failure      403      {object}  map[string]string
// @Router       /onboarding/{user_id}/complete [post]
func (h *OnboardingHandler) Complete(c echo.Context) error {
	targetID := c.Param("user_id")
	if _, err := requireSelfOrAdmin(c, targetID); err != nil {
		return err
	}

	progress, err := h.service.Complete(c.Request().Context(), targetID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProgressResponse(progress))
}

// Progress returns the wizard's current position.
//
// @Summary      Onboarding progress
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  progressResponse
// @Router       /onboarding/{user_id} [get]
func (h *OnboardingHandler) Progress(c echo.Context) error {
	targetID := c.Param("user_id")
	if _, err := requireSelfOrAdmin(c, targetID); err != nil {
		return err
	}

	progress, err := h.service.Progress(c.Request().Context(), targetID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProgressResponse(progress))
}

// BrandingSuggest generates brand identity proposals for the agent's company.
//
// @Summary      AI branding suggestions
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      brandingSuggestRequest  true  "Company metadata"
// @Success      200   {array}   brandingSuggestionResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /agent/branding-suggest [post]
func (h *OnboardingHandler) BrandingSuggest(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req brandingSuggestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	suggestions, err := h.service.BrandingSuggestions(c.Request().Context(), ports.BrandingRequest{
		CompanyName: req.CompanyName,
		AgentName:   req.AgentName,
		Style:       req.Style,
	})
	if err != nil {
		return err
	}

	out := make([]brandingSuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, brandingSuggestionResponse{
			Tagline: s.Tagline,
			About:   s.About,
			Colors: colorsResponse{
				Primary:   s.PrimaryColor,
				Secondary: s.SecondaryColor,
				Accent:    s.AccentColor,
			},
		})
	}
	return c.JSON(http.StatusOK, out)
}

func toProgressResponse(p *ports.ProgressResult) progressResponse {
	return progressResponse{
		UserID:      p.UserID,
		CurrentStep: p.CurrentStep,
		StepName:    p.StepName,
		Completed:   p.Completed,
	}
}
