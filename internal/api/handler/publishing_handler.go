package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertyai/agent-platform/internal/core/domain"
	"github.com/propertyai/agent-platform/internal/core/ports"
)

// PublishingHandler handles draft generation, review and publishing.
type PublishingHandler struct {
	service ports.PublishingService
}

func NewPublishingHandler(service ports.PublishingService) *PublishingHandler {
	return &PublishingHandler{service: service}
}

type generateRequest struct {
	PropertyID string   `json:"property_id" validate:"required"`
	Languages  []string `json:"languages" validate:"required,min=1"`
	Channels   []string `json:"channels" validate:"required,min=1"`
	Tone       string   `json:"tone" validate:"omitempty,oneof=professional friendly luxury casual"`
	Length     string   `json:"length" validate:"omitempty,oneof=short medium long"`
}

type generatedDraftResponse struct {
	Draft    *domain.Draft `json:"draft"`
	Existing bool          `json:"existing"`
}

type updateDraftRequest struct {
	Title    *string  `json:"title"`
	Body     *string  `json:"body"`
	Hashtags []string `json:"hashtags"`
}

type publishRequest struct {
	DraftIDs []string `json:"draft_ids" validate:"required,min=1"`
}

type publishResponse struct {
	Published []*domain.Draft `json:"published"`
	Count     int             `json:"count"`
}

// Generate creates AI drafts for every requested language that has none yet.
//
// @Summary      Generate social post drafts
// @Tags         social
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateRequest  true  "Generation parameters"
// @Success      200   {array}   generatedDraftResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /social/generate [post]
func (h *PublishingHandler) Generate(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	results, err := h.service.Generate(c.Request().Context(), ports.GenerateInput{
		PropertyID: req.PropertyID,
		AgentID:    userID,
		Languages:  req.Languages,
		Channels:   req.Channels,
		Tone:       req.Tone,
		Length:     req.Length,
	})
	if err != nil {
		return err
	}

	out := make([]generatedDraftResponse, 0, len(results))
	for _, r := range results {
		out = append(out, generatedDraftResponse{Draft: r.Draft, Existing: r.Existing})
	}
	return c.JSON(http.StatusOK, out)
}

// Drafts lists the unpublished drafts of a property.
//
// @Summary      List drafts for a property
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Param        property_id  path      string  true  "Property ID"
// @Success      200          {array}   domain.Draft
// @Router       /social/drafts/{property_id} [get]
func (h *PublishingHandler) Drafts(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	drafts, err := h.service.Drafts(c.Request().Context(), c.Param("property_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, drafts)
}

// UpdateDraft applies reviewer edits to a draft.
//
// @Summary      Edit a draft
// @Tags         social
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Draft ID"
// @Param        body  body      updateDraftRequest  true  "Fields to change"
// @Success      200   {object}  domain.Draft
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /social/drafts/{id} [patch]
func (h *PublishingHandler) UpdateDraft(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req updateDraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	draft, err := h.service.UpdateDraft(c.Request().Context(), c.Param("id"), ports.DraftPatch{
		Title:    req.Title,
		Body:     req.Body,
		Hashtags: req.Hashtags,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// MarkReady approves a draft for publishing.
//
// @Summary      Mark a draft ready
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Draft ID"
// @Success      200  {object}  domain.Draft
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /social/drafts/{id}/ready [post]
func (h *PublishingHandler) MarkReady(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	draft, err := h.service.MarkReady(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// Publish publishes a batch of ready drafts.
//
// @Summary      Publish ready drafts
// @Tags         social
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      publishRequest  true  "Draft IDs"
// @Success      200   {object}  publishResponse
// @Failure      422   {object}  map[string]string
// @Router       /social/publish [post]
func (h *PublishingHandler) Publish(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req publishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	published, err := h.service.PublishBatch(c.Request().Context(), req.DraftIDs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, publishResponse{Published: published, Count: len(published)})
}
