package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/propertyai/agent-platform/internal/core/domain"
	"github.com/propertyai/agent-platform/internal/core/ports"
)

// LeadHandler handles lead capture and pipeline endpoints. Capture is
// public (embedded on listing pages); the rest require auth.
type LeadHandler struct {
	service ports.LeadService
}

func NewLeadHandler(service ports.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

type captureLeadRequest struct {
	AgentID string `json:"agent_id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Source  string `json:"source"`
	Message string `json:"message"`
}

type updateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted qualified closed"`
}

type listLeadsResponse struct {
	Items []*domain.Lead `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// Capture records a new lead for an agent.
//
// @Summary      Capture a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      captureLeadRequest  true  "Lead details"
// @Success      201   {object}  domain.Lead
// @Failure      400   {object}  map[string]string
// @Router       /leads [post]
func (h *LeadHandler) Capture(c echo.Context) error {
	var req captureLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lead, err := h.service.Capture(c.Request().Context(), ports.CaptureLeadInput{
		AgentID: req.AgentID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Source:  req.Source,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, lead)
}

// List returns the agent's leads. Admins see all leads.
//
// @Summary      List leads
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  listLeadsResponse
// @Router       /leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	agentID := userID
	if role == domain.RoleAdmin {
		agentID = c.QueryParam("agent_id") // empty = all agents
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListLeadsFilter{
		AgentID: agentID,
		Status:  c.QueryParam("status"),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listLeadsResponse{
		Items: result.Items,
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
	})
}

// UpdateStatus advances a lead through the pipeline.
//
// @Summary      Update lead status
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Lead ID"
// @Param        body  body      updateLeadStatusRequest  true  "New status"
// @Success      200   {object}  domain.Lead
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /leads/{id}/status [patch]
func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req updateLeadStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lead, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.LeadStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lead)
}
