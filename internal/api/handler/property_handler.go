package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertyai/agent-platform/internal/core/ports"
)

// PropertyHandler handles listing management.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

type createPropertyRequest struct {
	Title     string   `json:"title" validate:"required"`
	Location  string   `json:"location" validate:"required"`
	Price     float64  `json:"price" validate:"required,gt=0"`
	Bedrooms  int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms int      `json:"bathrooms" validate:"gte=0"`
	AreaSqft  float64  `json:"area_sqft" validate:"gte=0"`
	Features  []string `json:"features"`
	Type      string   `json:"type" validate:"required,oneof=house apartment condo townhouse land commercial"`
}

// Create registers a new listing owned by the authenticated agent.
//
// @Summary      Create a property listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Listing details"
// @Success      201   {object}  domain.Property
// @Failure      400   {object}  map[string]string
// @Router       /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.service.Create(c.Request().Context(), ports.CreatePropertyInput{
		AgentID:   userID,
		Title:     req.Title,
		Location:  req.Location,
		Price:     req.Price,
		Bedrooms:  req.Bedrooms,
		Bathrooms: req.Bathrooms,
		AreaSqft:  req.AreaSqft,
		Features:  req.Features,
		Type:      req.Type,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, property)
}

// Get returns a single listing.
//
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Property ID"
// @Success      200  {object}  domain.Property
// @Failure      404  {object}  map[string]string
// @Router       /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	property, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// List returns the authenticated agent's listings.
//
// @Summary      List the agent's properties
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Property
// @Router       /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	properties, err := h.service.ListByAgent(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, properties)
}
