package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/service"
)

// TestCostHandler serves the Kenyan standard cost catalog.
type TestCostHandler struct {
	costs *service.TestCostService
}

func NewTestCostHandler(costs *service.TestCostService) *TestCostHandler {
	return &TestCostHandler{costs: costs}
}

// List returns the catalog, optionally filtered by ?category=.
//
// @Summary      List test costs
// @Tags         test-costs
// @Produce      json
// @Param        category  query  string  false  "Category filter"
// @Success      200  {array}  domain.TestCost
// @Failure      400  {object}  map[string]string
// @Router       /api/test-costs [get]
func (h *TestCostHandler) List(c echo.Context) error {
	raw := c.QueryParam("category")
	if raw == "" {
		return c.JSON(http.StatusOK, h.costs.List())
	}

	category, err := domain.ParseTestCategory(raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	return c.JSON(http.StatusOK, h.costs.ListByCategory(category))
}

// Get returns one catalog entry by key.
//
// @Summary      Get a test cost
// @Tags         test-costs
// @Produce      json
// @Param        key  path  string  true  "Catalog key"
// @Success      200  {object}  domain.TestCost
// @Failure      404  {object}  map[string]string
// @Router       /api/test-costs/{key} [get]
func (h *TestCostHandler) Get(c echo.Context) error {
	cost, err := h.costs.Get(c.Param("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cost)
}

type quoteRequest struct {
	Tests []string `json:"tests" validate:"required,min=1,dive,required"`
}

// Quote prices a set of procedures.
//
// @Summary      Quote a set of tests
// @Tags         test-costs
// @Accept       json
// @Produce      json
// @Param        body  body      quoteRequest  true  "Test keys"
// @Success      200   {object}  service.Quote
// @Failure      400   {object}  map[string]string
// @Router       /api/test-costs/quote [post]
func (h *TestCostHandler) Quote(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, h.costs.QuoteFor(req.Tests))
}

// Recommended returns the procedures suggested for a model risk level.
//
// @Summary      Recommended tests for a risk level
// @Tags         test-costs
// @Produce      json
// @Param        risk  query  string  true  "Risk level (LOW, MEDIUM, HIGH)"
// @Success      200  {array}  domain.TestCost
// @Router       /api/test-costs/recommended [get]
func (h *TestCostHandler) Recommended(c echo.Context) error {
	return c.JSON(http.StatusOK, h.costs.Recommended(c.QueryParam("risk")))
}
