package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/service"
)

// InventoryHandler exposes admin inventory management.
type InventoryHandler struct {
	inventory *service.InventoryService
}

func NewInventoryHandler(inventory *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

type inventoryRequest struct {
	Name             string  `json:"name" validate:"required"`
	Category         string  `json:"category" validate:"required,oneof=medical_equipment consumables medications test_kits"`
	Description      string  `json:"description"`
	Quantity         int     `json:"quantity" validate:"min=0"`
	UnitCost         float64 `json:"unit_cost" validate:"min=0"`
	Supplier         string  `json:"supplier"`
	ExpiryDate       string  `json:"expiry_date,omitempty"`
	MinimumThreshold int     `json:"minimum_threshold" validate:"min=0"`
}

func (r *inventoryRequest) toInput() (service.InventoryInput, error) {
	category, err := domain.ParseItemCategory(r.Category)
	if err != nil {
		return service.InventoryInput{}, err
	}
	return service.InventoryInput{
		Name:             r.Name,
		Category:         category,
		Description:      r.Description,
		Quantity:         r.Quantity,
		UnitCost:         r.UnitCost,
		Supplier:         r.Supplier,
		ExpiryDate:       r.ExpiryDate,
		MinimumThreshold: r.MinimumThreshold,
	}, nil
}

// Add creates an inventory item.
//
// @Summary      Add an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body      inventoryRequest  true  "Item"
// @Success      201   {object}  domain.InventoryItem
// @Failure      400   {object}  map[string]string
// @Router       /api/inventory [post]
func (h *InventoryHandler) Add(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req inventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	item, err := h.inventory.Add(c.Request().Context(), input, identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update overwrites an inventory item.
//
// @Summary      Update an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Item ID"
// @Param        body  body      inventoryRequest  true  "Item"
// @Success      200   {object}  domain.InventoryItem
// @Failure      404   {object}  map[string]string
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req inventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	item, err := h.inventory.Update(c.Request().Context(), c.Param("id"), input, identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete removes an inventory item.
//
// @Summary      Delete an inventory item
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "Item ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.inventory.Delete(c.Request().Context(), c.Param("id"), identity.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// List returns all inventory items.
//
// @Summary      List inventory
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  domain.InventoryItem
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c echo.Context) error {
	items, err := h.inventory.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Stats returns aggregated inventory statistics.
//
// @Summary      Inventory statistics
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  domain.InventoryStats
// @Router       /api/inventory/stats [get]
func (h *InventoryHandler) Stats(c echo.Context) error {
	stats, err := h.inventory.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
