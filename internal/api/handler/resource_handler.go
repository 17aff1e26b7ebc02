package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/service"
)

// ResourceHandler exposes the shared library of guidelines, training
// material, forms and patient education content.
type ResourceHandler struct {
	resources *service.ResourceService
}

func NewResourceHandler(resources *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resources: resources}
}

type resourceRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required,oneof=educational guidelines forms training research policies"`
	Type        string   `json:"type" validate:"required,oneof=document video image link presentation"`
	FileURL     string   `json:"file_url"`
	FileName    string   `json:"file_name"`
	FileSize    int64    `json:"file_size" validate:"min=0"`
	Tags        []string `json:"tags"`
	IsPublic    bool     `json:"is_public"`
	Language    string   `json:"language" validate:"required,oneof=en sw both"`
}

// Add stores a new resource uploaded by the caller.
//
// @Summary      Add a resource
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        body  body      resourceRequest  true  "Resource"
// @Success      201   {object}  domain.ResourceItem
// @Failure      400   {object}  map[string]string
// @Router       /api/resources [post]
func (h *ResourceHandler) Add(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req resourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := domain.ParseResourceCategory(req.Category)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	resType, err := domain.ParseResourceType(req.Type)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid type")
	}
	language, err := domain.ParseResourceLanguage(req.Language)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid language")
	}

	item, err := h.resources.Add(c.Request().Context(), service.ResourceInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       category,
		Type:           resType,
		FileURL:        req.FileURL,
		FileName:       req.FileName,
		FileSize:       req.FileSize,
		Tags:           req.Tags,
		IsPublic:       req.IsPublic,
		Language:       language,
		UploadedBy:     identity.ProfileName,
		UploadedByRole: identity.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// List returns resources, filtered by ?q= and ?category= when given.
//
// @Summary      List or search resources
// @Tags         resources
// @Produce      json
// @Param        q         query  string  false  "Search term"
// @Param        category  query  string  false  "Category filter"
// @Success      200  {array}  domain.ResourceItem
// @Router       /api/resources [get]
func (h *ResourceHandler) List(c echo.Context) error {
	query := c.QueryParam("q")
	category := c.QueryParam("category")

	if query == "" && category == "" {
		items, err := h.resources.List(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, items)
	}

	items, err := h.resources.Search(c.Request().Context(), query, category)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Download records a download of the resource and returns the updated item.
//
// @Summary      Record a resource download
// @Tags         resources
// @Produce      json
// @Param        id  path  string  true  "Resource ID"
// @Success      200  {object}  domain.ResourceItem
// @Failure      404  {object}  map[string]string
// @Router       /api/resources/{id}/download [post]
func (h *ResourceHandler) Download(c echo.Context) error {
	item, err := h.resources.RecordDownload(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

type resourceGroupRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	ResourceIDs []string `json:"resource_ids"`
	IsPublic    bool     `json:"is_public"`
}

// AddGroup stores a new resource group.
//
// @Summary      Add a resource group
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        body  body      resourceGroupRequest  true  "Group"
// @Success      201   {object}  domain.ResourceGroup
// @Failure      400   {object}  map[string]string
// @Router       /api/resources/groups [post]
func (h *ResourceHandler) AddGroup(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req resourceGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	group, err := h.resources.AddGroup(c.Request().Context(), service.ResourceGroupInput{
		Name:          req.Name,
		Description:   req.Description,
		ResourceIDs:   req.ResourceIDs,
		IsPublic:      req.IsPublic,
		CreatedBy:     identity.ProfileName,
		CreatedByRole: identity.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, group)
}

// ListGroups returns all resource groups.
//
// @Summary      List resource groups
// @Tags         resources
// @Produce      json
// @Success      200  {array}  domain.ResourceGroup
// @Router       /api/resources/groups [get]
func (h *ResourceHandler) ListGroups(c echo.Context) error {
	groups, err := h.resources.ListGroups(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, groups)
}

// Stats aggregates the resource library.
//
// @Summary      Resource statistics
// @Tags         resources
// @Produce      json
// @Success      200  {object}  domain.ResourceStats
// @Router       /api/resources/stats [get]
func (h *ResourceHandler) Stats(c echo.Context) error {
	stats, err := h.resources.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
