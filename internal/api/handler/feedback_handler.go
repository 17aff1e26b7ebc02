package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/service"
)

// FeedbackHandler exposes feedback submission, voting and admin responses.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

type feedbackRequest struct {
	Category    string `json:"category" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high critical"`
}

// Submit stores a new feedback item.
//
// @Summary      Submit feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      feedbackRequest  true  "Feedback"
// @Success      201   {object}  domain.FeedbackItem
// @Failure      400   {object}  map[string]string
// @Router       /api/feedback [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := domain.ParseFeedbackCategory(req.Category)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	priority, err := domain.ParseFeedbackPriority(req.Priority)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid priority")
	}

	item, err := h.feedback.Submit(c.Request().Context(), service.FeedbackInput{
		UserID:      identity.ID,
		UserRole:    identity.Role,
		UserName:    identity.ProfileName,
		Category:    category,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// List returns all feedback items.
//
// @Summary      List feedback
// @Tags         feedback
// @Produce      json
// @Success      200  {array}  domain.FeedbackItem
// @Router       /api/feedback [get]
func (h *FeedbackHandler) List(c echo.Context) error {
	items, err := h.feedback.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Vote toggles the caller's vote on a feedback item.
//
// @Summary      Toggle a vote on feedback
// @Tags         feedback
// @Produce      json
// @Param        id  path  string  true  "Feedback ID"
// @Success      200  {object}  domain.FeedbackItem
// @Failure      404  {object}  map[string]string
// @Router       /api/feedback/{id}/vote [post]
func (h *FeedbackHandler) Vote(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	item, err := h.feedback.ToggleVote(c.Request().Context(), c.Param("id"), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Mine returns the feedback items submitted by the caller.
//
// @Summary      List own feedback
// @Tags         feedback
// @Produce      json
// @Success      200  {array}  domain.FeedbackItem
// @Router       /api/feedback/mine [get]
func (h *FeedbackHandler) Mine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	items, err := h.feedback.ListByUser(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

type respondRequest struct {
	Response string `json:"response" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=under_review in_progress resolved rejected"`
}

// Respond records an admin response on a feedback item.
//
// @Summary      Respond to feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "Feedback ID"
// @Param        body  body  respondRequest  true  "Response"
// @Success      200  {object}  domain.FeedbackItem
// @Failure      404  {object}  map[string]string
// @Router       /api/feedback/{id}/respond [post]
func (h *FeedbackHandler) Respond(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req respondRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := domain.ParseFeedbackStatus(req.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	item, err := h.feedback.Respond(c.Request().Context(), c.Param("id"), identity.ID, req.Response, status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Stats aggregates feedback counts.
//
// @Summary      Feedback statistics
// @Tags         feedback
// @Produce      json
// @Success      200  {object}  domain.FeedbackStats
// @Router       /api/feedback/stats [get]
func (h *FeedbackHandler) Stats(c echo.Context) error {
	stats, err := h.feedback.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
