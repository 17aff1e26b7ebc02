package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/ports"
)

// FeedbackInput is a new feedback submission.
type FeedbackInput struct {
	UserID      string
	UserRole    domain.Role
	UserName    string
	Category    domain.FeedbackCategory
	Title       string
	Description string
	Priority    domain.FeedbackPriority
}

// FeedbackService implements feedback submission, admin responses, vote
// toggling and stats.
type FeedbackService struct {
	repo   ports.FeedbackRepository
	logger zerolog.Logger
}

func NewFeedbackService(repo ports.FeedbackRepository, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, logger: logger}
}

// Submit stores a new feedback item in the submitted state.
func (s *FeedbackService) Submit(ctx context.Context, input FeedbackInput) (*domain.FeedbackItem, error) {
	now := time.Now().UTC()
	item := &domain.FeedbackItem{
		ID:          generateID(),
		UserID:      input.UserID,
		UserRole:    input.UserRole,
		UserName:    input.UserName,
		Category:    input.Category,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      domain.FeedbackSubmitted,
		VotedBy:     []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Respond records an admin response and moves the item to the given status.
func (s *FeedbackService) Respond(ctx context.Context, id, adminID, response string, status domain.FeedbackStatus) (*domain.FeedbackItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item.Status = status
	item.AdminResponse = response
	item.AdminResponseBy = adminID
	item.AdminResponseAt = now
	item.UpdatedAt = now

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ToggleVote adds the user's vote, or removes it if already present.
func (s *FeedbackService) ToggleVote(ctx context.Context, id, userID string) (*domain.FeedbackItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.ToggleVote(userID)
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns all feedback items, newest first.
func (s *FeedbackService) List(ctx context.Context) ([]*domain.FeedbackItem, error) {
	return s.repo.List(ctx)
}

// ListByUser returns the items submitted by one user.
func (s *FeedbackService) ListByUser(ctx context.Context, userID string) ([]*domain.FeedbackItem, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Stats aggregates feedback counts by category, status and priority.
func (s *FeedbackService) Stats(ctx context.Context) (*domain.FeedbackStats, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.FeedbackStats{
		ByCategory: make(map[string]int),
		ByStatus:   make(map[string]int),
		ByPriority: make(map[string]int),
	}
	for _, item := range items {
		stats.TotalFeedback++
		stats.ByCategory[string(item.Category)]++
		stats.ByStatus[string(item.Status)]++
		stats.ByPriority[string(item.Priority)]++
	}
	return stats, nil
}
