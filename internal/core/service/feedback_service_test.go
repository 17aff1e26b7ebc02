package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

type stubFeedbackRepo struct {
	items map[string]*domain.FeedbackItem
}

func newStubFeedbackRepo() *stubFeedbackRepo {
	return &stubFeedbackRepo{items: make(map[string]*domain.FeedbackItem)}
}

func (r *stubFeedbackRepo) Insert(_ context.Context, item *domain.FeedbackItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *stubFeedbackRepo) FindByID(_ context.Context, id string) (*domain.FeedbackItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrFeedbackNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *stubFeedbackRepo) List(_ context.Context) ([]*domain.FeedbackItem, error) {
	var out []*domain.FeedbackItem
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *stubFeedbackRepo) ListByUser(_ context.Context, userID string) ([]*domain.FeedbackItem, error) {
	var out []*domain.FeedbackItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubFeedbackRepo) Update(_ context.Context, item *domain.FeedbackItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrFeedbackNotFound
	}
	r.items[item.ID] = item
	return nil
}

func feedbackInput() FeedbackInput {
	return FeedbackInput{
		UserID:      "cred_1",
		UserRole:    domain.RoleDoctor,
		UserName:    "jane",
		Category:    domain.FeedbackFeatureRequest,
		Title:       "Offline assessments",
		Description: "Assessments should queue while the clinic is offline.",
		Priority:    domain.PriorityHigh,
	}
}

func TestFeedbackService_Submit(t *testing.T) {
	svc := NewFeedbackService(newStubFeedbackRepo(), zerolog.Nop())

	item, err := svc.Submit(context.Background(), feedbackInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if item.Status != domain.FeedbackSubmitted {
		t.Fatalf("new feedback must start submitted, got %s", item.Status)
	}
	if item.Votes != 0 || item.VotedBy == nil {
		t.Fatalf("votes must start empty, got %+v", item)
	}
}

func TestFeedbackService_Respond(t *testing.T) {
	repo := newStubFeedbackRepo()
	svc := NewFeedbackService(repo, zerolog.Nop())

	item, err := svc.Submit(context.Background(), feedbackInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	updated, err := svc.Respond(context.Background(), item.ID, "cred_9", "Planned for Q4.", domain.FeedbackInProgress)
	if err != nil {
		t.Fatalf("Respond returned error: %v", err)
	}
	if updated.Status != domain.FeedbackInProgress || updated.AdminResponse != "Planned for Q4." {
		t.Fatalf("response not applied: %+v", updated)
	}
	if updated.AdminResponseBy != "cred_9" || updated.AdminResponseAt.IsZero() {
		t.Fatalf("response attribution missing: %+v", updated)
	}

	if _, err := svc.Respond(context.Background(), "missing", "cred_9", "x", domain.FeedbackResolved); err != domain.ErrFeedbackNotFound {
		t.Fatalf("expected ErrFeedbackNotFound, got %v", err)
	}
}

func TestFeedbackService_ToggleVote(t *testing.T) {
	repo := newStubFeedbackRepo()
	svc := NewFeedbackService(repo, zerolog.Nop())

	item, err := svc.Submit(context.Background(), feedbackInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	voted, err := svc.ToggleVote(context.Background(), item.ID, "cred_2")
	if err != nil {
		t.Fatalf("ToggleVote returned error: %v", err)
	}
	if voted.Votes != 1 {
		t.Fatalf("vote not counted: %d", voted.Votes)
	}

	retracted, err := svc.ToggleVote(context.Background(), item.ID, "cred_2")
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if retracted.Votes != 0 {
		t.Fatalf("vote not retracted: %d", retracted.Votes)
	}
}

func TestFeedbackService_Stats(t *testing.T) {
	repo := newStubFeedbackRepo()
	svc := NewFeedbackService(repo, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), feedbackInput()); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	bug := feedbackInput()
	bug.Category = domain.FeedbackBugReport
	bug.Priority = domain.PriorityCritical
	bug.UserID = "cred_2"
	if _, err := svc.Submit(context.Background(), bug); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.TotalFeedback != 2 {
		t.Fatalf("total: %d", stats.TotalFeedback)
	}
	if stats.ByCategory["feature_request"] != 1 || stats.ByCategory["bug_report"] != 1 {
		t.Fatalf("by category: %+v", stats.ByCategory)
	}
	if stats.ByStatus["submitted"] != 2 {
		t.Fatalf("by status: %+v", stats.ByStatus)
	}

	mine, err := svc.ListByUser(context.Background(), "cred_1")
	if err != nil || len(mine) != 1 {
		t.Fatalf("ListByUser: %v len=%d", err, len(mine))
	}
}
