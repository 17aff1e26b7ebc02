package domain

import "time"

// FeedbackCategory classifies submitted feedback.
type FeedbackCategory string

const (
	FeedbackFeatureRequest FeedbackCategory = "feature_request"
	FeedbackBugReport      FeedbackCategory = "bug_report"
	FeedbackImprovement    FeedbackCategory = "improvement"
	FeedbackGeneral        FeedbackCategory = "general"
	FeedbackInventory      FeedbackCategory = "inventory"
	FeedbackUIUX           FeedbackCategory = "ui_ux"
)

// ParseFeedbackCategory validates a raw category string.
func ParseFeedbackCategory(s string) (FeedbackCategory, error) {
	switch FeedbackCategory(s) {
	case FeedbackFeatureRequest, FeedbackBugReport, FeedbackImprovement,
		FeedbackGeneral, FeedbackInventory, FeedbackUIUX:
		return FeedbackCategory(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// FeedbackStatus is the review lifecycle state of a feedback item.
type FeedbackStatus string

const (
	FeedbackSubmitted   FeedbackStatus = "submitted"
	FeedbackUnderReview FeedbackStatus = "under_review"
	FeedbackInProgress  FeedbackStatus = "in_progress"
	FeedbackResolved    FeedbackStatus = "resolved"
	FeedbackRejected    FeedbackStatus = "rejected"
)

// ParseFeedbackStatus validates a raw status string.
func ParseFeedbackStatus(s string) (FeedbackStatus, error) {
	switch FeedbackStatus(s) {
	case FeedbackSubmitted, FeedbackUnderReview, FeedbackInProgress,
		FeedbackResolved, FeedbackRejected:
		return FeedbackStatus(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// FeedbackPriority ranks feedback urgency.
type FeedbackPriority string

const (
	PriorityLow      FeedbackPriority = "low"
	PriorityMedium   FeedbackPriority = "medium"
	PriorityHigh     FeedbackPriority = "high"
	PriorityCritical FeedbackPriority = "critical"
)

// ParseFeedbackPriority validates a raw priority string.
func ParseFeedbackPriority(s string) (FeedbackPriority, error) {
	switch FeedbackPriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return FeedbackPriority(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// FeedbackItem is a platform improvement report submitted by staff.
type FeedbackItem struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	UserRole        Role             `json:"user_role"`
	UserName        string           `json:"user_name"`
	Category        FeedbackCategory `json:"category"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Priority        FeedbackPriority `json:"priority"`
	Status          FeedbackStatus   `json:"status"`
	AdminResponse   string           `json:"admin_response,omitempty"`
	AdminResponseBy string           `json:"admin_response_by,omitempty"`
	AdminResponseAt time.Time        `json:"admin_response_at,omitempty"`
	Votes           int              `json:"votes"`
	VotedBy         []string         `json:"voted_by"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// HasVoted reports whether the given user already upvoted this item.
func (f *FeedbackItem) HasVoted(userID string) bool {
	for _, id := range f.VotedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleVote adds the user's vote, or removes it if already present.
func (f *FeedbackItem) ToggleVote(userID string) {
	if f.HasVoted(userID) {
		kept := f.VotedBy[:0]
		for _, id := range f.VotedBy {
			if id != userID {
				kept = append(kept, id)
			}
		}
		f.VotedBy = kept
	} else {
		f.VotedBy = append(f.VotedBy, userID)
	}
	f.Votes = len(f.VotedBy)
}

// FeedbackStats aggregates feedback across the platform.
type FeedbackStats struct {
	TotalFeedback int            `json:"total_feedback"`
	ByCategory    map[string]int `json:"by_category"`
	ByStatus      map[string]int `json:"by_status"`
	ByPriority    map[string]int `json:"by_priority"`
}
