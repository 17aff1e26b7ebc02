package domain

import (
	"fmt"
	"time"
)

// ResourceCategory classifies a shared resource in the library.
type ResourceCategory string

const (
	ResourceEducational ResourceCategory = "educational"
	ResourceGuidelines  ResourceCategory = "guidelines"
	ResourceForms       ResourceCategory = "forms"
	ResourceTraining    ResourceCategory = "training"
	ResourceResearch    ResourceCategory = "research"
	ResourcePolicies    ResourceCategory = "policies"
)

// ParseResourceCategory validates a raw category string.
func ParseResourceCategory(s string) (ResourceCategory, error) {
	switch ResourceCategory(s) {
	case ResourceEducational, ResourceGuidelines, ResourceForms,
		ResourceTraining, ResourceResearch, ResourcePolicies:
		return ResourceCategory(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// ResourceType is the media format of a resource.
type ResourceType string

const (
	ResourceDocument     ResourceType = "document"
	ResourceVideo        ResourceType = "video"
	ResourceImage        ResourceType = "image"
	ResourceLink         ResourceType = "link"
	ResourcePresentation ResourceType = "presentation"
)

// ParseResourceType validates a raw type string.
func ParseResourceType(s string) (ResourceType, error) {
	switch ResourceType(s) {
	case ResourceDocument, ResourceVideo, ResourceImage,
		ResourceLink, ResourcePresentation:
		return ResourceType(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// ResourceLanguage is the language a resource is written in.
type ResourceLanguage string

const (
	LanguageEnglish ResourceLanguage = "en"
	LanguageSwahili ResourceLanguage = "sw"
	LanguageBoth    ResourceLanguage = "both"
)

// ParseResourceLanguage validates a raw language string.
func ParseResourceLanguage(s string) (ResourceLanguage, error) {
	switch ResourceLanguage(s) {
	case LanguageEnglish, LanguageSwahili, LanguageBoth:
		return ResourceLanguage(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// ResourceStatus is the publication state of a resource.
type ResourceStatus string

const (
	ResourceActive        ResourceStatus = "active"
	ResourceArchived      ResourceStatus = "archived"
	ResourcePendingReview ResourceStatus = "pending_review"
)

// ResourceItem is one document, video or link in the shared library.
type ResourceItem struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Category       ResourceCategory `json:"category"`
	Type           ResourceType     `json:"type"`
	FileURL        string           `json:"file_url,omitempty"`
	FileName       string           `json:"file_name,omitempty"`
	FileSize       int64            `json:"file_size,omitempty"`
	DownloadCount  int              `json:"download_count"`
	UploadedBy     string           `json:"uploaded_by"`
	UploadedByRole Role             `json:"uploaded_by_role"`
	Tags           []string         `json:"tags"`
	IsPublic       bool             `json:"is_public"`
	Language       ResourceLanguage `json:"language"`
	Status         ResourceStatus   `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ResourceGroup bundles related resources under one name.
type ResourceGroup struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ResourceIDs   []string  `json:"resource_ids"`
	CreatedBy     string    `json:"created_by"`
	CreatedByRole Role      `json:"created_by_role"`
	IsPublic      bool      `json:"is_public"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ResourceStats aggregates the library.
type ResourceStats struct {
	TotalResources int            `json:"total_resources"`
	TotalGroups    int            `json:"total_groups"`
	TotalDownloads int            `json:"total_downloads"`
	ByCategory     map[string]int `json:"by_category"`
	ByType         map[string]int `json:"by_type"`
}

// FormatFileSize renders a byte count in the unit shown in resource listings.
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d Bytes", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %s", float64(bytes)/float64(div), []string{"KB", "MB", "GB"}[exp])
}
