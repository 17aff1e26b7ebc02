package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/ports"
)

// ResourceInput is a new resource upload.
type ResourceInput struct {
	Title          string
	Description    string
	Category       domain.ResourceCategory
	Type           domain.ResourceType
	FileURL        string
	FileName       string
	FileSize       int64
	Tags           []string
	IsPublic       bool
	Language       domain.ResourceLanguage
	UploadedBy     string
	UploadedByRole domain.Role
}

// ResourceGroupInput is a new bundle of related resources.
type ResourceGroupInput struct {
	Name          string
	Description   string
	ResourceIDs   []string
	IsPublic      bool
	CreatedBy     string
	CreatedByRole domain.Role
}

// ResourceService manages the shared library of guidelines, training
// material, forms and patient education content.
type ResourceService struct {
	repo   ports.ResourceRepository
	logger zerolog.Logger
}

func NewResourceService(repo ports.ResourceRepository, logger zerolog.Logger) *ResourceService {
	return &ResourceService{repo: repo, logger: logger}
}

// Add stores a new resource in the active state with a zero download count.
func (s *ResourceService) Add(ctx context.Context, input ResourceInput) (*domain.ResourceItem, error) {
	now := time.Now().UTC()
	item := &domain.ResourceItem{
		ID:             generateID(),
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		Type:           input.Type,
		FileURL:        input.FileURL,
		FileName:       input.FileName,
		FileSize:       input.FileSize,
		DownloadCount:  0,
		UploadedBy:     input.UploadedBy,
		UploadedByRole: input.UploadedByRole,
		Tags:           input.Tags,
		IsPublic:       input.IsPublic,
		Language:       input.Language,
		Status:         domain.ResourceActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("resource_id", item.ID).
		Str("category", string(item.Category)).
		Str("uploaded_by", item.UploadedBy).
		Msg("resource added")

	return item, nil
}

// AddGroup stores a new resource group.
func (s *ResourceService) AddGroup(ctx context.Context, input ResourceGroupInput) (*domain.ResourceGroup, error) {
	now := time.Now().UTC()
	group := &domain.ResourceGroup{
		ID:            generateID(),
		Name:          input.Name,
		Description:   input.Description,
		ResourceIDs:   input.ResourceIDs,
		CreatedBy:     input.CreatedBy,
		CreatedByRole: input.CreatedByRole,
		IsPublic:      input.IsPublic,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if group.ResourceIDs == nil {
		group.ResourceIDs = []string{}
	}
	if err := s.repo.InsertGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// List returns all resources.
func (s *ResourceService) List(ctx context.Context) ([]*domain.ResourceItem, error) {
	return s.repo.List(ctx)
}

// ListGroups returns all resource groups.
func (s *ResourceService) ListGroups(ctx context.Context) ([]*domain.ResourceGroup, error) {
	return s.repo.ListGroups(ctx)
}

// Search filters active resources by a free-text query over title,
// description and tags, optionally restricted to one category. An empty
// category (or "all") matches every category.
func (s *ResourceService) Search(ctx context.Context, query, category string) ([]*domain.ResourceItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(query)
	matched := make([]*domain.ResourceItem, 0, len(items))
	for _, item := range items {
		if item.Status != domain.ResourceActive {
			continue
		}
		if category != "" && category != "all" && string(item.Category) != category {
			continue
		}
		if term != "" && !matchesResource(item, term) {
			continue
		}
		matched = append(matched, item)
	}
	return matched, nil
}

func matchesResource(item *domain.ResourceItem, term string) bool {
	if strings.Contains(strings.ToLower(item.Title), term) ||
		strings.Contains(strings.ToLower(item.Description), term) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// RecordDownload increments the resource's download counter.
func (s *ResourceService) RecordDownload(ctx context.Context, id string) (*domain.ResourceItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.DownloadCount++
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Stats aggregates the library by category and type.
func (s *ResourceService) Stats(ctx context.Context) (*domain.ResourceStats, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.repo.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.ResourceStats{
		TotalGroups: len(groups),
		ByCategory:  make(map[string]int),
		ByType:      make(map[string]int),
	}
	for _, item := range items {
		stats.TotalResources++
		stats.TotalDownloads += item.DownloadCount
		stats.ByCategory[string(item.Category)]++
		stats.ByType[string(item.Type)]++
	}
	return stats, nil
}
