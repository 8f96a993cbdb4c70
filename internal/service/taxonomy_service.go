package service

import (
	"context"
	"fmt"

	"github.com/portfolioapi/internal/repository"
)

// CategoryService lists categories.
type CategoryService struct {
	categories repository.CategoryRepository
}

// TagService lists tags.
type TagService struct {
	tags repository.TagRepository
}

// NewCategoryService creates a CategoryService instance.
func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// NewTagService creates a TagService instance.
func NewTagService(tags repository.TagRepository) *TagService {
	return &TagService{tags: tags}
}

// List returns every category with its published post count.
func (s *CategoryService) List(ctx context.Context) ([]repository.CategorySummary, error) {
	rows, err := s.categories.ListWithPublishedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return rows, nil
}

// List returns every tag with its published post count.
func (s *TagService) List(ctx context.Context) ([]repository.TagSummary, error) {
	rows, err := s.tags.ListWithPublishedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return rows, nil
}
