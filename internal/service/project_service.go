package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/portfolioapi/internal/db"
	"github.com/portfolioapi/internal/repository"
)

// ListedProjectStatuses 是项目列表对外展示的状态集合。
var ListedProjectStatuses = []string{db.ProjectStatusActive, db.ProjectStatusCompleted}

// ProjectService wraps project lookups.
type ProjectService struct {
	projects repository.ProjectRepository
}

// NewProjectService creates a ProjectService instance.
func NewProjectService(projects repository.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// List returns active and completed projects.
func (s *ProjectService) List(ctx context.Context) ([]db.Project, error) {
	projects, err := s.projects.ListByStatus(ctx, ListedProjectStatuses)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Get 按 slug 获取项目。详情不按状态过滤，归档项目也可以直接访问。
func (s *ProjectService) Get(ctx context.Context, slug string) (*db.Project, error) {
	project, err := s.projects.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project %q: %w", slug, err)
	}
	return project, nil
}
