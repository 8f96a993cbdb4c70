package repository

import (
	"context"

	"github.com/portfolioapi/internal/db"
	"github.com/portfolioapi/internal/observability"
	"gorm.io/gorm"
)

// ProjectRepository defines project lookups.
type ProjectRepository interface {
	ListByStatus(ctx context.Context, statuses []string) ([]db.Project, error)
	FindBySlug(ctx context.Context, slug string) (*db.Project, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(gdb *gorm.DB) ProjectRepository {
	return &projectRepository{db: gdb}
}

// ListByStatus returns featured projects first, then newest first.
func (r *projectRepository) ListByStatus(ctx context.Context, statuses []string) (projects []db.Project, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "ListByStatus", "projects")
	defer func() { observability.EndSpan(span, err) }()

	projects = []db.Project{}
	if len(statuses) == 0 {
		return projects, nil
	}

	if err = r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("featured desc").
		Order("created_at desc").
		Order("id desc").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindBySlug 按 slug 查询项目，不做状态过滤。
func (r *projectRepository) FindBySlug(ctx context.Context, slug string) (project *db.Project, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "FindBySlug", "projects")
	defer func() { observability.EndSpan(span, err) }()

	var found db.Project
	if err = r.db.WithContext(ctx).Where("slug = ?", slug).First(&found).Error; err != nil {
		return nil, translateError(err)
	}
	return &found, nil
}
