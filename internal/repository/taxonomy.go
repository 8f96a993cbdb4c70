package repository

import (
	"context"

	"github.com/portfolioapi/internal/db"
	"github.com/portfolioapi/internal/observability"
	"gorm.io/gorm"
)

// CategorySummary 描述分类及其已发布文章数量
type CategorySummary struct {
	ID          uint
	Name        string
	Slug        string
	Description string
	PostCount   int64
}

// TagSummary 描述标签及其已发布文章数量
type TagSummary struct {
	ID        uint
	Name      string
	Slug      string
	Color     string
	PostCount int64
}

// CategoryRepository lists categories with published post counts.
type CategoryRepository interface {
	ListWithPublishedCount(ctx context.Context) ([]CategorySummary, error)
}

// TagRepository lists tags with published post counts.
type TagRepository interface {
	ListWithPublishedCount(ctx context.Context) ([]TagSummary, error)
}

type categoryRepository struct {
	db *gorm.DB
}

type tagRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(gdb *gorm.DB) CategoryRepository {
	return &categoryRepository{db: gdb}
}

// NewTagRepository creates a new tag repository
func NewTagRepository(gdb *gorm.DB) TagRepository {
	return &tagRepository{db: gdb}
}

// ListWithPublishedCount returns every category; draft posts do not count.
func (r *categoryRepository) ListWithPublishedCount(ctx context.Context) (rows []CategorySummary, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "ListWithPublishedCount", "categories")
	defer func() { observability.EndSpan(span, err) }()

	rows = []CategorySummary{}
	if err = r.db.WithContext(ctx).
		Table("categories").
		Select("categories.id, categories.name, categories.slug, categories.description, COUNT(blog_posts.id) AS post_count").
		Joins("LEFT JOIN blog_posts ON blog_posts.category_id = categories.id AND blog_posts.status = ?", db.PostStatusPublished).
		Group("categories.id, categories.name, categories.slug, categories.description").
		Order("categories.name asc").
		Order("categories.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListWithPublishedCount returns every tag; draft posts do not count.
func (r *tagRepository) ListWithPublishedCount(ctx context.Context) (rows []TagSummary, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "ListWithPublishedCount", "tags")
	defer func() { observability.EndSpan(span, err) }()

	rows = []TagSummary{}
	if err = r.db.WithContext(ctx).
		Table("tags").
		Select("tags.id, tags.name, tags.slug, tags.color, COUNT(blog_posts.id) AS post_count").
		Joins("LEFT JOIN blog_post_tags ON blog_post_tags.tag_id = tags.id").
		Joins("LEFT JOIN blog_posts ON blog_posts.id = blog_post_tags.blog_post_id AND blog_posts.status = ?", db.PostStatusPublished).
		Group("tags.id, tags.name, tags.slug, tags.color").
		Order("tags.name asc").
		Order("tags.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
