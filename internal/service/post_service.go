package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/portfolioapi/internal/db"
	"github.com/portfolioapi/internal/repository"
)

const defaultPerPage = 10

// PostService implements the published post listing and detail lookup.
type PostService struct {
	posts          repository.PostRepository
	defaultPerPage int
	maxPerPage     int
}

// PaginationSettings 控制列表接口的 per_page 默认值与上限，MaxPerPage 为 0 表示不限制。
type PaginationSettings struct {
	DefaultPerPage int
	MaxPerPage     int
}

// PostListQuery 定义文章列表的查询条件。Page/PerPage 非正数时使用默认值。
type PostListQuery struct {
	Page     int
	PerPage  int
	Category string
	Search   string
}

// PostPage is one page of published posts.
type PostPage struct {
	Posts      []db.BlogPost
	Pagination Pagination
}

// NewPostService creates a PostService instance.
func NewPostService(posts repository.PostRepository, settings PaginationSettings) *PostService {
	if settings.DefaultPerPage <= 0 {
		settings.DefaultPerPage = defaultPerPage
	}
	return &PostService{
		posts:          posts,
		defaultPerPage: settings.DefaultPerPage,
		maxPerPage:     settings.MaxPerPage,
	}
}

// List returns published posts matching the query, newest first.
func (s *PostService) List(ctx context.Context, query PostListQuery) (*PostPage, error) {
	filter := repository.PostFilter{
		CategorySlug: strings.TrimSpace(query.Category),
		Search:       strings.TrimSpace(query.Search),
	}

	total, err := s.posts.CountPublished(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	pagination, offset := paginate(total, query.Page, s.perPage(query.PerPage))
	page := &PostPage{Posts: []db.BlogPost{}, Pagination: pagination}
	if total == 0 {
		return page, nil
	}

	posts, err := s.posts.ListPublished(ctx, filter, offset, pagination.PerPage)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	page.Posts = posts
	return page, nil
}

// Get 获取已发布文章并记录一次浏览，返回的 Views 已包含本次浏览。
func (s *PostService) Get(ctx context.Context, slug string) (*db.BlogPost, error) {
	post, err := s.posts.FindPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("find post %q: %w", slug, err)
	}

	if err := s.posts.IncrementViews(ctx, post.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("increment views for post %d: %w", post.ID, err)
	}
	post.Views++
	return post, nil
}

func (s *PostService) perPage(requested int) int {
	perPage := requested
	if perPage <= 0 {
		perPage = s.defaultPerPage
	}
	if s.maxPerPage > 0 && perPage > s.maxPerPage {
		perPage = s.maxPerPage
	}
	return perPage
}
