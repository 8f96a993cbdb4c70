package repository

import (
	"context"
	"fmt"

	"github.com/portfolioapi/internal/db"
	"github.com/portfolioapi/internal/observability"
	"gorm.io/gorm"
)

// PostFilter narrows the published post listing.
type PostFilter struct {
	CategorySlug string
	Search       string
}

// PostRepository defines the read operations on published blog posts plus
// the view counter update.
type PostRepository interface {
	CountPublished(ctx context.Context, filter PostFilter) (int64, error)
	ListPublished(ctx context.Context, filter PostFilter, offset, limit int) ([]db.BlogPost, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*db.BlogPost, error)
	IncrementViews(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(gdb *gorm.DB) PostRepository {
	return &postRepository{db: gdb}
}

func (r *postRepository) CountPublished(ctx context.Context, filter PostFilter) (total int64, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "CountPublished", "blog_posts")
	defer func() { observability.EndSpan(span, err) }()

	query := r.applyFilters(r.db.WithContext(ctx).Model(&db.BlogPost{}), filter)
	if err = query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *postRepository) ListPublished(ctx context.Context, filter PostFilter, offset, limit int) (posts []db.BlogPost, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "ListPublished", "blog_posts")
	defer func() { observability.EndSpan(span, err) }()

	query := r.db.WithContext(ctx).
		Model(&db.BlogPost{}).
		Preload("Category").
		Preload("Tags", orderTags)
	query = r.applyFilters(query, filter)

	// NULL published_at 排在最后，保证两种驱动下分页顺序一致
	if err = query.
		Order("blog_posts.published_at IS NULL").
		Order("blog_posts.published_at desc").
		Order("blog_posts.id desc").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) FindPublishedBySlug(ctx context.Context, slug string) (post *db.BlogPost, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "FindPublishedBySlug", "blog_posts")
	defer func() { observability.EndSpan(span, err) }()

	var found db.BlogPost
	if err = r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags", orderTags).
		Preload("Author").
		Where("blog_posts.slug = ? AND blog_posts.status = ?", slug, db.PostStatusPublished).
		First(&found).Error; err != nil {
		return nil, translateError(err)
	}
	return &found, nil
}

// IncrementViews bumps the counter in a single UPDATE so concurrent readers
// never lose an increment. updated_at is left untouched.
func (r *postRepository) IncrementViews(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "IncrementViews", "blog_posts")
	defer func() { observability.EndSpan(span, err) }()

	result := r.db.WithContext(ctx).
		Model(&db.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postRepository) applyFilters(query *gorm.DB, filter PostFilter) *gorm.DB {
	query = query.Where("blog_posts.status = ?", db.PostStatusPublished)

	if filter.CategorySlug != "" {
		subQuery := r.db.Model(&db.Category{}).
			Select("categories.id").
			Where("categories.slug = ?", filter.CategorySlug)
		query = query.Where("blog_posts.category_id IN (?)", subQuery)
	}

	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		like := caseInsensitiveLike(r.db)
		query = query.Where(
			fmt.Sprintf(`(blog_posts.title %[1]s ? ESCAPE '\' OR blog_posts.content %[1]s ? ESCAPE '\' OR blog_posts.excerpt %[1]s ? ESCAPE '\')`, like),
			pattern, pattern, pattern,
		)
	}

	return query
}

func orderTags(tx *gorm.DB) *gorm.DB {
	return tx.Order("tags.id asc")
}
