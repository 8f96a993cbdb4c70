package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/portfolioapi/internal/db"
	"github.com/portfolioapi/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPostServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:post-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

func publishedPosts(n int) []db.BlogPost {
	posts := make([]db.BlogPost, 0, n)
	for i := 1; i <= n; i++ {
		posts = append(posts, db.BlogPost{
			ID:     uint(i),
			Title:  fmt.Sprintf("Post %d", i),
			Slug:   fmt.Sprintf("post-%d", i),
			Status: db.PostStatusPublished,
		})
	}
	return posts
}

func TestPostService_ListPaginates(t *testing.T) {
	repo := &fakePostRepository{posts: publishedPosts(25)}
	svc := NewPostService(repo, PaginationSettings{})

	page, err := svc.List(context.Background(), PostListQuery{Page: 3, PerPage: 10})
	require.NoError(t, err)

	assert.Len(t, page.Posts, 5)
	assert.Equal(t, 20, repo.lastOffset)
	assert.Equal(t, 10, repo.lastLimit)
	assert.Equal(t, Pagination{CurrentPage: 3, PerPage: 10, TotalPages: 3, TotalPosts: 25, HasNext: false, HasPrevious: true}, page.Pagination)
}

func TestPostService_ListClampsOutOfRangePage(t *testing.T) {
	repo := &fakePostRepository{posts: publishedPosts(12)}
	svc := NewPostService(repo, PaginationSettings{DefaultPerPage: 5})

	page, err := svc.List(context.Background(), PostListQuery{Page: 40})
	require.NoError(t, err)

	assert.Equal(t, 3, page.Pagination.CurrentPage)
	assert.Equal(t, 5, page.Pagination.PerPage)
	assert.Len(t, page.Posts, 2)
}

func TestPostService_ListCapsPerPage(t *testing.T) {
	repo := &fakePostRepository{posts: publishedPosts(30)}
	svc := NewPostService(repo, PaginationSettings{DefaultPerPage: 10, MaxPerPage: 20})

	page, err := svc.List(context.Background(), PostListQuery{PerPage: 500})
	require.NoError(t, err)
	assert.Equal(t, 20, page.Pagination.PerPage)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestPostService_ListEmptySkipsQuery(t *testing.T) {
	repo := &fakePostRepository{}
	svc := NewPostService(repo, PaginationSettings{})

	page, err := svc.List(context.Background(), PostListQuery{Category: " missing ", Search: "  "})
	require.NoError(t, err)

	assert.NotNil(t, page.Posts)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 0, repo.listCalls)
	assert.Equal(t, Pagination{CurrentPage: 1, PerPage: 10, TotalPages: 0, TotalPosts: 0}, page.Pagination)
	assert.Equal(t, repository.PostFilter{CategorySlug: "missing"}, repo.lastFilter)
}

func TestPostService_ListWrapsStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewPostService(&fakePostRepository{countErr: storeErr}, PaginationSettings{})

	_, err := svc.List(context.Background(), PostListQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestPostService_GetCountsView(t *testing.T) {
	posts := publishedPosts(1)
	posts[0].Views = 9
	repo := &fakePostRepository{posts: posts}
	svc := NewPostService(repo, PaginationSettings{})

	post, err := svc.Get(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), post.Views)
	assert.Equal(t, 1, repo.increments[1])
}

func TestPostService_GetHidesUnpublished(t *testing.T) {
	posts := publishedPosts(1)
	posts[0].Status = db.PostStatusDraft
	repo := &fakePostRepository{posts: posts}
	svc := NewPostService(repo, PaginationSettings{})

	_, err := svc.Get(context.Background(), "post-1")
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.Empty(t, repo.increments)

	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostService_GetIncrementFailure(t *testing.T) {
	storeErr := errors.New("read-only transaction")
	svc := NewPostService(&fakePostRepository{posts: publishedPosts(1), incrErr: storeErr}, PaginationSettings{})

	_, err := svc.Get(context.Background(), "post-1")
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrPostNotFound)
}

func TestPostService_SequentialDetailFetchesAddTwoViews(t *testing.T) {
	gdb := setupPostServiceTestDB(t)
	svc := NewPostService(repository.NewPostRepository(gdb), PaginationSettings{})

	author := db.User{Username: "writer"}
	require.NoError(t, gdb.Create(&author).Error)
	now := time.Now().UTC()
	post := db.BlogPost{Title: "Hello", Slug: "hello", Status: db.PostStatusPublished, AuthorID: author.ID, PublishedAt: &now, Views: 3}
	require.NoError(t, gdb.Create(&post).Error)

	first, err := svc.Get(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), first.Views)

	second, err := svc.Get(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), second.Views)

	var stored db.BlogPost
	require.NoError(t, gdb.First(&stored, post.ID).Error)
	assert.Equal(t, uint64(5), stored.Views)
}

func TestPostService_ListAgainstStore(t *testing.T) {
	gdb := setupPostServiceTestDB(t)
	svc := NewPostService(repository.NewPostRepository(gdb), PaginationSettings{})

	author := db.User{Username: "writer"}
	require.NoError(t, gdb.Create(&author).Error)
	for i := 1; i <= 3; i++ {
		ts := time.Date(2024, time.March, i, 0, 0, 0, 0, time.UTC)
		post := db.BlogPost{Title: fmt.Sprintf("Go tip %d", i), Slug: fmt.Sprintf("tip-%d", i), Status: db.PostStatusPublished, AuthorID: author.ID, PublishedAt: &ts}
		require.NoError(t, gdb.Create(&post).Error)
	}
	draft := db.BlogPost{Title: "Go tip draft", Slug: "tip-draft", Status: db.PostStatusDraft, AuthorID: author.ID}
	require.NoError(t, gdb.Create(&draft).Error)

	page, err := svc.List(context.Background(), PostListQuery{Page: 2, PerPage: 2, Search: "GO TIP"})
	require.NoError(t, err)

	require.Len(t, page.Posts, 1)
	assert.Equal(t, "tip-1", page.Posts[0].Slug)
	assert.Equal(t, int64(3), page.Pagination.TotalPosts)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.False(t, page.Pagination.HasNext)
	assert.True(t, page.Pagination.HasPrevious)
}

func TestPostService_ListHugePerPageReturnsWholeResult(t *testing.T) {
	gdb := setupPostServiceTestDB(t)
	svc := NewPostService(repository.NewPostRepository(gdb), PaginationSettings{})

	author := db.User{Username: "writer"}
	require.NoError(t, gdb.Create(&author).Error)
	for i := 1; i <= 3; i++ {
		ts := time.Date(2024, time.April, i, 0, 0, 0, 0, time.UTC)
		post := db.BlogPost{Title: fmt.Sprintf("Note %d", i), Slug: fmt.Sprintf("note-%d", i), Status: db.PostStatusPublished, AuthorID: author.ID, PublishedAt: &ts}
		require.NoError(t, gdb.Create(&post).Error)
	}

	page, err := svc.List(context.Background(), PostListQuery{Page: 1, PerPage: math.MaxInt})
	require.NoError(t, err)

	assert.Len(t, page.Posts, 3)
	assert.Equal(t, "note-3", page.Posts[0].Slug)
	assert.Equal(t, Pagination{CurrentPage: 1, PerPage: math.MaxInt, TotalPages: 1, TotalPosts: 3}, page.Pagination)
}
