package handler

import (
	"github.com/portfolioapi/internal/db"
	"github.com/portfolioapi/internal/repository"
	"github.com/portfolioapi/internal/service"
)

type categoryRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type categoryDetailRef struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type tagRef struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

type authorRef struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type blogPostSummary struct {
	ID            uint         `json:"id"`
	Title         string       `json:"title"`
	Slug          string       `json:"slug"`
	Excerpt       string       `json:"excerpt"`
	FeaturedImage *string      `json:"featured_image"`
	Category      *categoryRef `json:"category"`
	Tags          []tagRef     `json:"tags"`
	PublishedAt   *string      `json:"published_at"`
	ReadingTime   int          `json:"reading_time"`
	Views         uint64       `json:"views"`
}

type blogPostDetail struct {
	ID            uint               `json:"id"`
	Title         string             `json:"title"`
	Slug          string             `json:"slug"`
	Content       string             `json:"content"`
	ContentHTML   string             `json:"content_html"`
	Excerpt       string             `json:"excerpt"`
	FeaturedImage *string            `json:"featured_image"`
	Category      *categoryDetailRef `json:"category"`
	Tags          []tagRef           `json:"tags"`
	Author        authorRef          `json:"author"`
	PublishedAt   *string            `json:"published_at"`
	UpdatedAt     string             `json:"updated_at"`
	ReadingTime   int                `json:"reading_time"`
	Views         uint64             `json:"views"`
}

type paginationResponse struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalPosts  int64 `json:"total_posts"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

type blogPostListResponse struct {
	Posts      []blogPostSummary  `json:"posts"`
	Pagination paginationResponse `json:"pagination"`
}

type projectResponse struct {
	ID               uint     `json:"id"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Image            string   `json:"image"`
	GithubURL        string   `json:"github_url"`
	LiveURL          string   `json:"live_url"`
	Technologies     []string `json:"technologies"`
	Status           string   `json:"status"`
	Featured         bool     `json:"featured"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

type categoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	PostCount   int64  `json:"post_count"`
}

type tagResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Color     string `json:"color"`
	PostCount int64  `json:"post_count"`
}

func newTagRefs(tags []db.Tag) []tagRef {
	refs := make([]tagRef, 0, len(tags))
	for _, tag := range tags {
		refs = append(refs, tagRef{Name: tag.Name, Slug: tag.Slug, Color: tag.Color})
	}
	return refs
}

func newBlogPostSummary(post db.BlogPost) blogPostSummary {
	summary := blogPostSummary{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.Slug,
		Excerpt:       post.Excerpt,
		FeaturedImage: post.FeaturedImage,
		Tags:          newTagRefs(post.Tags),
		PublishedAt:   isoTimePtr(post.PublishedAt),
		ReadingTime:   post.ReadingTime,
		Views:         post.Views,
	}
	if post.Category != nil {
		summary.Category = &categoryRef{Name: post.Category.Name, Slug: post.Category.Slug}
	}
	return summary
}

func newBlogPostDetail(post db.BlogPost, contentHTML string) blogPostDetail {
	detail := blogPostDetail{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.Slug,
		Content:       post.Content,
		ContentHTML:   contentHTML,
		Excerpt:       post.Excerpt,
		FeaturedImage: post.FeaturedImage,
		Tags:          newTagRefs(post.Tags),
		Author: authorRef{
			Username:  post.Author.Username,
			FirstName: post.Author.FirstName,
			LastName:  post.Author.LastName,
		},
		PublishedAt: isoTimePtr(post.PublishedAt),
		UpdatedAt:   isoTime(post.UpdatedAt),
		ReadingTime: post.ReadingTime,
		Views:       post.Views,
	}
	if post.Category != nil {
		detail.Category = &categoryDetailRef{
			Name:        post.Category.Name,
			Slug:        post.Category.Slug,
			Description: post.Category.Description,
		}
	}
	return detail
}

func newBlogPostListResponse(page *service.PostPage) blogPostListResponse {
	posts := make([]blogPostSummary, 0, len(page.Posts))
	for _, post := range page.Posts {
		posts = append(posts, newBlogPostSummary(post))
	}
	return blogPostListResponse{
		Posts: posts,
		Pagination: paginationResponse{
			CurrentPage: page.Pagination.CurrentPage,
			TotalPages:  page.Pagination.TotalPages,
			TotalPosts:  page.Pagination.TotalPosts,
			HasNext:     page.Pagination.HasNext,
			HasPrevious: page.Pagination.HasPrevious,
		},
	}
}

func newProjectResponse(project db.Project) projectResponse {
	technologies := []string(project.Technologies)
	if technologies == nil {
		technologies = []string{}
	}
	return projectResponse{
		ID:               project.ID,
		Title:            project.Title,
		Slug:             project.Slug,
		Description:      project.Description,
		ShortDescription: project.ShortDescription,
		Image:            project.Image,
		GithubURL:        project.GithubURL,
		LiveURL:          project.LiveURL,
		Technologies:     technologies,
		Status:           project.Status,
		Featured:         project.Featured,
		CreatedAt:        isoTime(project.CreatedAt),
		UpdatedAt:        isoTime(project.UpdatedAt),
	}
}

func newCategoryResponse(row repository.CategorySummary) categoryResponse {
	return categoryResponse{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		PostCount:   row.PostCount,
	}
}

func newTagResponse(row repository.TagSummary) tagResponse {
	return tagResponse{
		ID:        row.ID,
		Name:      row.Name,
		Slug:      row.Slug,
		Color:     row.Color,
		PostCount: row.PostCount,
	}
}
