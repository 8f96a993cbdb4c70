package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolioapi/internal/service"
)

// ListBlogPosts 获取已发布文章列表，支持分类、搜索与分页
func (a *API) ListBlogPosts(c *gin.Context) {
	query := service.PostListQuery{
		Page:     parsePositiveInt(c.Query("page"), 1),
		PerPage:  parsePositiveInt(c.Query("per_page"), 0),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	page, err := a.posts.List(c.Request.Context(), query)
	if err != nil {
		a.internalError(c, "Failed to fetch blog posts", err)
		return
	}

	c.JSON(http.StatusOK, newBlogPostListResponse(page))
}

// GetBlogPost 获取文章详情并计数一次浏览
func (a *API) GetBlogPost(c *gin.Context) {
	post, err := a.posts.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		a.internalError(c, "Failed to fetch blog post", err)
		return
	}

	if a.metrics != nil {
		a.metrics.PostViews.Inc()
	}

	contentHTML, err := renderMarkdown(post.Content)
	if err != nil {
		a.logger.WarnContext(c.Request.Context(), "render post markdown", "post_id", post.ID, "error", err)
	}

	c.JSON(http.StatusOK, newBlogPostDetail(*post, contentHTML))
}
