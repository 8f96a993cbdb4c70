package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListCategories 获取分类列表及已发布文章数
func (a *API) ListCategories(c *gin.Context) {
	rows, err := a.categories.List(c.Request.Context())
	if err != nil {
		a.internalError(c, "Failed to fetch categories", err)
		return
	}

	response := make([]categoryResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, newCategoryResponse(row))
	}
	c.JSON(http.StatusOK, gin.H{"categories": response})
}

// ListTags 获取标签列表及已发布文章数
func (a *API) ListTags(c *gin.Context) {
	rows, err := a.tags.List(c.Request.Context())
	if err != nil {
		a.internalError(c, "Failed to fetch tags", err)
		return
	}

	response := make([]tagResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, newTagResponse(row))
	}
	c.JSON(http.StatusOK, gin.H{"tags": response})
}
