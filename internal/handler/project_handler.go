package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolioapi/internal/service"
)

// ListProjects 获取进行中与已完成的项目
func (a *API) ListProjects(c *gin.Context) {
	projects, err := a.projects.List(c.Request.Context())
	if err != nil {
		a.internalError(c, "Failed to fetch projects", err)
		return
	}

	response := make([]projectResponse, 0, len(projects))
	for _, project := range projects {
		response = append(response, newProjectResponse(project))
	}
	c.JSON(http.StatusOK, gin.H{"projects": response})
}

// GetProject 获取项目详情
func (a *API) GetProject(c *gin.Context) {
	project, err := a.projects.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "Project not found")
			return
		}
		a.internalError(c, "Failed to fetch project", err)
		return
	}

	c.JSON(http.StatusOK, newProjectResponse(*project))
}
