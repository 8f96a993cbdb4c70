package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/portfolioapi/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestProjectsListAndDetailAsymmetry(t *testing.T) {
	api, gdb := setupTestDB(t)
	created := time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)

	projects := []db.Project{
		{Title: "Portfolio", Slug: "portfolio", Status: db.ProjectStatusActive, Featured: true,
			Technologies: datatypes.JSONSlice[string]{"Next.js", "Django", "Tailwind"},
			GithubURL:    "https://github.com/example/portfolio", CreatedAt: created, UpdatedAt: created},
		{Title: "CLI", Slug: "cli", Status: db.ProjectStatusCompleted, CreatedAt: created.Add(time.Hour), UpdatedAt: created},
		{Title: "Legacy", Slug: "legacy", Status: db.ProjectStatusArchived, CreatedAt: created, UpdatedAt: created},
	}
	require.NoError(t, gdb.Create(&projects).Error)
	r := newTestEngine(api)

	w := performRequest(t, r, http.MethodGet, "/projects", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Projects []projectResponse `json:"projects"`
	}
	decodeBody(t, w, &list)
	require.Len(t, list.Projects, 2)
	assert.Equal(t, "portfolio", list.Projects[0].Slug)
	assert.Equal(t, []string{"Next.js", "Django", "Tailwind"}, list.Projects[0].Technologies)
	assert.Equal(t, "2024-02-01T12:00:00Z", list.Projects[0].CreatedAt)
	assert.Equal(t, "cli", list.Projects[1].Slug)
	assert.Equal(t, []string{}, list.Projects[1].Technologies)

	w = performRequest(t, r, http.MethodGet, "/projects/legacy", "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail projectResponse
	decodeBody(t, w, &detail)
	assert.Equal(t, "archived", detail.Status)

	w = performRequest(t, r, http.MethodGet, "/projects/unknown", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, w.Body.String())
}

func TestProjectsEmptyList(t *testing.T) {
	api, _ := setupTestDB(t)

	w := performRequest(t, newTestEngine(api), http.MethodGet, "/projects", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"projects":[]}`, w.Body.String())
}
