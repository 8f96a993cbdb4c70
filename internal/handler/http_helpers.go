package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// internalError 记录真实错误，客户端只看到通用提示。
func (a *API) internalError(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	a.logger.ErrorContext(c.Request.Context(), message,
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	respondError(c, http.StatusInternalServerError, message)
}

// parsePositiveInt returns fallback unless value is a positive integer.
func parsePositiveInt(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func isoTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := isoTime(*t)
	return &formatted
}
