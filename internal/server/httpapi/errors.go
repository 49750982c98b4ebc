package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reomoon/memo/internal/common"
)

// writeError maps service errors to status codes. Server-side failures are
// logged and answered with fallback so upstream details stay out of the
// response.
func (h *handlers) writeError(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	message := fallback

	switch {
	case errors.Is(err, common.ErrorValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrorUnauthorized):
		status, message = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, common.ErrorNotConfigured):
		message = err.Error()
	}

	if status == http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), fallback, "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(status, gin.H{"error": message})
}
