package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/lawflow/lawflow-backend/models"
	"github.com/lawflow/lawflow-backend/utils"
)

// presentError translates domain errors into the API's response shapes.
// Internal detail (stack traces, provider error bodies) is logged and
// reported, never sent to the caller.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.AttachmentRelayError):
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload to Google Drive"})
	case errors.Is(err, models.PersistenceError):
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	default:
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
	return true
}
