package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lawflow/lawflow-backend/dto"
	"github.com/lawflow/lawflow-backend/usecases"
)

func handleUploadToDrive(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.UploadAttachmentBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file details"})
			return
		}

		usecase := uc.NewAttachmentUseCase()
		file, err := usecase.UploadAttachment(ctx, dto.AdaptAttachmentUploadRequest(body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptDriveFileDto("File uploaded successfully", file))
	}
}
