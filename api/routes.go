package api

import (
	"github.com/gin-gonic/gin"

	"github.com/lawflow/lawflow-backend/usecases"
)

func addRoutes(r *gin.Engine, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe(uc))

	r.POST("/caselogs", handlePostCaseLog(uc))
	r.GET("/caselogs", handleListCaseLogs(uc))

	r.POST("/upload-to-drive", handleUploadToDrive(uc))
}
