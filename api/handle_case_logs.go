package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lawflow/lawflow-backend/dto"
	"github.com/lawflow/lawflow-backend/usecases"
	"github.com/lawflow/lawflow-backend/utils"
)

func handlePostCaseLog(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateCaseLogBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}

		usecase := uc.NewCaseLogUseCase()
		err := usecase.CreateCaseLog(ctx, dto.AdaptCreateCaseLogAttributes(body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Case log added successfully"})
	}
}

func handleListCaseLogs(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewCaseLogUseCase()
		caseLogs, err := usecase.ListCaseLogs(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"caselogs": utils.Map(caseLogs, dto.AdaptCaseLogDto),
		})
	}
}
