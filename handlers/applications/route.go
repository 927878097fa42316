package applications

import (
	"github.com/gin-gonic/gin"

	"github.com/fransrichy/NKFINANCIAL/config"
)

func RegisterApplicationRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg != nil && cfg.UploadDir != "" {
		uploadDir = cfg.UploadDir
	}
	r.POST("/submit-application", SubmitApplication)
}
