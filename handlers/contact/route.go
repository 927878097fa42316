package contact

import "github.com/gin-gonic/gin"

func RegisterContactRoutes(r *gin.Engine) {
	r.POST("/contact-form", SubmitContactForm)
}
