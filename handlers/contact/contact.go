package contact

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fransrichy/NKFINANCIAL/models"
	"github.com/fransrichy/NKFINANCIAL/utils"
)

// SubmitContactForm handles contact-message submissions from the website.
func SubmitContactForm(c *gin.Context) {
	fullName := utils.SanitizeText(c.PostForm("full_name"))
	phone := utils.SanitizeText(c.PostForm("phone"))
	email := utils.SanitizeEmail(c.PostForm("email"))
	subject := utils.SanitizeText(c.PostForm("subject"))
	message := utils.SanitizeText(c.PostForm("message"))

	if fullName == "" || phone == "" || email == "" || subject == "" || message == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "All required fields must be filled.",
		})
		return
	}

	if !utils.ValidEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please enter a valid email address.",
		})
		return
	}

	msg := models.ContactMessage{
		FullName: fullName,
		Phone:    phone,
		Email:    email,
		Subject:  subject,
		Message:  message,
	}

	if err := utils.DB.Create(&msg).Error; err != nil {
		log.Printf("Failed to save contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Database error: unable to save your message.",
		})
		return
	}

	utils.SendContactNotification(&msg)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message sent successfully",
	})
}
