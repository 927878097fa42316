package migrations

import (
	"github.com/fransrichy/NKFINANCIAL/models"
	"github.com/fransrichy/NKFINANCIAL/utils"
)

func MigrateContactMessages() {
	utils.DB.AutoMigrate(&models.ContactMessage{})
}
