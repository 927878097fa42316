package migrations

import (
	"github.com/fransrichy/NKFINANCIAL/models"
	"github.com/fransrichy/NKFINANCIAL/utils"
)

func MigrateLoanApplications() {
	utils.DB.AutoMigrate(&models.LoanApplication{})
}
