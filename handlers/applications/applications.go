package applications

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fransrichy/NKFINANCIAL/models"
	"github.com/fransrichy/NKFINANCIAL/utils"
)

// Anti-automation gate shown on the application form; not a secret.
const securityAnswer = 8

const referenceAttempts = 3

var uploadDir = "uploads"

func pathOrNil(paths map[string]string, key string) *string {
	if p, ok := paths[key]; ok {
		return &p
	}
	return nil
}

// SubmitApplication handles loan-application submissions, including the
// three required document uploads.
func SubmitApplication(c *gin.Context) {
	if utils.ParseIntDefault(c.PostForm("security_answer")) != securityAnswer {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Security question answer is incorrect.",
		})
		return
	}

	fullName := utils.SanitizeText(c.PostForm("full_name"))
	idNumber := utils.SanitizeText(c.PostForm("id_number"))
	phone := utils.SanitizeText(c.PostForm("phone"))
	email := utils.SanitizeEmail(c.PostForm("email"))
	address := utils.SanitizeText(c.PostForm("address"))
	employment := utils.SanitizeText(c.PostForm("employment"))
	income := utils.ParseAmount(c.PostForm("income"))
	loanAmount := utils.ParseAmount(c.PostForm("loan_amount"))
	loanType := utils.SanitizeText(c.PostForm("loan_type"))
	loanReason := utils.SanitizeText(c.PostForm("loan_reason"))

	if fullName == "" || idNumber == "" || phone == "" || email == "" || address == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "All required fields must be filled.",
		})
		return
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Printf("Failed to create upload directory %s: %v", uploadDir, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Unable to store uploaded documents.",
		})
		return
	}

	stored, uploadErrors := processUploads(c, uploadDir)
	if len(uploadErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "File upload errors: " + strings.Join(uploadErrors, ", "),
		})
		return
	}

	app := models.LoanApplication{
		FullName:           fullName,
		IDNumber:           idNumber,
		Phone:              phone,
		Email:              email,
		Address:            address,
		EmploymentStatus:   employment,
		MonthlyIncome:      income,
		LoanAmount:         loanAmount,
		LoanType:           loanType,
		LoanReason:         loanReason,
		IDCopyPath:         pathOrNil(stored, "id_copy"),
		PayslipPath:        pathOrNil(stored, "payslip"),
		BankStatementPath:  pathOrNil(stored, "bank_statement"),
		AdditionalDocsPath: pathOrNil(stored, "additional_docs"),
	}

	var err error
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		app.ReferenceNumber = GenerateReferenceNumber()
		err = utils.DB.Create(&app).Error
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if err != nil {
		log.Printf("Failed to save loan application: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Database error: unable to save your application.",
		})
		return
	}

	utils.SendApplicationNotification(&app)
	utils.SendApplicantConfirmation(&app)

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"reference_number": app.ReferenceNumber,
		"application_id":   app.ID,
		"message":          "Application submitted successfully",
	})
}
