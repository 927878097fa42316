package models

import "time"

type LoanApplication struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	ReferenceNumber  string  `gorm:"size:20;uniqueIndex;not null" json:"reference_number"`
	FullName         string  `gorm:"not null" json:"full_name"`
	IDNumber         string  `gorm:"column:id_number;not null" json:"id_number"`
	Phone            string  `gorm:"not null" json:"phone"`
	Email            string  `gorm:"not null" json:"email"`
	Address          string  `gorm:"not null" json:"address"`
	EmploymentStatus string  `json:"employment_status"`
	MonthlyIncome    float64 `json:"monthly_income"`
	LoanAmount       float64 `json:"loan_amount"`
	LoanType         string  `json:"loan_type"`
	LoanReason       string  `gorm:"type:text" json:"loan_reason"`

	// Paths of documents stored under the upload directory; the rows only
	// reference the files, they do not own them.
	IDCopyPath         *string   `gorm:"column:id_copy_path" json:"id_copy_path"`
	PayslipPath        *string   `gorm:"column:payslip_path" json:"payslip_path"`
	BankStatementPath  *string   `gorm:"column:bank_statement_path" json:"bank_statement_path"`
	AdditionalDocsPath *string   `gorm:"column:additional_docs_path" json:"additional_docs_path"`
	CreatedAt          time.Time `json:"created_at"`
}

func (LoanApplication) TableName() string {
	return "loan_applications"
}
