package utils

import (
	"bytes"
	"log"
	"text/template"
	"time"

	"github.com/fransrichy/NKFINANCIAL/models"
)

// Field values are HTML-escaped by the sanitizer before they reach the
// models, so the templates substitute them as-is; html/template would
// escape them a second time.

const adminEmailStyle = `
        <style>
            body { font-family: Arial, sans-serif; }
            .container { max-width: 600px; margin: 0 auto; padding: 20px; }
            .header { background: #1a5276; color: white; padding: 20px; text-align: center; }
            .content { padding: 20px; background: #f9f9f9; }
            .field { margin-bottom: 10px; }
            .field-label { font-weight: bold; color: #1a5276; }
        </style>`

var contactAdminTmpl = template.Must(template.New("contactAdmin").Parse(`
    <html>
    <head>
        <title>New Contact Form Submission</title>` + adminEmailStyle + `
    </head>
    <body>
        <div class='container'>
            <div class='header'>
                <h1>New Contact Form Submission</h1>
            </div>
            <div class='content'>
                <div class='field'><span class='field-label'>Full Name:</span> {{.Message.FullName}}</div>
                <div class='field'><span class='field-label'>Phone:</span> {{.Message.Phone}}</div>
                <div class='field'><span class='field-label'>Email:</span> {{.Message.Email}}</div>
                <div class='field'><span class='field-label'>Subject:</span> {{.Message.Subject}}</div>
                <div class='field'><span class='field-label'>Message:</span> {{.Message.Message}}</div>
                <div class='field'><span class='field-label'>Submission Date:</span> {{.Date}}</div>
                <div class='field'><span class='field-label'>Message ID:</span> {{.Message.ID}}</div>
            </div>
        </div>
    </body>
    </html>`))

var applicationAdminTmpl = template.Must(template.New("applicationAdmin").Parse(`
    <html>
    <head>
        <title>New Loan Application</title>` + adminEmailStyle + `
    </head>
    <body>
        <div class='container'>
            <div class='header'>
                <h1>New Loan Application Received</h1>
            </div>
            <div class='content'>
                <div class='field'><span class='field-label'>Reference Number:</span> {{.App.ReferenceNumber}}</div>
                <div class='field'><span class='field-label'>Full Name:</span> {{.App.FullName}}</div>
                <div class='field'><span class='field-label'>ID/Passport Number:</span> {{.App.IDNumber}}</div>
                <div class='field'><span class='field-label'>Phone:</span> {{.App.Phone}}</div>
                <div class='field'><span class='field-label'>Email:</span> {{.App.Email}}</div>
                <div class='field'><span class='field-label'>Address:</span> {{.App.Address}}</div>
                <div class='field'><span class='field-label'>Employment Status:</span> {{.App.EmploymentStatus}}</div>
                <div class='field'><span class='field-label'>Monthly Income:</span> N$ {{.App.MonthlyIncome}}</div>
                <div class='field'><span class='field-label'>Loan Amount Requested:</span> N$ {{.App.LoanAmount}}</div>
                <div class='field'><span class='field-label'>Loan Type:</span> {{.App.LoanType}}</div>
                <div class='field'><span class='field-label'>Reason for Loan:</span> {{.App.LoanReason}}</div>
                <div class='field'><span class='field-label'>Application Date:</span> {{.Date}}</div>
                <div class='field'><span class='field-label'>Application ID:</span> {{.App.ID}}</div>
            </div>
        </div>
    </body>
    </html>`))

var applicantConfirmationTmpl = template.Must(template.New("applicantConfirmation").Parse(`
    <html>
    <head>
        <title>Application Confirmation</title>
    </head>
    <body>
        <h2>Thank you for your loan application!</h2>
        <p>Dear {{.App.FullName}},</p>
        <p>We have received your loan application with reference number: <strong>{{.App.ReferenceNumber}}</strong></p>
        <p>Our team will review your application and contact you within 24-48 hours.</p>
        <p>If you have any questions, please contact us at +264 81 864 4104 or reply to this email.</p>
        <br>
        <p>Best regards,<br>NANGHALI YA KAFITA Financial Services CC</p>
    </body>
    </html>`))

func adminEmail() string {
	if mailConfig == nil {
		return ""
	}
	return mailConfig.AdminEmail
}

func renderTemplate(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendContactNotification emails the stored contact message to the
// administrative address.
func SendContactNotification(msg *models.ContactMessage) {
	body, err := renderTemplate(contactAdminTmpl, struct {
		Message *models.ContactMessage
		Date    string
	}{msg, time.Now().Format("2006-01-02 15:04:05")})
	if err != nil {
		log.Printf("Failed to render contact notification email: %v", err)
		return
	}
	SendHTMLEmail(adminEmail(), msg.Email, "New Contact Form Submission: "+msg.Subject, body)
}

// SendApplicationNotification emails the stored loan application to the
// administrative address.
func SendApplicationNotification(app *models.LoanApplication) {
	body, err := renderTemplate(applicationAdminTmpl, struct {
		App  *models.LoanApplication
		Date string
	}{app, time.Now().Format("2006-01-02 15:04:05")})
	if err != nil {
		log.Printf("Failed to render application notification email: %v", err)
		return
	}
	SendHTMLEmail(adminEmail(), app.Email, "New Loan Application - "+app.ReferenceNumber, body)
}

// SendApplicantConfirmation emails a receipt confirmation to the applicant.
func SendApplicantConfirmation(app *models.LoanApplication) {
	body, err := renderTemplate(applicantConfirmationTmpl, struct {
		App *models.LoanApplication
	}{app})
	if err != nil {
		log.Printf("Failed to render applicant confirmation email: %v", err)
		return
	}
	SendHTMLEmail(app.Email, "", "Loan Application Received - "+app.ReferenceNumber, body)
}
