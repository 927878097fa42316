package utils

import (
	"log"

	"github.com/fransrichy/NKFINANCIAL/config"

	"gopkg.in/gomail.v2"
)

var mailConfig *config.Config

// ConfigureMailer stores the SMTP settings used by SendHTMLEmail. When no
// SMTP host is configured, sends are skipped and logged instead of failing
// the request.
func ConfigureMailer(cfg *config.Config) {
	mailConfig = cfg
}

// SendHTMLEmail delivers a single HTML email. Notification delivery is
// best-effort: the outcome is logged and never reported to the submitter.
func SendHTMLEmail(to, replyTo, subject, htmlBody string) {
	if mailConfig == nil || mailConfig.SMTPHost == "" {
		log.Printf("Mail disabled, skipping email %q to %s", subject, to)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", mailConfig.SenderEmail)
	m.SetHeader("To", to)
	if replyTo != "" {
		m.SetHeader("Reply-To", replyTo)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		mailConfig.SMTPHost,
		mailConfig.SMTPPort,
		mailConfig.SMTPUser,
		mailConfig.SMTPPass,
	)

	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send email %q to %s: %v", subject, to, err)
		return
	}

	log.Printf("Email %q successfully sent to %s", subject, to)
}
