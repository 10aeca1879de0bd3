package utils

import (
	"flexopted/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// SendEmail sends an HTML email through the configured SMTP account.
// Callers fire it from a goroutine; delivery failures are logged, never
// surfaced to the request.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		log.Println("Email not configured, skipping send.")
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Flexopted <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>FLEXOPTED</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Flexopted. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a freshly registered user
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`<p>Hi %s,</p>
		<p>Your account has been created. Log in to browse courses and start learning.</p>`, name)
	SendEmail([]string{email}, "Welcome to Flexopted", getEmailTemplate("Welcome aboard!", body))
}

// SendEnrollmentEmail confirms a course enrollment
func SendEnrollmentEmail(email, name string, courseID uint) {
	if email == "" {
		return
	}
	body := fmt.Sprintf(`<p>Hi %s,</p>
		<p>You are now enrolled in course #%d. Your watch progress is tracked automatically.</p>`, name, courseID)
	SendEmail([]string{email}, "Enrollment confirmed", getEmailTemplate("You're enrolled!", body))
}
