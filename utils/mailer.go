package utils

import (
	"fmt"
	"log"

	"coursegen/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends one HTML email through SendGrid. With no API key
// configured it logs and returns, so callers never need to branch on
// the notification setup.
func SendEmail(to, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("Email skipped (no SENDGRID_API_KEY): %s -> %s", subject, to)
		return nil
	}

	from := mail.NewEmail("Course Generator", config.AppConfig.EmailSender)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("Email to %s rejected with status %d", to, response.StatusCode)
		return fmt.Errorf("email rejected: status %d", response.StatusCode)
	}
	return nil
}

// SendCourseReadyEmail notifies a user that their generated course is ready.
// Called from a goroutine; failures are logged, never surfaced.
func SendCourseReadyEmail(to, courseTitle, courseID string) {
	subject := "Your course is ready: " + courseTitle
	body := fmt.Sprintf(`
	<h2>%s</h2>
	<p>Your generated course is ready to explore.</p>
	<p>Course ID: <strong>%s</strong></p>`, courseTitle, courseID)

	if err := SendEmail(to, subject, body); err != nil {
		log.Printf("Course ready notification failed for %s: %v", to, err)
	}
}
