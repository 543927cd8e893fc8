package utils

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends transactional mail through SendGrid. When no API key
// is configured the service is disabled and sends become no-ops.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes the email service from the environment.
func NewEmailService() *EmailService {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Info().Msg("SENDGRID_API_KEY not set, email disabled")
		return &EmailService{}
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toName, toEmail, subject, htmlContent string) error {
	if es.client == nil {
		return nil
	}
	from := mail.NewEmail("FoodShare", es.sender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)
	_, err := es.client.Send(message)
	return err
}

// SendWelcomeEmail greets a newly registered user. Failures are logged and
// never surfaced to the caller.
func (es *EmailService) SendWelcomeEmail(name, email string) {
	htmlContent := "<strong>Welcome to FoodShare, " + name + "!</strong><br><br>" +
		"Thank you for joining the fight against food waste. Log in to browse " +
		"surplus food donations near you."
	if err := es.SendEmail(name, email, "Welcome to FoodShare", htmlContent); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("Failed to send welcome email")
	}
}
