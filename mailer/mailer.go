package mailer

import (
	"fmt"
	"log"
	"os"

	"github.com/matcornic/hermes/v2"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendResetPassword emails a password-reset link through SendGrid. The mail
// body is rendered by hermes so it matches the rest of the league's mail.
func SendResetPassword(toEmail, token string) error {
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:3000"
	}
	resetURL := fmt.Sprintf("%s/password/reset?token=%s", appURL, token)

	h := hermes.Hermes{
		Product: hermes.Product{
			Name: "Darts Predictor",
			Link: appURL,
		},
	}
	email := hermes.Email{
		Body: hermes.Body{
			Intros: []string{
				"You requested a password reset for your Darts Predictor account.",
			},
			Actions: []hermes.Action{
				{
					Instructions: "Click the button below to choose a new password:",
					Button: hermes.Button{
						Text: "Reset Password",
						Link: resetURL,
					},
				},
			},
			Outros: []string{
				"If you did not request this, you can safely ignore this email.",
			},
		},
	}

	emailBody, err := h.GenerateHTML(email)
	if err != nil {
		return err
	}

	from := mail.NewEmail("Darts Predictor", os.Getenv("SENDGRID_FROM"))
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, "Reset your password", to, "", emailBody)

	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("sendgrid responded %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid status %d", response.StatusCode)
	}
	return nil
}
