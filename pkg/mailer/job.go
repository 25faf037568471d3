package mailer

import "fmt"

// CardNotificationJob is the JSON payload queued on RabbitMQ when a
// recognition card is created. The notify worker turns it into an email.
type CardNotificationJob struct {
	To            string `json:"to"`
	RecipientName string `json:"recipient_name"`
	SenderName    string `json:"sender_name"`
	Message       string `json:"message"`
	CardID        string `json:"card_id"`
}

// Subject builds the email subject line.
func (j CardNotificationJob) Subject() string {
	return fmt.Sprintf("%s sent you a recognition card", j.SenderName)
}

// Text builds the plain-text email body.
func (j CardNotificationJob) Text() string {
	return fmt.Sprintf("Hi %s,\n\n%s sent you a recognition card:\n\n%q\n\nCard ID: %s\n",
		j.RecipientName, j.SenderName, j.Message, j.CardID)
}
