package mailer

import "embed"

const (
	FromName                 = "Pulse"
	maxRetries               = 3
	FeedbackReceivedTemplate = "feedback_received.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, email string, data any) (int, error)
}
