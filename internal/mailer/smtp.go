package mailer

import (
	"bytes"
	"errors"
	"net/http"
	"text/template"
	"time"

	mail "gopkg.in/mail.v2"
)

type SMTPMailer struct {
	fromEmail string
	dialer    *mail.Dialer
}

func NewSMTPMailer(host string, port int, username, password, fromEmail string) (*SMTPMailer, error) {
	if host == "" {
		return nil, errors.New("smtp host is required")
	}

	dialer := mail.NewDialer(host, port, username, password)

	return &SMTPMailer{
		fromEmail: fromEmail,
		dialer:    dialer,
	}, nil
}

// Send renders the named embedded template and delivers it, retrying a few
// times on transient SMTP failure. Returns the HTTP-ish status it settled on.
func (m *SMTPMailer) Send(templateFile, email string, data any) (int, error) {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return -1, err
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return -1, err
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return -1, err
	}

	message := mail.NewMessage()
	message.SetHeader("From", message.FormatAddress(m.fromEmail, FromName))
	message.SetHeader("To", email)
	message.SetHeader("Subject", subject.String())
	message.SetBody("text/html", body.String())

	var retryErr error
	for i := 0; i < maxRetries; i++ {
		retryErr = m.dialer.DialAndSend(message)
		if retryErr == nil {
			return http.StatusOK, nil
		}
		// exponential backoff
		time.Sleep(time.Second * time.Duration(i+1))
	}

	return -1, retryErr
}
