package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/jivitesh-dev/portfolio_api/model"
)

// EmailService delivers mail through the provider's HTTPS API with a
// bearer credential. Delivery is best effort: a failed send is logged and
// reported as false, never as an error to the caller.
type EmailService struct {
	context.DefaultService

	apiKey            string
	apiURL            string
	fromEmail         string
	fromName          string
	notificationEmail string

	client    *http.Client
	templates map[string]*template.Template
}

const EMAIL_SVC = "email_svc"

func (svc EmailService) Id() string {
	return EMAIL_SVC
}

func (svc *EmailService) Configure(ctx *context.Context) error {
	svc.apiKey = os.Getenv("EMAIL_API_KEY")
	svc.apiURL = os.Getenv("EMAIL_API_URL")
	svc.fromEmail = os.Getenv("FROM_EMAIL")
	svc.fromName = os.Getenv("FROM_NAME")
	svc.notificationEmail = os.Getenv("NOTIFICATION_EMAIL")

	if svc.apiURL == "" {
		svc.apiURL = "https://api.resend.com/emails"
	}
	if svc.fromEmail == "" {
		svc.fromEmail = "no-reply@localhost"
	}
	if svc.fromName == "" {
		svc.fromName = "Portfolio"
	}

	svc.client = &http.Client{Timeout: 10 * time.Second}
	svc.templates = make(map[string]*template.Template)

	return svc.DefaultService.Configure(ctx)
}

func (svc *EmailService) Start() error {
	if err := svc.loadTemplates(); err != nil {
		return err
	}

	if !svc.Configured() {
		log.Warn("Email API key not configured, contact emails will be skipped")
	}

	return nil
}

// Configured reports whether the provider credential is present. The
// health endpoint exposes this.
func (svc *EmailService) Configured() bool {
	return svc.apiKey != ""
}

// Email templates
const notificationEmailHTML = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Message</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #4F46E5; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .details { background-color: white; padding: 15px; border-radius: 5px; margin: 15px 0; }
        .message { background-color: #f5f5f5; padding: 15px; border-left: 5px solid #4F46E5; }
        .footer { padding: 20px; text-align: center; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Message</h1>
        </div>
        <div class="content">
            <div class="details">
                <p><strong>Name:</strong> {{.Name}}</p>
                <p><strong>Email:</strong> {{.Email}}</p>
                <p><strong>Title:</strong> {{.Title}}</p>
                {{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
                {{if .ProjectType}}<p><strong>Project type:</strong> {{.ProjectType}}</p>{{end}}
                <p><strong>Time:</strong> {{.Timestamp}}</p>
            </div>
            <div class="message">{{.Message}}</div>
        </div>
        <div class="footer">
            <p>Sent from the portfolio contact form.</p>
        </div>
    </div>
</body>
</html>
`

const confirmationEmailHTML = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Message Received</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #059669; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .footer { padding: 20px; text-align: center; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thank you, {{.Name}}!</h1>
        </div>
        <div class="content">
            <p>Your message titled "<strong>{{.Title}}</strong>" was received.</p>
            <p>I'll respond within 24-48 hours.</p>
        </div>
        <div class="footer">
            <p>This is an automated confirmation, no reply needed.</p>
        </div>
    </div>
</body>
</html>
`

func (svc *EmailService) loadTemplates() error {
	var err error

	svc.templates["notification"], err = template.New("notification").Parse(notificationEmailHTML)
	if err != nil {
		return fmt.Errorf("failed to parse notification email template: %v", err)
	}

	svc.templates["confirmation"], err = template.New("confirmation").Parse(confirmationEmailHTML)
	if err != nil {
		return fmt.Errorf("failed to parse confirmation email template: %v", err)
	}

	return nil
}

// SendNotification alerts the site owner about a new submission.
func (svc *EmailService) SendNotification(msg model.ContactMessage) bool {
	if svc.notificationEmail == "" {
		log.Warn("NOTIFICATION_EMAIL not configured, skipping notification email")
		return false
	}

	subject := fmt.Sprintf("New Contact: %s", msg.Title)
	return svc.sendTemplateEmail(svc.notificationEmail, subject, "notification", msg)
}

// SendConfirmation acknowledges receipt to the submitter.
func (svc *EmailService) SendConfirmation(msg model.ContactMessage) bool {
	return svc.sendTemplateEmail(msg.Email, "Message received", "confirmation", msg)
}

func (svc *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) bool {
	tmpl, exists := svc.templates[templateName]
	if !exists {
		log.WithField("template", templateName).Error("Email template not found")
		return false
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		log.WithError(err).WithField("template", templateName).Error("Failed to execute email template")
		return false
	}

	sent := svc.Send(to, subject, body.String())
	if sent {
		emailsSentTotal.WithLabelValues(templateName, "sent").Inc()
	} else {
		emailsSentTotal.WithLabelValues(templateName, "failed").Inc()
	}
	return sent
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send posts one message to the provider API and reports success.
func (svc *EmailService) Send(to, subject, html string) bool {
	if !svc.Configured() {
		log.Warn("Email API key not configured, skipping email")
		return false
	}

	payload, err := json.Marshal(sendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", svc.fromName, svc.fromEmail),
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		log.WithError(err).Error("Failed to marshal email payload")
		return false
	}

	req, err := http.NewRequest(http.MethodPost, svc.apiURL, bytes.NewReader(payload))
	if err != nil {
		log.WithError(err).Error("Failed to build email request")
		return false
	}
	req.Header.Set("Authorization", "Bearer "+svc.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := svc.client.Do(req)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"to": to, "subject": subject}).Error("Failed to send email")
		return false
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		log.WithFields(log.Fields{"to": to, "subject": subject, "status": res.StatusCode}).Error("Email provider rejected message")
		return false
	}

	log.WithFields(log.Fields{"to": to, "subject": subject}).Info("Email sent successfully")
	return true
}
