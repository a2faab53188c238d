package dto

import (
	"github.com/jivitesh-dev/portfolio_api/model"
	"github.com/jivitesh-dev/portfolio_api/shared"
)

// Field caps applied during sanitization.
const (
	MaxNameLength        = 100
	MaxEmailLength       = 150
	MaxTitleLength       = 150
	MaxMessageLength     = 2000
	MaxCompanyLength     = 100
	MaxProjectTypeLength = 50
)

type ContactRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,contact_email,max=150"`
	Title       string `json:"title" validate:"required,max=150"`
	Message     string `json:"message" validate:"required,max=2000"`
	Company     string `json:"company,omitempty"`
	ProjectType string `json:"project_type,omitempty"`
}

// Sanitized returns a copy with markup characters stripped, whitespace
// trimmed and every field capped. Validation runs on the sanitized copy
// so a whitespace-only field fails the required check.
func (r ContactRequest) Sanitized() ContactRequest {
	return ContactRequest{
		Name:        shared.Sanitize(r.Name, MaxNameLength),
		Email:       shared.Sanitize(r.Email, MaxEmailLength),
		Title:       shared.Sanitize(r.Title, MaxTitleLength),
		Message:     shared.Sanitize(r.Message, MaxMessageLength),
		Company:     shared.Sanitize(r.Company, MaxCompanyLength),
		ProjectType: shared.Sanitize(r.ProjectType, MaxProjectTypeLength),
	}
}

func (r ContactRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ContactResponse struct {
	Success          bool `json:"success"`
	NotificationSent bool `json:"notification_sent"`
	ConfirmationSent bool `json:"confirmation_sent"`
}

type MessageListResponse struct {
	Total    int                    `json:"total"`
	Unread   int                    `json:"unread"`
	Messages []model.ContactMessage `json:"messages"`
}
