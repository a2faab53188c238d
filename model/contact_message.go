package model

// ContactMessage is the durable record of one accepted submission.
// Stored as JSON under "contact:<id>" with no TTL. Read stays false until
// an external moderation action flips it; nothing in this service does.
type ContactMessage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Company     string `json:"company"`
	ProjectType string `json:"project_type"`
	Timestamp   string `json:"timestamp"`
	Read        bool   `json:"read"`
}
