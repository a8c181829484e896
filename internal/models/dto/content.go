package dto

import "time"

// CreateArticleRequest carries admin-supplied article fields. The server
// assigns the id and both timestamps.
type CreateArticleRequest struct {
	Title    string  `json:"title"`
	Excerpt  string  `json:"excerpt"`
	Content  string  `json:"content"`
	Category string  `json:"category"`
	Source   string  `json:"source"`
	Author   *string `json:"author"`
	ImageURL *string `json:"imageUrl"`
	Verified bool    `json:"verified"`
}

type CreateCivicAlertRequest struct {
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	Type       string  `json:"type"`
	Category   string  `json:"category"`
	ActionText *string `json:"actionText"`
	ActionURL  *string `json:"actionUrl"`
	IsActive   bool    `json:"isActive"`
}

type CreateJobRequest struct {
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Location       string     `json:"location"`
	Type           string     `json:"type"`
	Description    string     `json:"description"`
	Requirements   string     `json:"requirements"`
	Salary         *string    `json:"salary"`
	ApplicationURL *string    `json:"applicationUrl"`
	ExpiresAt      *time.Time `json:"expiresAt"`
}

type FactCheckRequest struct {
	Text string `json:"text"`
}

type ChatRequest struct {
	Message string `json:"message"`
}
