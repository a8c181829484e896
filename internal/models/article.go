package models

import "time"

// Article is a published news item. Category is an open string; the UI uses
// Politics, Economy, Education, Health, and Infrastructure.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Source      string    `json:"source"`
	Author      *string   `json:"author"`
	ImageURL    *string   `json:"imageUrl"`
	Verified    bool      `json:"verified"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}
