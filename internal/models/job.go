package models

import "time"

// Job is an employment listing. Type is one of full-time, part-time,
// contract, internship. Expiry is informational only; listings do not
// filter on it.
type Job struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Location       string     `json:"location"`
	Type           string     `json:"type"`
	Description    string     `json:"description"`
	Requirements   string     `json:"requirements"`
	Salary         *string    `json:"salary"`
	ApplicationURL *string    `json:"applicationUrl"`
	PostedAt       time.Time  `json:"postedAt"`
	ExpiresAt      *time.Time `json:"expiresAt"`
}
