package models

import "time"

// User captures application-facing fields for an authenticated identity.
// The bcrypt hash never leaves the server.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Location       string    `json:"location"`
	Role           string    `json:"role"`
	ArticlesRead   int       `json:"articlesRead"`
	FactsChecked   int       `json:"factsChecked"`
	BookmarksCount int       `json:"bookmarksCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UserUpdate is a partial patch for a user record; nil fields are left untouched.
type UserUpdate struct {
	Location       *string
	ArticlesRead   *int
	FactsChecked   *int
	BookmarksCount *int
}
