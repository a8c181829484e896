package models

import (
	"encoding/json"
	"time"
)

// FactCheck records one verification request and its verdict. Result is one
// of true, false, partly-true, unverified; Confidence is 0-100.
type FactCheck struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Text        string          `json:"text"`
	Result      string          `json:"result"`
	Confidence  int             `json:"confidence"`
	Explanation *string         `json:"explanation"`
	Sources     json.RawMessage `json:"sources"`
	CreatedAt   time.Time       `json:"createdAt"`
}
