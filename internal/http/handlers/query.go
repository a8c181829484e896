package handlers

import (
	"net/http"
	"strconv"
)

const defaultLimit = 10

// queryLimit returns the limit query parameter, falling back to the default
// for missing, unparsable, or non-positive values.
func queryLimit(r *http.Request) int {
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n > 0 {
		return n
	}
	return defaultLimit
}

// queryOffset returns the offset query parameter, clamped to zero.
func queryOffset(r *http.Request) int {
	if n, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && n > 0 {
		return n
	}
	return 0
}
