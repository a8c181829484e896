package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sauticheck/sauticheck-api/internal/config"
	"github.com/sauticheck/sauticheck-api/internal/models"
	"github.com/sauticheck/sauticheck-api/internal/server"
	"github.com/sauticheck/sauticheck-api/internal/storage"
	"github.com/sauticheck/sauticheck-api/internal/storage/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := memory.NewSeeded(memory.SeedOptions{})
	require.NoError(t, err)

	cfg := config.Config{
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		CORSOrigins: []string{"*"},
	}
	ts := httptest.NewServer(server.NewRouter(cfg, store))
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, token string, payload any) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	fields := map[string]json.RawMessage{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fields))
	return resp, fields
}

func registerUser(t *testing.T, baseURL, email, password, role string) (token string, user map[string]any) {
	t.Helper()
	resp, fields := doJSON(t, http.MethodPost, baseURL+"/api/auth/register", "", map[string]string{
		"username":        email[:len(email)-len("@example.com")],
		"email":           email,
		"password":        password,
		"confirmPassword": password,
		"firstName":       "Test",
		"lastName":        "User",
		"role":            role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NoError(t, json.Unmarshal(fields["token"], &token))
	require.NoError(t, json.Unmarshal(fields["user"], &user))
	return token, user
}

func TestRegisterLoginMe(t *testing.T) {
	ts := newTestServer(t)

	token, user := registerUser(t, ts.URL, "amina@example.com", "passw0rd", "")
	assert.Equal(t, "amina@example.com", user["email"])
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "Kenya", user["location"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword, "password must never appear in responses")

	resp, fields := doJSON(t, http.MethodGet, ts.URL+"/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me map[string]any
	require.NoError(t, json.Unmarshal(fields["user"], &me))
	assert.Equal(t, "amina@example.com", me["email"])

	resp, fields = doJSON(t, http.MethodPost, ts.URL+"/api/auth/login", "", map[string]string{
		"email": "amina@example.com", "password": "passw0rd",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, fields["token"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts.URL, "amina@example.com", "passw0rd", "")

	for i := 0; i < 2; i++ {
		resp, fields := doJSON(t, http.MethodPost, ts.URL+"/api/auth/register", "", map[string]string{
			"username":        fmt.Sprintf("dup%d", i),
			"email":           "amina@example.com",
			"password":        "different",
			"confirmPassword": "different",
			"firstName":       "Dup",
			"lastName":        "User",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `"User already exists"`, string(fields["message"]))
	}

	// The duplicate attempts never replaced the original credentials.
	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/auth/login", "", map[string]string{
		"email": "amina@example.com", "password": "passw0rd",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterValidationFirstViolation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name    string
		payload map[string]string
		message string
	}{
		{
			"bad email",
			map[string]string{"username": "x", "email": "not-an-email", "password": "secret1", "confirmPassword": "secret1", "firstName": "A", "lastName": "B"},
			"Invalid email",
		},
		{
			"short password",
			map[string]string{"username": "x", "email": "x@example.com", "password": "abc", "confirmPassword": "abc", "firstName": "A", "lastName": "B"},
			"Password must be at least 6 characters",
		},
		{
			"mismatched confirmation",
			map[string]string{"username": "x", "email": "x@example.com", "password": "secret1", "confirmPassword": "secret2", "firstName": "A", "lastName": "B"},
			"Passwords don't match",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, fields := doJSON(t, http.MethodPost, ts.URL+"/api/auth/register", "", tt.payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.JSONEq(t, fmt.Sprintf("%q", tt.message), string(fields["message"]))
		})
	}
}

func TestLoginDoesNotRevealAccounts(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts.URL, "amina@example.com", "passw0rd", "")

	respUnknown, fieldsUnknown := doJSON(t, http.MethodPost, ts.URL+"/api/auth/login", "", map[string]string{
		"email": "ghost@example.com", "password": "passw0rd",
	})
	respWrong, fieldsWrong := doJSON(t, http.MethodPost, ts.URL+"/api/auth/login", "", map[string]string{
		"email": "amina@example.com", "password": "wrongpass",
	})

	assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)
	assert.Equal(t, string(fieldsUnknown["message"]), string(fieldsWrong["message"]))
}

func TestAuthFailuresDistinct(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/auth/me", "garbage-token", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestArticlesListingAndLookup(t *testing.T) {
	ts := newTestServer(t)

	resp, fields := doJSON(t, http.MethodGet, ts.URL+"/api/articles?category=Health&limit=1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var articles []map[string]any
	require.NoError(t, json.Unmarshal(fields["articles"], &articles))
	require.Len(t, articles, 1)
	assert.Equal(t, "Health", articles[0]["category"])

	id, ok := articles[0]["id"].(string)
	require.True(t, ok)
	resp, fields = doJSON(t, http.MethodGet, ts.URL+"/api/articles/"+id, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var article map[string]any
	require.NoError(t, json.Unmarshal(fields["article"], &article))
	assert.Equal(t, id, article["id"])

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/articles/missing-id", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestArticlesDefaultLimit(t *testing.T) {
	ts := newTestServer(t)

	// limit=0 and garbage both fall back to the default of 10.
	for _, query := range []string{"?limit=0", "?limit=abc", ""} {
		resp, fields := doJSON(t, http.MethodGet, ts.URL+"/api/articles"+query, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var articles []map[string]any
		require.NoError(t, json.Unmarshal(fields["articles"], &articles))
		assert.Len(t, articles, 5, "all five seeded articles fit under the default limit")
	}
}

func TestCivicAlertsNeverIncludeInactive(t *testing.T) {
	ts := newTestServer(t)
	adminToken, _ := registerUser(t, ts.URL, "boss@example.com", "passw0rd", "admin")

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/admin/civic-alerts", adminToken, map[string]any{
		"title": "Hidden", "message": "inactive alert", "type": "info", "category": "Misc", "isActive": false,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, fields := doJSON(t, http.MethodGet, ts.URL+"/api/civic-alerts", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var alerts []map[string]any
	require.NoError(t, json.Unmarshal(fields["alerts"], &alerts))
	for _, alert := range alerts {
		assert.NotEqual(t, "Hidden", alert["title"])
		assert.Equal(t, true, alert["isActive"])
	}
}

func TestJobsTypeFilterIdempotent(t *testing.T) {
	ts := newTestServer(t)

	first, fields := doJSON(t, http.MethodGet, ts.URL+"/api/jobs?type=internship", "", nil)
	require.Equal(t, http.StatusOK, first.StatusCode)
	second, fieldsAgain := doJSON(t, http.MethodGet, ts.URL+"/api/jobs?type=internship", "", nil)
	require.Equal(t, http.StatusOK, second.StatusCode)

	assert.JSONEq(t, string(fields["jobs"]), string(fieldsAgain["jobs"]))

	var jobs []map[string]any
	require.NoError(t, json.Unmarshal(fields["jobs"], &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "internship", jobs[0]["type"])
}

func TestFactCheckFlow(t *testing.T) {
	ts := newTestServer(t)
	token, _ := registerUser(t, ts.URL, "checker@example.com", "passw0rd", "")

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/fact-check", "", map[string]string{"text": "This is fake news"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, fields := doJSON(t, http.MethodPost, ts.URL+"/api/fact-check", token, map[string]string{"text": "short"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `"Text must be at least 10 characters long"`, string(fields["message"]))

	resp, fields = doJSON(t, http.MethodPost, ts.URL+"/api/fact-check", token, map[string]string{"text": "This is fake news"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var check map[string]any
	require.NoError(t, json.Unmarshal(fields["factCheck"], &check))
	assert.Equal(t, "false", check["result"])
	assert.Equal(t, float64(85), check["confidence"])

	resp, fields = doJSON(t, http.MethodGet, ts.URL+"/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me map[string]any
	require.NoError(t, json.Unmarshal(fields["user"], &me))
	assert.Equal(t, float64(1), me["factsChecked"])

	resp, fields = doJSON(t, http.MethodPost, ts.URL+"/api/fact-check", token, map[string]string{"text": "It has been confirmed true"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, fields = doJSON(t, http.MethodGet, ts.URL+"/api/fact-checks", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var checks []map[string]any
	require.NoError(t, json.Unmarshal(fields["factChecks"], &checks))
	require.Len(t, checks, 2)
	assert.Equal(t, "true", checks[0]["result"], "newest check first")
	assert.Equal(t, "false", checks[1]["result"])
}

// counterFailStore simulates a backend where the counter write fails after
// the fact check itself persisted.
type counterFailStore struct {
	storage.Store
}

func (s counterFailStore) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error) {
	return models.User{}, errors.New("update rejected")
}

func TestFactCheckCounterUpdateFailureIs500(t *testing.T) {
	mem, err := memory.NewSeeded(memory.SeedOptions{})
	require.NoError(t, err)

	cfg := config.Config{
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		CORSOrigins: []string{"*"},
	}
	ts := httptest.NewServer(server.NewRouter(cfg, counterFailStore{Store: mem}))
	t.Cleanup(ts.Close)

	token, _ := registerUser(t, ts.URL, "checker@example.com", "passw0rd", "")

	resp, fields := doJSON(t, http.MethodPost, ts.URL+"/api/fact-check", token, map[string]string{"text": "This is fake news"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `"Failed to perform fact check"`, string(fields["message"]))
}

func TestFactChecksAreOwnerScoped(t *testing.T) {
	ts := newTestServer(t)
	tokenA, _ := registerUser(t, ts.URL, "a@example.com", "passw0rd", "")
	tokenB, _ := registerUser(t, ts.URL, "b@example.com", "passw0rd", "")

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/fact-check", tokenA, map[string]string{"text": "This is fake news"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, fields := doJSON(t, http.MethodGet, ts.URL+"/api/fact-checks", tokenB, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var checks []map[string]any
	require.NoError(t, json.Unmarshal(fields["factChecks"], &checks))
	assert.Empty(t, checks)
}

func TestChat(t *testing.T) {
	ts := newTestServer(t)
	token, _ := registerUser(t, ts.URL, "chatter@example.com", "passw0rd", "")

	resp, fields := doJSON(t, http.MethodPost, ts.URL+"/api/chat", token, map[string]string{"message": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `"Message is required"`, string(fields["message"]))

	resp, fields = doJSON(t, http.MethodPost, ts.URL+"/api/chat", token, map[string]string{"message": "hujambo"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reply string
	require.NoError(t, json.Unmarshal(fields["response"], &reply))
	assert.Contains(t, reply, "Hujambo! I'm Sauti")
}

func TestAdminGate(t *testing.T) {
	ts := newTestServer(t)
	userToken, _ := registerUser(t, ts.URL, "plain@example.com", "passw0rd", "")
	adminToken, _ := registerUser(t, ts.URL, "boss@example.com", "passw0rd", "admin")

	payload := map[string]any{
		"title": "Admin Test Article", "excerpt": "x", "content": "y",
		"category": "Politics", "source": "Test Desk", "verified": true,
	}

	resp, fields := doJSON(t, http.MethodPost, ts.URL+"/api/admin/articles", userToken, payload)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.JSONEq(t, `"Admin access required"`, string(fields["message"]))

	// The forbidden call must not have created anything.
	resp, fields = doJSON(t, http.MethodGet, ts.URL+"/api/articles?limit=50", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var articles []map[string]any
	require.NoError(t, json.Unmarshal(fields["articles"], &articles))
	assert.Len(t, articles, 5)

	resp, fields = doJSON(t, http.MethodPost, ts.URL+"/api/admin/articles", adminToken, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var article map[string]any
	require.NoError(t, json.Unmarshal(fields["article"], &article))
	assert.Equal(t, "Admin Test Article", article["title"])
	assert.NotEmpty(t, article["id"])

	// The new article is now the most recently published one.
	resp, fields = doJSON(t, http.MethodGet, ts.URL+"/api/articles?limit=1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(fields["articles"], &articles))
	require.Len(t, articles, 1)
	assert.Equal(t, "Admin Test Article", articles[0]["title"])
}

func TestAdminJobsAndAlerts(t *testing.T) {
	ts := newTestServer(t)
	adminToken, _ := registerUser(t, ts.URL, "boss@example.com", "passw0rd", "admin")

	resp, fields := doJSON(t, http.MethodPost, ts.URL+"/api/admin/jobs", adminToken, map[string]any{
		"title": "Field Officer", "company": "County Gov", "location": "Kisumu, Kenya",
		"type": "contract", "description": "d", "requirements": "r",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var job map[string]any
	require.NoError(t, json.Unmarshal(fields["job"], &job))
	assert.Equal(t, "contract", job["type"])

	resp, fields = doJSON(t, http.MethodGet, ts.URL+"/api/jobs?type=contract", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var jobs []map[string]any
	require.NoError(t, json.Unmarshal(fields["jobs"], &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "Field Officer", jobs[0]["title"])

	resp, fields = doJSON(t, http.MethodPost, ts.URL+"/api/admin/civic-alerts", adminToken, map[string]any{
		"title": "Road Closure", "message": "Uhuru Highway closed Sunday", "type": "urgent",
		"category": "Transport", "isActive": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var alert map[string]any
	require.NoError(t, json.Unmarshal(fields["alert"], &alert))
	assert.Equal(t, "urgent", alert["type"])
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, fields := doJSON(t, http.MethodGet, ts.URL+"/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `"ok"`, string(fields["status"]))
}
