package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sauticheck/sauticheck-api/internal/factcheck"
	"github.com/sauticheck/sauticheck-api/internal/http/respond"
	"github.com/sauticheck/sauticheck-api/internal/middleware"
	"github.com/sauticheck/sauticheck-api/internal/models"
	"github.com/sauticheck/sauticheck-api/internal/models/dto"
	"github.com/sauticheck/sauticheck-api/internal/storage"
)

// FactCheckHandler owns claim submission and the caller's check history.
type FactCheckHandler struct {
	store storage.Store
}

// NewFactCheckHandler constructs the handler.
func NewFactCheckHandler(store storage.Store) *FactCheckHandler {
	return &FactCheckHandler{store: store}
}

// Register attaches the fact-check routes to the token-protected subrouter.
func (h *FactCheckHandler) Register(protected *mux.Router) {
	protected.HandleFunc("/fact-check", h.handleCheck).Methods(http.MethodPost)
	protected.HandleFunc("/fact-checks", h.handleHistory).Methods(http.MethodGet)
}

func (h *FactCheckHandler) handleCheck(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req dto.FactCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if len(req.Text) < 10 {
		respond.Error(w, http.StatusBadRequest, "Text must be at least 10 characters long")
		return
	}

	verdict := factcheck.Classify(req.Text)
	check, err := h.store.CreateFactCheck(r.Context(), models.FactCheck{
		UserID:      user.ID,
		Text:        req.Text,
		Result:      verdict.Result,
		Confidence:  verdict.Confidence,
		Explanation: &verdict.Explanation,
	})
	if err != nil {
		log.Printf("fact-check: persist failed: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to perform fact check")
		return
	}

	checked := user.FactsChecked + 1
	if _, err := h.store.UpdateUser(r.Context(), user.ID, models.UserUpdate{FactsChecked: &checked}); err != nil {
		log.Printf("fact-check: counter update failed for user %s: %v", user.ID, err)
		respond.Error(w, http.StatusInternalServerError, "Failed to perform fact check")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]models.FactCheck{"factCheck": check})
}

func (h *FactCheckHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Access token required")
		return
	}
	checks, err := h.store.GetFactChecksByUser(r.Context(), user.ID)
	if err != nil {
		log.Printf("fact-checks: list failed for user %s: %v", user.ID, err)
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch fact checks")
		return
	}
	respond.JSON(w, http.StatusOK, map[string][]models.FactCheck{"factChecks": checks})
}
