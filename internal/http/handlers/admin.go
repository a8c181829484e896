package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sauticheck/sauticheck-api/internal/http/respond"
	"github.com/sauticheck/sauticheck-api/internal/models"
	"github.com/sauticheck/sauticheck-api/internal/models/dto"
	"github.com/sauticheck/sauticheck-api/internal/storage"
)

// AdminHandler owns the publishing endpoints. The admin role gate runs in
// middleware before any of these handlers.
type AdminHandler struct {
	store storage.Store
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(store storage.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// Register attaches the publishing routes to the admin subrouter.
func (h *AdminHandler) Register(admin *mux.Router) {
	admin.HandleFunc("/articles", h.handleCreateArticle).Methods(http.MethodPost)
	admin.HandleFunc("/civic-alerts", h.handleCreateAlert).Methods(http.MethodPost)
	admin.HandleFunc("/jobs", h.handleCreateJob).Methods(http.MethodPost)
}

func (h *AdminHandler) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	article, err := h.store.CreateArticle(r.Context(), models.Article{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Source:   req.Source,
		Author:   req.Author,
		ImageURL: req.ImageURL,
		Verified: req.Verified,
	})
	if err != nil {
		log.Printf("admin: create article failed: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to create article")
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]models.Article{"article": article})
}

func (h *AdminHandler) handleCreateAlert(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCivicAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	alert, err := h.store.CreateCivicAlert(r.Context(), models.CivicAlert{
		Title:      req.Title,
		Message:    req.Message,
		Type:       req.Type,
		Category:   req.Category,
		ActionText: req.ActionText,
		ActionURL:  req.ActionURL,
		IsActive:   req.IsActive,
	})
	if err != nil {
		log.Printf("admin: create civic alert failed: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to create civic alert")
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]models.CivicAlert{"alert": alert})
}

func (h *AdminHandler) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	job, err := h.store.CreateJob(r.Context(), models.Job{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Type:           req.Type,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Salary:         req.Salary,
		ApplicationURL: req.ApplicationURL,
		ExpiresAt:      req.ExpiresAt,
	})
	if err != nil {
		log.Printf("admin: create job failed: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to create job")
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]models.Job{"job": job})
}
