package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sauticheck/sauticheck-api/internal/http/respond"
	"github.com/sauticheck/sauticheck-api/internal/models"
	"github.com/sauticheck/sauticheck-api/internal/storage"
)

// ContentHandler owns the public listing endpoints for articles, civic
// alerts, and jobs.
type ContentHandler struct {
	store storage.Store
}

// NewContentHandler constructs the handler.
func NewContentHandler(store storage.Store) *ContentHandler {
	return &ContentHandler{store: store}
}

// Register attaches the public content routes.
func (h *ContentHandler) Register(api *mux.Router) {
	api.HandleFunc("/articles", h.handleListArticles).Methods(http.MethodGet)
	api.HandleFunc("/articles/{id}", h.handleGetArticle).Methods(http.MethodGet)
	api.HandleFunc("/civic-alerts", h.handleListAlerts).Methods(http.MethodGet)
	api.HandleFunc("/jobs", h.handleListJobs).Methods(http.MethodGet)
}

func (h *ContentHandler) handleListArticles(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r)
	offset := queryOffset(r)
	category := r.URL.Query().Get("category")

	articles, err := h.store.GetArticles(r.Context(), limit, offset, category)
	if err != nil {
		log.Printf("list articles: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}
	respond.JSON(w, http.StatusOK, map[string][]models.Article{"articles": articles})
}

func (h *ContentHandler) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	article, err := h.store.GetArticle(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Article not found")
			return
		}
		log.Printf("get article %s: %v", id, err)
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch article")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]models.Article{"article": article})
}

func (h *ContentHandler) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.store.GetCivicAlerts(r.Context(), queryLimit(r))
	if err != nil {
		log.Printf("list civic alerts: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch civic alerts")
		return
	}
	respond.JSON(w, http.StatusOK, map[string][]models.CivicAlert{"alerts": alerts})
}

func (h *ContentHandler) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.store.GetJobs(r.Context(), queryLimit(r), r.URL.Query().Get("type"))
	if err != nil {
		log.Printf("list jobs: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}
	respond.JSON(w, http.StatusOK, map[string][]models.Job{"jobs": jobs})
}
