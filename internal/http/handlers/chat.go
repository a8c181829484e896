package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sauticheck/sauticheck-api/internal/chatbot"
	"github.com/sauticheck/sauticheck-api/internal/http/respond"
	"github.com/sauticheck/sauticheck-api/internal/models/dto"
)

// ChatHandler fronts the scripted assistant. No chat history is kept
// server-side; each message is answered independently.
type ChatHandler struct{}

// NewChatHandler constructs the handler.
func NewChatHandler() *ChatHandler {
	return &ChatHandler{}
}

// Register attaches the chat route to the token-protected subrouter.
func (h *ChatHandler) Register(protected *mux.Router) {
	protected.HandleFunc("/chat", h.handleChat).Methods(http.MethodPost)
}

func (h *ChatHandler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Message == "" {
		respond.Error(w, http.StatusBadRequest, "Message is required")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"response": chatbot.Respond(req.Message)})
}
