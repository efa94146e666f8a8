package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/obedfeni/dailytrivia/internal/api/request"
	"github.com/obedfeni/dailytrivia/internal/api/response"
	"github.com/obedfeni/dailytrivia/internal/services/game"
)

// PlayerHandler handles session and player endpoints
type PlayerHandler struct {
	game *game.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(game *game.Service) *PlayerHandler {
	return &PlayerHandler{game: game}
}

// OpenSession handles POST /api/v1/sessions
//
// The session ID is a correlation handle for the UI, not a credential;
// there is no authentication anywhere in this game.
func (h *PlayerHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	var req request.OpenSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}

	rec, remaining := h.game.OpenSession(r.Context(), req.Username)

	response.JSON(w, http.StatusCreated, response.Session{
		SessionID: uuid.New().String(),
		Player:    response.PlayerFromModel(req.Username, rec),
		Remaining: remaining,
	})
}

// Get handles GET /api/v1/players/{username}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	rec, _, err := h.game.GetPlayer(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(username, rec))
}

// Share handles GET /api/v1/players/{username}/share
func (h *PlayerHandler) Share(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	text, err := h.game.ShareText(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Share{Text: text})
}
