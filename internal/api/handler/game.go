package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/obedfeni/dailytrivia/internal/api/request"
	"github.com/obedfeni/dailytrivia/internal/api/response"
	"github.com/obedfeni/dailytrivia/internal/services/game"
	"github.com/obedfeni/dailytrivia/internal/services/session"
)

// defaultLeaderboardLimit is the top-K view size when no limit is given.
const defaultLeaderboardLimit = 10

// GameHandler handles answer submission and read-only projections
type GameHandler struct {
	game *game.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(game *game.Service) *GameHandler {
	return &GameHandler{game: game}
}

// SubmitAnswer handles POST /api/v1/players/{username}/answers
func (h *GameHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	var req request.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Category == "" {
		WriteError(w, NewInvalidRequestError("category is required"))
		return
	}
	if req.QuestionID == "" {
		WriteError(w, NewInvalidRequestError("question_id is required"))
		return
	}

	q, err := h.game.ResolveQuestion(req.Category, req.QuestionID)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.game.SubmitAnswer(r.Context(), username, session.Answer{
		Category: q.Category,
		Kind:     q.Kind,
		Choice:   req.Choice,
		Correct:  q.Answer,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmitAnswerFromResult(res, q.Answer))
}

// Leaderboard handles GET /api/v1/leaderboard?limit=K
func (h *GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			WriteError(w, NewInvalidRequestError("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	entries := h.game.Leaderboard(r.Context(), limit)
	response.JSON(w, http.StatusOK, response.LeaderboardFromEntries(entries))
}

// Visitors handles GET /api/v1/visitors
func (h *GameHandler) Visitors(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Visitors{
		Visitors: h.game.TotalVisitors(r.Context()),
	})
}
