package handler

import (
	"net/http"

	"github.com/obedfeni/dailytrivia/internal/api/response"
	"github.com/obedfeni/dailytrivia/internal/services/game"
)

// QuestionHandler handles question bank endpoints
type QuestionHandler struct {
	game *game.Service
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(game *game.Service) *QuestionHandler {
	return &QuestionHandler{game: game}
}

// Categories handles GET /api/v1/categories
func (h *QuestionHandler) Categories(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Categories{
		Categories: h.game.Categories(),
	})
}

// Draw handles GET /api/v1/questions?category=X
func (h *QuestionHandler) Draw(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		WriteError(w, NewInvalidRequestError("category is required"))
		return
	}

	q, err := h.game.DrawQuestion(category)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.QuestionFromModel(q))
}
