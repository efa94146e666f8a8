package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/obedfeni/dailytrivia/internal/api/apierr"
	"github.com/obedfeni/dailytrivia/internal/api/handler"
	"github.com/obedfeni/dailytrivia/internal/middleware"
	"github.com/obedfeni/dailytrivia/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	GameService *game.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.GameService)
	questionHandler := handler.NewQuestionHandler(cfg.GameService)
	gameHandler := handler.NewGameHandler(cfg.GameService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, apiPanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	// Session and player routes
	api.HandleFunc("/sessions", playerHandler.OpenSession).Methods(http.MethodPost)
	api.HandleFunc("/players/{username}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{username}/share", playerHandler.Share).Methods(http.MethodGet)
	api.HandleFunc("/players/{username}/answers", gameHandler.SubmitAnswer).Methods(http.MethodPost)

	// Question bank routes
	api.HandleFunc("/categories", questionHandler.Categories).Methods(http.MethodGet)
	api.HandleFunc("/questions", questionHandler.Draw).Methods(http.MethodGet)

	// Projections
	api.HandleFunc("/leaderboard", gameHandler.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/visitors", gameHandler.Visitors).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
