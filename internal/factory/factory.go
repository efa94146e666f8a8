package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/obedfeni/dailytrivia/internal/dependencies/clock"
	"github.com/obedfeni/dailytrivia/internal/dependencies/random"
	"github.com/obedfeni/dailytrivia/internal/services/game"
	"github.com/obedfeni/dailytrivia/internal/services/playerstore"
	"github.com/obedfeni/dailytrivia/internal/services/questions"
	"github.com/obedfeni/dailytrivia/internal/services/session"
	"github.com/obedfeni/dailytrivia/internal/storage"
	filestorage "github.com/obedfeni/dailytrivia/internal/storage/file"
	"github.com/obedfeni/dailytrivia/internal/storage/memory"
	redisstorage "github.com/obedfeni/dailytrivia/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeFile   = "file"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	PlayerStore     *playerstore.Service
	SessionService  *session.Service
	QuestionService *questions.Service
	GameService     *game.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("file", "memory" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// DataFile is the JSON document path (required for the file backend)
	DataFile string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Session tunes the daily-play state machine; zero fields use defaults
	Session session.Config
	// QuestionsPath optionally replaces the compiled-in question bank
	QuestionsPath string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	var store storage.Storage
	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeFile:
		if cfg.DataFile == "" {
			return nil, errors.New("DataFile required when StorageType is file")
		}
		store = filestorage.New(cfg.DataFile)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'file', 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), cfg.Session, logger)

	if cfg.QuestionsPath != "" {
		if err := app.QuestionService.LoadFromFile(cfg.QuestionsPath); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, sessCfg session.Config, logger *slog.Logger) *App {
	playerStore := playerstore.New(store, logger)
	sessionService := session.New(sessCfg)
	questionService := questions.New(rnd, logger)
	gameService := game.New(playerStore, sessionService, questionService, clk, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		PlayerStore:     playerStore,
		SessionService:  sessionService,
		QuestionService: questionService,
		GameService:     gameService,
	}
}
