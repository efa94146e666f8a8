package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/obedfeni/dailytrivia/internal/api"
	"github.com/obedfeni/dailytrivia/internal/config"
	"github.com/obedfeni/dailytrivia/internal/factory"
	"github.com/obedfeni/dailytrivia/internal/services/session"
	redisstorage "github.com/obedfeni/dailytrivia/internal/storage/redis"
)

// newServeCmd builds the subcommand that runs the game server
func newServeCmd(configPath *string, port *int) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the trivia server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath string, portFlag int) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.Storage.Type,
		DataFile:    cfg.Storage.File.Path,
		Session: session.Config{
			PlaysPerDay:      cfg.Game.PlaysPerDay,
			PointsPerCorrect: cfg.Game.PointsPerCorrect,
		},
		QuestionsPath: cfg.Game.QuestionsPath,
	}

	if cfg.Storage.Type == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		if cfg.Storage.Redis.URL != "" {
			redisCfg.URL = cfg.Storage.Redis.URL
		}
		if cfg.Storage.Redis.PoolSize > 0 {
			redisCfg.PoolSize = cfg.Storage.Redis.PoolSize
		}
		if cfg.Storage.Redis.MinIdleConns > 0 {
			redisCfg.MinIdleConns = cfg.Storage.Redis.MinIdleConns
		}
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return err
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:      logger,
		GameService: app.GameService,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = cfg.Server.Port
	if portFlag > 0 {
		serverConfig.Port = portFlag
	}
	server := api.NewServer(router, serverConfig, logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			return err
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}
