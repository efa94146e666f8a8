package playerstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/obedfeni/dailytrivia/internal/model"
	"github.com/obedfeni/dailytrivia/internal/storage"
)

// Service owns the durable username -> record mapping and the visitor
// counter. Each game action does one Load, mutates in memory, and one Save.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new PlayerStore service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Load returns the stored snapshot. Missing or unreadable state yields an
// empty store: a read failure must never block a player from playing.
func (s *Service) Load(ctx context.Context) *model.Snapshot {
	snap, err := s.storage.Load(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrSnapshotNotFound) {
			s.logger.Warn("player store unreadable, starting empty",
				slog.String("error", err.Error()),
			)
		}
		return model.NewSnapshot()
	}
	return snap
}

// Save writes the full snapshot, overwriting any prior content. The error is
// surfaced so the caller decides whether to absorb it.
func (s *Service) Save(ctx context.Context, snap *model.Snapshot) error {
	if err := s.storage.Save(ctx, snap); err != nil {
		return fmt.Errorf("saving player store: %w", err)
	}
	return nil
}

// GetOrCreate returns the record for username, inserting a fresh default on
// first contact. Creation counts the username as a new visitor: the counter
// increments once per distinct username ever seen. Keys are case-sensitive.
func (s *Service) GetOrCreate(snap *model.Snapshot, username string, now time.Time) (*model.PlayerRecord, bool) {
	if rec, ok := snap.Players[username]; ok {
		return rec, false
	}

	rec := model.NewPlayerRecord(now)
	snap.Players[username] = rec
	snap.Visitors++

	s.logger.Info("new player",
		slog.String("username", username),
		slog.Int("visitors", snap.Visitors),
	)
	return rec, true
}
