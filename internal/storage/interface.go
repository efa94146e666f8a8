package storage

import (
	"context"

	"github.com/obedfeni/dailytrivia/internal/model"
)

// Storage persists the whole player store as a single document. Saves
// overwrite the previous document in full, so concurrent writers degrade to
// last-writer-wins; callers needing stronger guarantees must serialize
// externally.
type Storage interface {
	// Load returns the stored snapshot, or model.ErrSnapshotNotFound when
	// nothing has been saved yet.
	Load(ctx context.Context) (*model.Snapshot, error)

	// Save durably writes the entire snapshot, replacing any prior content.
	// Saving the same snapshot twice yields the same durable state.
	Save(ctx context.Context, snap *model.Snapshot) error
}
