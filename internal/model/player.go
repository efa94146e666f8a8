package model

import "time"

// PlayerRecord is the durable per-username state: total score, daily-play
// streak, today's play counter and the last day a play was recorded.
type PlayerRecord struct {
	Score      int      `json:"score"`
	LastPlayed GameDate `json:"last_played,omitempty"`
	Streak     int      `json:"streak"`
	TodayCount int      `json:"today_count"`

	// CategoryScores breaks the total down per question category.
	// Absent entries mean zero; the sum never exceeds Score.
	CategoryScores map[string]int `json:"categories,omitempty"`

	// JoinedAt is when the username was first seen. It materializes
	// insertion order so leaderboard tie-breaking survives a reload.
	JoinedAt time.Time `json:"joined_at"`
}

// NewPlayerRecord returns a fresh default record for a first-contact username.
func NewPlayerRecord(joinedAt time.Time) *PlayerRecord {
	return &PlayerRecord{JoinedAt: joinedAt}
}

// Clone returns a deep copy of the record.
func (r *PlayerRecord) Clone() *PlayerRecord {
	clone := *r
	if r.CategoryScores != nil {
		clone.CategoryScores = make(map[string]int, len(r.CategoryScores))
		for k, v := range r.CategoryScores {
			clone.CategoryScores[k] = v
		}
	}
	return &clone
}

// Snapshot is the entire persisted store: every player record keyed by its
// literal (case-sensitive) username, plus the global visitor counter.
// It is always loaded and saved as a single document.
type Snapshot struct {
	Players  map[string]*PlayerRecord `json:"players"`
	Visitors int                      `json:"visitors"`
}

// NewSnapshot returns an empty store.
func NewSnapshot() *Snapshot {
	return &Snapshot{Players: make(map[string]*PlayerRecord)}
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	clone := NewSnapshot()
	clone.Visitors = s.Visitors
	for name, rec := range s.Players {
		clone.Players[name] = rec.Clone()
	}
	return clone
}
