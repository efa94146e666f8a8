package leaderboard

import (
	"sort"

	"github.com/obedfeni/dailytrivia/internal/model"
)

// Entry pairs a username with its record for ranking views.
type Entry struct {
	Username string
	Record   *model.PlayerRecord
}

// Rank returns every player ordered by score descending. Ties keep the
// order players first joined; there is no secondary score key. Map
// iteration order is arbitrary, so join order is recovered first and the
// score sort is stable over it.
func Rank(snap *model.Snapshot) []Entry {
	entries := make([]Entry, 0, len(snap.Players))
	for name, rec := range snap.Players {
		entries = append(entries, Entry{Username: name, Record: rec})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Record.JoinedAt.Before(entries[j].Record.JoinedAt)
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Record.Score > entries[j].Record.Score
	})

	return entries
}

// Top returns the first limit entries of Rank. A negative limit means all.
func Top(snap *model.Snapshot, limit int) []Entry {
	entries := Rank(snap)
	if limit >= 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}
