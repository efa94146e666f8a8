package session

import (
	"strings"

	"github.com/obedfeni/dailytrivia/internal/model"
)

// Config tunes the daily-play state machine.
type Config struct {
	// PlaysPerDay caps how many answers are credited per calendar day.
	PlaysPerDay int
	// PointsPerCorrect is the fixed award for a correct answer.
	PointsPerCorrect int
}

// DefaultConfig returns the stock game tuning
func DefaultConfig() Config {
	return Config{
		PlaysPerDay:      3,
		PointsPerCorrect: 10,
	}
}

// Answer describes one submitted answer to be recorded against a record.
type Answer struct {
	Category string
	Kind     model.QuestionKind
	Choice   string

	// Correct is the question's correct value. Empty means the prompt has
	// no scored answer: the outcome is neutral, never right or wrong.
	Correct string
}

// Service is the daily-play/streak/scoring state machine. It is pure logic
// over a record and a date; persistence is the caller's concern.
type Service struct {
	cfg Config
}

// New creates a session service, filling unset config fields from defaults
func New(cfg Config) *Service {
	def := DefaultConfig()
	if cfg.PlaysPerDay <= 0 {
		cfg.PlaysPerDay = def.PlaysPerDay
	}
	if cfg.PointsPerCorrect <= 0 {
		cfg.PointsPerCorrect = def.PointsPerCorrect
	}
	return &Service{cfg: cfg}
}

// PlaysPerDay returns the configured daily cap
func (s *Service) PlaysPerDay() int {
	return s.cfg.PlaysPerDay
}

// RemainingPlays reports how many plays the record has left today. A record
// last played on a different day counts as zero plays so far; that reset is
// lazy and is not written back until RecordAnswer runs.
func (s *Service) RemainingPlays(rec *model.PlayerRecord, today model.GameDate) int {
	count := rec.TodayCount
	if rec.LastPlayed != today {
		count = 0
	}
	if remaining := s.cfg.PlaysPerDay - count; remaining > 0 {
		return remaining
	}
	return 0
}

// RecordAnswer applies one answered question to the record and reports
// whether it was correct. It does not enforce the daily cap; callers check
// RemainingPlays first.
func (s *Service) RecordAnswer(rec *model.PlayerRecord, today model.GameDate, ans Answer) bool {
	if rec.LastPlayed != today {
		rec.TodayCount = 0
	}

	correct := matches(ans)
	if correct {
		rec.Score += s.cfg.PointsPerCorrect
		if ans.Category != "" {
			if rec.CategoryScores == nil {
				rec.CategoryScores = make(map[string]int)
			}
			rec.CategoryScores[ans.Category] += s.cfg.PointsPerCorrect
		}
	}

	rec.TodayCount++

	// Streak transition reads LastPlayed from before this play overwrites
	// it. A record that was neither played yesterday nor making its first
	// play of the day keeps its streak unchanged.
	switch {
	case rec.LastPlayed == today.AddDays(-1):
		rec.Streak++
	case rec.TodayCount == 1:
		rec.Streak = 1
	}

	rec.LastPlayed = today
	return correct
}

// matches compares a choice against the correct answer per question kind.
func matches(ans Answer) bool {
	if ans.Correct == "" {
		return false
	}
	if ans.Kind == model.QuestionFreeText {
		return strings.EqualFold(strings.TrimSpace(ans.Choice), strings.TrimSpace(ans.Correct))
	}
	return ans.Choice == ans.Correct
}
