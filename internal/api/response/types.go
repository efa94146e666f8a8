package response

import (
	"github.com/obedfeni/dailytrivia/internal/model"
	"github.com/obedfeni/dailytrivia/internal/services/game"
	"github.com/obedfeni/dailytrivia/internal/services/leaderboard"
)

// Player represents a player record in API responses
type Player struct {
	Username       string         `json:"username"`
	Score          int            `json:"score"`
	Streak         int            `json:"streak"`
	LastPlayed     string         `json:"last_played,omitempty"`
	TodayCount     int            `json:"today_count"`
	CategoryScores map[string]int `json:"categories,omitempty"`
}

// PlayerFromModel converts a model.PlayerRecord to a response Player
func PlayerFromModel(username string, rec *model.PlayerRecord) Player {
	return Player{
		Username:       username,
		Score:          rec.Score,
		Streak:         rec.Streak,
		LastPlayed:     string(rec.LastPlayed),
		TodayCount:     rec.TodayCount,
		CategoryScores: rec.CategoryScores,
	}
}

// Session is returned when a play session is opened
type Session struct {
	SessionID string `json:"session_id"`
	Player    Player `json:"player"`
	Remaining int    `json:"remaining"`
}

// Question represents a drawn question. The answer is never included.
type Question struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Prompt   string   `json:"prompt"`
	Kind     string   `json:"kind"`
	Options  []string `json:"options,omitempty"`
}

// QuestionFromModel converts a model.Question to a response Question
func QuestionFromModel(q model.Question) Question {
	return Question{
		ID:       q.ID,
		Category: q.Category,
		Prompt:   q.Prompt,
		Kind:     string(q.Kind),
		Options:  q.Options,
	}
}

// SubmitAnswer is returned after recording an answer. CorrectAnswer is only
// set when the answer was wrong and the question had a scored answer.
type SubmitAnswer struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	NewScore      int    `json:"new_score"`
	NewStreak     int    `json:"new_streak"`
	Remaining     int    `json:"remaining"`
}

// SubmitAnswerFromResult converts a game.SubmitResult to a response
func SubmitAnswerFromResult(res game.SubmitResult, correctAnswer string) SubmitAnswer {
	out := SubmitAnswer{
		Correct:   res.Correct,
		NewScore:  res.NewScore,
		NewStreak: res.NewStreak,
		Remaining: res.Remaining,
	}
	if !res.Correct {
		out.CorrectAnswer = correctAnswer
	}
	return out
}

// LeaderboardEntry is one ranked row
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Score    int    `json:"score"`
	Streak   int    `json:"streak"`
}

// Leaderboard wraps the ranked rows
type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardFromEntries converts ranked entries to a response
func LeaderboardFromEntries(entries []leaderboard.Entry) Leaderboard {
	out := Leaderboard{Entries: make([]LeaderboardEntry, 0, len(entries))}
	for i, e := range entries {
		out.Entries = append(out.Entries, LeaderboardEntry{
			Rank:     i + 1,
			Username: e.Username,
			Score:    e.Record.Score,
			Streak:   e.Record.Streak,
		})
	}
	return out
}

// Categories lists the playable question categories
type Categories struct {
	Categories []string `json:"categories"`
}

// Visitors reports the global visit counter
type Visitors struct {
	Visitors int `json:"visitors"`
}

// Share carries the copyable results blurb
type Share struct {
	Text string `json:"text"`
}
