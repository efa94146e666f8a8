package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/obedfeni/dailytrivia/internal/dependencies/clock"
	"github.com/obedfeni/dailytrivia/internal/model"
	"github.com/obedfeni/dailytrivia/internal/services/leaderboard"
	"github.com/obedfeni/dailytrivia/internal/services/playerstore"
	"github.com/obedfeni/dailytrivia/internal/services/questions"
	"github.com/obedfeni/dailytrivia/internal/services/session"
)

// Service is the collaborator-facing facade the UI layer talks to. It is
// stateless between calls except for the durable store: every operation is
// one load, an in-memory transition, and at most one save.
type Service struct {
	store     *playerstore.Service
	session   *session.Service
	questions *questions.Service
	clock     clock.Clock
	logger    *slog.Logger
}

// New creates the game facade
func New(
	store *playerstore.Service,
	sess *session.Service,
	qs *questions.Service,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		store:     store,
		session:   sess,
		questions: qs,
		clock:     clk,
		logger:    logger,
	}
}

// SubmitResult is the outcome of one answered question.
type SubmitResult struct {
	Correct   bool
	NewScore  int
	NewStreak int
	Remaining int
}

// OpenSession loads or creates the record for username and reports how many
// plays it has left today. First contact counts a new visitor and is
// persisted immediately.
func (s *Service) OpenSession(ctx context.Context, username string) (*model.PlayerRecord, int) {
	snap := s.store.Load(ctx)
	now := s.clock.Now()

	rec, created := s.store.GetOrCreate(snap, username, now)
	if created {
		if err := s.store.Save(ctx, snap); err != nil {
			// Best-effort persistence: the session continues either way.
			s.logger.Warn("could not persist new player",
				slog.String("username", username),
				slog.String("error", err.Error()),
			)
		}
	}

	return rec.Clone(), s.session.RemainingPlays(rec, model.DateOf(now))
}

// GetPlayer returns the record for a username already seen.
func (s *Service) GetPlayer(ctx context.Context, username string) (*model.PlayerRecord, int, error) {
	snap := s.store.Load(ctx)
	rec, ok := snap.Players[username]
	if !ok {
		return nil, 0, model.ErrPlayerNotFound
	}
	return rec.Clone(), s.session.RemainingPlays(rec, clock.Today(s.clock)), nil
}

// RemainingToday reports the plays left today for a username. Usernames
// never seen get the full daily allowance without creating a record.
func (s *Service) RemainingToday(ctx context.Context, username string) int {
	snap := s.store.Load(ctx)
	rec, ok := snap.Players[username]
	if !ok {
		return s.session.PlaysPerDay()
	}
	return s.session.RemainingPlays(rec, clock.Today(s.clock))
}

// SubmitAnswer records one answered question for username. It refuses with
// model.ErrDailyLimitReached once today's plays are spent; a failed save is
// logged and absorbed, favoring availability over strict durability.
func (s *Service) SubmitAnswer(ctx context.Context, username string, ans session.Answer) (SubmitResult, error) {
	snap := s.store.Load(ctx)
	now := s.clock.Now()
	today := model.DateOf(now)

	rec, _ := s.store.GetOrCreate(snap, username, now)
	if s.session.RemainingPlays(rec, today) <= 0 {
		return SubmitResult{}, model.ErrDailyLimitReached
	}

	correct := s.session.RecordAnswer(rec, today, ans)

	if err := s.store.Save(ctx, snap); err != nil {
		s.logger.Warn("could not persist answer",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
	}

	s.logger.Info("answer recorded",
		slog.String("username", username),
		slog.String("category", ans.Category),
		slog.Bool("correct", correct),
		slog.Int("score", rec.Score),
		slog.Int("streak", rec.Streak),
	)

	return SubmitResult{
		Correct:   correct,
		NewScore:  rec.Score,
		NewStreak: rec.Streak,
		Remaining: s.session.RemainingPlays(rec, today),
	}, nil
}

// DrawQuestion picks a question from the bank for the given category.
func (s *Service) DrawQuestion(category string) (model.Question, error) {
	return s.questions.Draw(category)
}

// ResolveQuestion looks up a previously drawn question by category and ID.
func (s *Service) ResolveQuestion(category, id string) (model.Question, error) {
	return s.questions.Find(category, id)
}

// Categories lists the playable question categories.
func (s *Service) Categories() []string {
	return s.questions.Categories()
}

// Leaderboard returns the top players by score. A negative limit means all.
func (s *Service) Leaderboard(ctx context.Context, limit int) []leaderboard.Entry {
	return leaderboard.Top(s.store.Load(ctx), limit)
}

// TotalVisitors returns the global visit counter.
func (s *Service) TotalVisitors(ctx context.Context) int {
	return s.store.Load(ctx).Visitors
}

// ShareText renders the copyable results blurb shown to players who have
// used up today's questions.
func (s *Service) ShareText(ctx context.Context, username string) (string, error) {
	snap := s.store.Load(ctx)
	rec, ok := snap.Players[username]
	if !ok {
		return "", model.ErrPlayerNotFound
	}

	return fmt.Sprintf(
		"I just played Daily Trivia!\nScore: %d pts\nStreak: %d days\nDate: %s\n",
		rec.Score, rec.Streak, clock.Today(s.clock),
	), nil
}
