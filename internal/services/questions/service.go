package questions

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/obedfeni/dailytrivia/internal/dependencies/random"
	"github.com/obedfeni/dailytrivia/internal/model"
)

// PuzzleCategory is the generated word-hint category. Its questions are not
// stored in the bank: each draw picks a word and builds options around it.
const PuzzleCategory = "Puzzle Words"

// puzzleIDPrefix namespaces generated puzzle question IDs.
const puzzleIDPrefix = "puzzle-"

// distractorCount is how many wrong options accompany a puzzle answer.
const distractorCount = 3

// Service is the question bank repository: fixed categories of compiled-in
// (or file-loaded) questions plus the generated word-puzzle category.
type Service struct {
	random random.Random
	logger *slog.Logger

	mu         sync.RWMutex
	categories []string
	banks      map[string][]model.Question
	words      []model.WordHint
}

// New creates a question service preloaded with the compiled-in bank
func New(rnd random.Random, logger *slog.Logger) *Service {
	s := &Service{
		random: rnd,
		logger: logger,
	}
	s.load(defaultBank(), defaultWords())
	return s
}

// bankFile is the on-disk layout for LoadFromFile.
type bankFile struct {
	Questions []model.Question `json:"questions"`
	Words     []model.WordHint `json:"words"`
}

// LoadFromFile replaces the bank with the contents of a JSON file.
func (s *Service) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var bf bankFile
	if err := json.Unmarshal(data, &bf); err != nil {
		return fmt.Errorf("parsing question bank %s: %w", path, err)
	}
	if len(bf.Questions) == 0 && len(bf.Words) == 0 {
		return model.ErrBankEmpty
	}

	s.load(bf.Questions, bf.Words)
	s.logger.Info("question bank loaded",
		slog.String("path", path),
		slog.Int("questions", len(bf.Questions)),
		slog.Int("words", len(bf.Words)),
	)
	return nil
}

// LoadBank replaces the bank directly (useful for testing)
func (s *Service) LoadBank(qs []model.Question, words []model.WordHint) {
	s.load(qs, words)
}

func (s *Service) load(qs []model.Question, words []model.WordHint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.banks = make(map[string][]model.Question)
	s.categories = nil
	for i, q := range qs {
		if q.ID == "" {
			q.ID = fmt.Sprintf("q-%d", i+1)
		}
		if q.Kind == "" {
			q.Kind = model.QuestionMultipleChoice
		}
		if _, ok := s.banks[q.Category]; !ok {
			s.categories = append(s.categories, q.Category)
		}
		s.banks[q.Category] = append(s.banks[q.Category], q)
	}

	s.words = words
	if len(words) > 0 {
		s.categories = append(s.categories, PuzzleCategory)
	}
}

// Categories returns all category names in bank order.
func (s *Service) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// Draw picks a random question from the category. Multiple-choice options
// come back shuffled; puzzle questions are generated from the word pool.
func (s *Service) Draw(category string) (model.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if category == PuzzleCategory && len(s.words) > 0 {
		wh := s.words[s.random.Intn(len(s.words))]
		return s.puzzleQuestion(wh), nil
	}

	bank, ok := s.banks[category]
	if !ok {
		return model.Question{}, model.ErrCategoryNotFound
	}

	q := bank[s.random.Intn(len(bank))]
	if len(q.Options) > 0 {
		opts := make([]string, len(q.Options))
		copy(opts, q.Options)
		random.Shuffle(s.random, opts)
		q.Options = opts
	}
	return q, nil
}

// Find resolves a previously drawn question by category and ID, so answer
// submission can recover the correct value. An ID that matches neither the
// bank nor the word pool is a content inconsistency, not a user error.
func (s *Service) Find(category, id string) (model.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if category == PuzzleCategory {
		word := strings.TrimPrefix(id, puzzleIDPrefix)
		for _, wh := range s.words {
			if strings.EqualFold(wh.Word, word) {
				return s.puzzleQuestion(wh), nil
			}
		}
		return model.Question{}, model.ErrQuestionNotFound
	}

	bank, ok := s.banks[category]
	if !ok {
		return model.Question{}, model.ErrCategoryNotFound
	}
	for _, q := range bank {
		if q.ID == id {
			return q, nil
		}
	}
	return model.Question{}, model.ErrQuestionNotFound
}

// puzzleQuestion builds a multiple-choice question around a word-hint entry.
// Callers hold at least a read lock.
func (s *Service) puzzleQuestion(wh model.WordHint) model.Question {
	return model.Question{
		ID:       puzzleIDPrefix + strings.ToLower(wh.Word),
		Category: PuzzleCategory,
		Prompt:   wh.Hint,
		Kind:     model.QuestionMultipleChoice,
		Options:  s.buildOptions(wh.Word),
		Answer:   wh.Word,
	}
}

// BuildOptions assembles the multiple-choice option set for a puzzle answer:
// sampled distractors plus the answer itself, in randomized order.
func (s *Service) BuildOptions(answer string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buildOptions(answer)
}

func (s *Service) buildOptions(answer string) []string {
	pool := s.distractorPool(answer)
	opts := random.Sample(s.random, pool, distractorCount)
	opts = append(opts, answer)
	random.Shuffle(s.random, opts)
	return opts
}

// distractorPool picks candidate wrong answers, preferring words that look
// like the answer and widening only when the tighter pool cannot fill the
// option set: same first letter within one length, then any word within one
// length, then the whole pool. The tier order affects perceived difficulty
// and must not change.
func (s *Service) distractorPool(answer string) []string {
	var tight, nearLength, all []string
	seen := make(map[string]struct{})

	for _, wh := range s.words {
		w := wh.Word
		if strings.EqualFold(w, answer) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}

		all = append(all, w)
		if lengthDiff(w, answer) <= 1 {
			nearLength = append(nearLength, w)
			if sameFirstLetter(w, answer) {
				tight = append(tight, w)
			}
		}
	}

	if len(tight) >= distractorCount {
		return tight
	}
	if len(nearLength) >= distractorCount {
		return nearLength
	}
	return all
}

func lengthDiff(a, b string) int {
	d := len(a) - len(b)
	if d < 0 {
		d = -d
	}
	return d
}

func sameFirstLetter(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a[:1], b[:1])
}
