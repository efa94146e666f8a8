package questions

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/obedfeni/dailytrivia/internal/dependencies/mocks"
	"github.com/obedfeni/dailytrivia/internal/model"
	"github.com/obedfeni/dailytrivia/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random, testutil.NopLogger())
}

func (s *ServiceSuite) TestDefaultBankCategories() {
	cats := s.service.Categories()
	s.Contains(cats, "Science & STEM")
	s.Contains(cats, "Geography")
	s.Contains(cats, PuzzleCategory)
	// The generated puzzle category comes last.
	s.Equal(PuzzleCategory, cats[len(cats)-1])
}

func (s *ServiceSuite) TestDrawUnknownCategory() {
	_, err := s.service.Draw("Sports")
	s.ErrorIs(err, model.ErrCategoryNotFound)
}

func (s *ServiceSuite) TestDrawReturnsBankQuestion() {
	q, err := s.service.Draw("Geography")
	s.Require().NoError(err)

	s.Equal("Geography", q.Category)
	s.Equal(model.QuestionFreeText, q.Kind)
	s.NotEmpty(q.Prompt)
}

func (s *ServiceSuite) TestDrawShufflesWithoutChangingOptions() {
	q, err := s.service.Draw("Science & STEM")
	s.Require().NoError(err)

	orig, err := s.service.Find("Science & STEM", q.ID)
	s.Require().NoError(err)

	s.ElementsMatch(orig.Options, q.Options)
	s.Contains(q.Options, q.Answer)
}

func (s *ServiceSuite) TestDrawDoesNotMutateBank() {
	s.random.QueueIntn(0, 3, 2, 1)
	first, err := s.service.Draw("Science & STEM")
	s.Require().NoError(err)

	stored, err := s.service.Find("Science & STEM", first.ID)
	s.Require().NoError(err)

	// The stored question keeps its canonical option order.
	s.Equal([]string{"Water", "Oxygen", "Hydrogen", "Salt"}, stored.Options)
}

func (s *ServiceSuite) TestDrawPuzzleQuestion() {
	q, err := s.service.Draw(PuzzleCategory)
	s.Require().NoError(err)

	s.Equal(PuzzleCategory, q.Category)
	s.Equal(model.QuestionMultipleChoice, q.Kind)
	s.NotEmpty(q.Answer)
	s.Contains(q.Options, q.Answer)
	s.Len(q.Options, distractorCount+1)
}

func (s *ServiceSuite) TestFindPuzzleByID() {
	s.service.LoadBank(nil, []model.WordHint{
		{Word: "CAT", Hint: "Likes to chase mice"},
		{Word: "CAR", Hint: "Has four wheels"},
		{Word: "CAP", Hint: "Worn on the head"},
		{Word: "COW", Hint: "Gives milk"},
	})

	q, err := s.service.Find(PuzzleCategory, "puzzle-cat")
	s.Require().NoError(err)
	s.Equal("CAT", q.Answer)
	s.Equal("Likes to chase mice", q.Prompt)
}

func (s *ServiceSuite) TestFindUnknownQuestion() {
	_, err := s.service.Find("Geography", "geography-99")
	s.ErrorIs(err, model.ErrQuestionNotFound)

	_, err = s.service.Find(PuzzleCategory, "puzzle-xylophone")
	s.ErrorIs(err, model.ErrQuestionNotFound)
}

// Distractor pool tiers

func (s *ServiceSuite) wordsOnly(words ...string) {
	hints := make([]model.WordHint, len(words))
	for i, w := range words {
		hints[i] = model.WordHint{Word: w, Hint: w}
	}
	s.service.LoadBank(nil, hints)
}

func (s *ServiceSuite) TestDistractorsPreferSameFirstLetterAndLength() {
	s.wordsOnly("CAR", "CAP", "COW", "DOG", "PIG", "HEN")

	opts := s.service.BuildOptions("CAT")

	s.Len(opts, 4)
	s.Contains(opts, "CAT")
	for _, o := range opts {
		if o != "CAT" {
			s.Equal(byte('C'), o[0])
		}
	}
}

func (s *ServiceSuite) TestDistractorsWidenToLengthPool() {
	// Only two C-words: the tight pool cannot fill three distractors.
	s.wordsOnly("CAR", "CAP", "DOG", "PIG", "ELEPHANT")

	opts := s.service.BuildOptions("CAT")

	s.Len(opts, 4)
	s.Contains(opts, "CAT")
	s.NotContains(opts, "ELEPHANT")
}

func (s *ServiceSuite) TestDistractorsFallBackToFullPool() {
	s.wordsOnly("ELEPHANT", "BUTTERFLY")

	opts := s.service.BuildOptions("CAT")

	s.ElementsMatch([]string{"CAT", "ELEPHANT", "BUTTERFLY"}, opts)
}

func (s *ServiceSuite) TestDistractorsNeverIncludeTheAnswer() {
	s.wordsOnly("CAT", "CAR", "CAP", "COW")

	opts := s.service.BuildOptions("CAT")

	count := 0
	for _, o := range opts {
		if o == "CAT" {
			count++
		}
	}
	s.Equal(1, count)
}

// Bank loading

func (s *ServiceSuite) TestLoadFromFile() {
	bank := bankFile{
		Questions: []model.Question{
			{Category: "Movies", Prompt: "Best trilogy?", Kind: model.QuestionFreeText, Answer: "Lord of the Rings"},
		},
		Words: []model.WordHint{{Word: "POPCORN", Hint: "Cinema snack"}},
	}
	data, err := json.Marshal(bank)
	s.Require().NoError(err)

	path := filepath.Join(s.T().TempDir(), "bank.json")
	s.Require().NoError(os.WriteFile(path, data, 0o644))

	s.Require().NoError(s.service.LoadFromFile(path))
	s.Equal([]string{"Movies", PuzzleCategory}, s.service.Categories())

	q, err := s.service.Find("Movies", "q-1")
	s.Require().NoError(err)
	s.Equal("Lord of the Rings", q.Answer)
}

func (s *ServiceSuite) TestLoadFromFileRejectsEmptyBank() {
	path := filepath.Join(s.T().TempDir(), "bank.json")
	s.Require().NoError(os.WriteFile(path, []byte(`{}`), 0o644))

	s.ErrorIs(s.service.LoadFromFile(path), model.ErrBankEmpty)
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	s.Error(s.service.LoadFromFile(filepath.Join(s.T().TempDir(), "nope.json")))
}
