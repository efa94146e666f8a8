package model

// QuestionKind selects how a submitted answer is matched against the
// correct one.
type QuestionKind string

const (
	// QuestionMultipleChoice questions compare the chosen option to the
	// answer by exact string equality.
	QuestionMultipleChoice QuestionKind = "multiple_choice"
	// QuestionFreeText questions compare case-insensitively after trimming
	// surrounding whitespace.
	QuestionFreeText QuestionKind = "free_text"
)

// Question is an immutable entry of the question bank. It is content, not
// player data: records never reference questions.
type Question struct {
	ID       string       `json:"id"`
	Category string       `json:"category"`
	Prompt   string       `json:"prompt"`
	Kind     QuestionKind `json:"kind"`
	Options  []string     `json:"options,omitempty"`

	// Answer is the correct value. Empty means the prompt has no scored
	// answer and always yields a neutral outcome.
	Answer string `json:"answer,omitempty"`
}

// WordHint is a word-puzzle entry: the hint is shown as the prompt and the
// word is the answer, with wrong options built from the rest of the pool.
type WordHint struct {
	Word string `json:"word"`
	Hint string `json:"hint"`
}
