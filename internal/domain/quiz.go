package domain

import (
	"fmt"
	"time"
)

const (
	MinQuestions     = 5
	MaxQuestions     = 10
	OptionsPerQuiz   = 4
	MinRelatedTopics = 3
	MaxRelatedTopics = 5
)

// QuizQuestion represents a single multiple-choice question
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Difficulty  string   `json:"difficulty"`
	Explanation string   `json:"explanation"`
}

// Validate checks the structural invariants of a single question
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return NewSchemaValidationError("question text is empty")
	}
	if len(q.Options) != OptionsPerQuiz {
		return NewSchemaValidationError(fmt.Sprintf(
			"question %q has %d options, expected exactly %d", q.Question, len(q.Options), OptionsPerQuiz))
	}
	seen := make(map[string]bool, OptionsPerQuiz)
	answerMatches := false
	for _, opt := range q.Options {
		if seen[opt] {
			return NewSchemaValidationError(fmt.Sprintf("question %q has duplicate option %q", q.Question, opt))
		}
		seen[opt] = true
		if opt == q.Answer {
			answerMatches = true
		}
	}
	if !answerMatches {
		return NewSchemaValidationError(fmt.Sprintf(
			"question %q answer %q does not match any option", q.Question, q.Answer))
	}
	switch q.Difficulty {
	case "easy", "medium", "hard":
	default:
		return NewSchemaValidationError(fmt.Sprintf(
			"question %q has invalid difficulty %q", q.Question, q.Difficulty))
	}
	if q.Explanation == "" {
		return NewSchemaValidationError(fmt.Sprintf("question %q has no explanation", q.Question))
	}
	return nil
}

// Quiz represents a generated quiz with its metadata
type Quiz struct {
	Questions     []QuizQuestion      `json:"quiz"`
	RelatedTopics []string            `json:"related_topics"`
	KeyEntities   map[string][]string `json:"key_entities"`
}

// Validate checks the structural invariants the LLM output must satisfy.
// Violations are never coerced; the caller surfaces them as-is.
func (q *Quiz) Validate() error {
	if len(q.Questions) < MinQuestions || len(q.Questions) > MaxQuestions {
		return NewSchemaValidationError(fmt.Sprintf(
			"quiz has %d questions, expected between %d and %d", len(q.Questions), MinQuestions, MaxQuestions))
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return err
		}
	}
	if len(q.RelatedTopics) < MinRelatedTopics || len(q.RelatedTopics) > MaxRelatedTopics {
		return NewSchemaValidationError(fmt.Sprintf(
			"quiz has %d related topics, expected between %d and %d",
			len(q.RelatedTopics), MinRelatedTopics, MaxRelatedTopics))
	}
	if len(q.KeyEntities) == 0 {
		return NewSchemaValidationError("quiz has no key entities")
	}
	return nil
}

// QuizRecord is the persisted unit combining a generated quiz with its
// source URL, title, summary, section list, id and creation timestamp.
// Records are immutable once created.
type QuizRecord struct {
	ID            string
	InputURL      string
	Title         string
	Summary       string
	Sections      []string
	Questions     []QuizQuestion
	RelatedTopics []string
	KeyEntities   map[string][]string
	CreatedAt     time.Time
}

// NewQuizRecord assembles an unsaved record from a fetched article and a
// validated quiz. ID and CreatedAt are assigned by the repository.
func NewQuizRecord(article *Article, quiz *Quiz) *QuizRecord {
	return &QuizRecord{
		InputURL:      article.URL,
		Title:         article.Title,
		Summary:       article.Summary,
		Sections:      article.Sections,
		Questions:     quiz.Questions,
		RelatedTopics: quiz.RelatedTopics,
		KeyEntities:   quiz.KeyEntities,
	}
}

// QuizRecordSummary is the listing projection of a record. The full
// question payload is only loaded via GetByID.
type QuizRecordSummary struct {
	ID        string
	InputURL  string
	Title     string
	CreatedAt time.Time
}
