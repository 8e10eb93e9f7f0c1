package dto

import (
	"time"
	"wikiquiz/internal/domain"
)

// GenerateQuizRequest is the request body for quiz generation
type GenerateQuizRequest struct {
	InputURL string `json:"input_url"`
}

// QuizQuestionResponse represents one multiple-choice question in the API response
type QuizQuestionResponse struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Difficulty  string   `json:"difficulty"`
	Explanation string   `json:"explanation"`
}

// QuizRecordResponse represents a full persisted quiz in the API response
type QuizRecordResponse struct {
	ID            string                 `json:"id"`
	InputURL      string                 `json:"input_url"`
	Title         string                 `json:"title"`
	Summary       string                 `json:"summary"`
	Sections      []string               `json:"sections"`
	Quiz          []QuizQuestionResponse `json:"quiz"`
	RelatedTopics []string               `json:"related_topics"`
	KeyEntities   map[string][]string    `json:"key_entities"`
	CreatedAt     string                 `json:"created_at"`
}

// QuizHistoryItemResponse represents one entry of the quiz history listing
type QuizHistoryItemResponse struct {
	ID        string `json:"id"`
	InputURL  string `json:"input_url"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

// HealthResponse is the health check body
type HealthResponse struct {
	Message string `json:"message"`
}

// FromDomainQuizRecord maps a domain record to its API representation
func FromDomainQuizRecord(record *domain.QuizRecord) *QuizRecordResponse {
	questions := make([]QuizQuestionResponse, 0, len(record.Questions))
	for _, q := range record.Questions {
		questions = append(questions, QuizQuestionResponse{
			Question:    q.Question,
			Options:     q.Options,
			Answer:      q.Answer,
			Difficulty:  q.Difficulty,
			Explanation: q.Explanation,
		})
	}
	return &QuizRecordResponse{
		ID:            record.ID,
		InputURL:      record.InputURL,
		Title:         record.Title,
		Summary:       record.Summary,
		Sections:      record.Sections,
		Quiz:          questions,
		RelatedTopics: record.RelatedTopics,
		KeyEntities:   record.KeyEntities,
		CreatedAt:     record.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainQuizRecordSummary maps a domain summary to its API representation
func FromDomainQuizRecordSummary(summary *domain.QuizRecordSummary) *QuizHistoryItemResponse {
	return &QuizHistoryItemResponse{
		ID:        summary.ID,
		InputURL:  summary.InputURL,
		Title:     summary.Title,
		CreatedAt: summary.CreatedAt.Format(time.RFC3339),
	}
}
