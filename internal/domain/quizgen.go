package domain

import "context"

// QuizGenerationService defines the interface for generating a quiz from
// article text. Implementations call an external model with a prompt that
// constrains the response to the Quiz JSON shape and must return a Quiz
// that passes Validate.
type QuizGenerationService interface {
	GenerateQuiz(ctx context.Context, articleText string, title string) (*Quiz, error)
}
