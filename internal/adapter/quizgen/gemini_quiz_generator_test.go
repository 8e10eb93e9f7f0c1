package quizgen

import (
	"encoding/json"
	"fmt"
	"testing"
	"wikiquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuizJSON(numQuestions int) string {
	quiz := map[string]interface{}{
		"related_topics": []string{"Cryptography", "Enigma machine", "Computability theory"},
		"key_entities": map[string][]string{
			"people": {"Alan Turing", "Alonzo Church"},
		},
	}
	questions := make([]map[string]interface{}, 0, numQuestions)
	for i := 0; i < numQuestions; i++ {
		questions = append(questions, map[string]interface{}{
			"question":    fmt.Sprintf("Question %d?", i),
			"options":     []string{"A", "B", "C", "D"},
			"answer":      "B",
			"difficulty":  "medium",
			"explanation": "Stated in the article.",
		})
	}
	quiz["quiz"] = questions
	data, _ := json.Marshal(quiz)
	return string(data)
}

func TestParseQuizResponse(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		quiz, err := parseQuizResponse(validQuizJSON(5))
		require.NoError(t, err)
		assert.Len(t, quiz.Questions, 5)
		assert.Equal(t, "B", quiz.Questions[0].Answer)
		assert.Len(t, quiz.RelatedTopics, 3)
	})

	t.Run("markdown fenced JSON", func(t *testing.T) {
		raw := "```json\n" + validQuizJSON(7) + "\n```"
		quiz, err := parseQuizResponse(raw)
		require.NoError(t, err)
		assert.Len(t, quiz.Questions, 7)
	})

	t.Run("surrounding prose is tolerated", func(t *testing.T) {
		raw := "Here is your quiz:\n" + validQuizJSON(5) + "\nEnjoy!"
		quiz, err := parseQuizResponse(raw)
		require.NoError(t, err)
		assert.Len(t, quiz.Questions, 5)
	})

	t.Run("too few questions is rejected, never truncated", func(t *testing.T) {
		_, err := parseQuizResponse(validQuizJSON(3))
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeSchemaValidation, domainErr.Code)
	})

	t.Run("too many questions is rejected", func(t *testing.T) {
		_, err := parseQuizResponse(validQuizJSON(11))
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeSchemaValidation, domainErr.Code)
	})

	t.Run("no JSON object in response", func(t *testing.T) {
		_, err := parseQuizResponse("I could not generate a quiz for this article.")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeSchemaValidation, domainErr.Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := parseQuizResponse(`{"quiz": [}`)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeSchemaValidation, domainErr.Code)
	})

	t.Run("answer mismatch surfaces as schema violation", func(t *testing.T) {
		raw := validQuizJSON(5)
		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(raw), &payload))
		questions := payload["quiz"].([]interface{})
		questions[0].(map[string]interface{})["answer"] = "E"
		mutated, _ := json.Marshal(payload)

		_, err := parseQuizResponse(string(mutated))
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeSchemaValidation, domainErr.Code)
	})
}
