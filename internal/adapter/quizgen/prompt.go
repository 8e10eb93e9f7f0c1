package quizgen

import "fmt"

const quizPromptTemplate = `You are an expert educational content generator. Your task is to analyze the provided Wikipedia article text
and generate a comprehensive, factual quiz and relevant metadata.

**INSTRUCTIONS:**
1. Generate exactly 5 to 10 multiple-choice questions (MCQs).
2. Each question MUST have exactly four options (A, B, C, D).
3. The correct 'answer' field MUST match one of the option texts exactly.
4. Each question MUST have a 'difficulty' of "easy", "medium" or "hard".
5. The 'explanation' must be grounded ONLY in the provided article text.
6. Extract 3-5 key entities organized by categories like 'people', 'organizations', and 'locations'.
7. Suggest 3-5 'related_topics' for further reading based on the main subject.

Respond with ONLY a single JSON object in the following format, with no text outside the JSON:
{
  "quiz": [
    {
      "question": "<question text>",
      "options": ["<option A>", "<option B>", "<option C>", "<option D>"],
      "answer": "<text of the correct option, verbatim>",
      "difficulty": "<easy | medium | hard>",
      "explanation": "<short justification grounded in the article>"
    }
  ],
  "related_topics": ["<topic>", "<topic>", "<topic>"],
  "key_entities": {
    "people": ["<name>"],
    "organizations": ["<name>"],
    "locations": ["<name>"]
  }
}

**ARTICLE TEXT:**
---
%s
---

**QUIZ TOPIC:** %s
`

// BuildQuizPrompt renders the fixed instructional template with the article
// text and title. Pure and deterministic given its inputs.
func BuildQuizPrompt(articleText, title string) string {
	return fmt.Sprintf(quizPromptTemplate, articleText, title)
}
