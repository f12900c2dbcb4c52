package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/quizclash/internal/quiz"
	"github.com/abhisek/quizclash/internal/rating"
)

const systemPrompt = `You are a high-level knowledge testing AI creating trivia questions.

Rules:
- Generate exactly 5 multiple-choice questions for each requested topic.
- OBJECTIVITY RULE: all questions must be based on UNDISPUTED FACTS and HARD DATA.
  Do not ask for subjective opinions, moral judgments, or ambiguous interpretations
  (avoid "Who is the best...", "What is the most important...").
- The correct answer must be verifiable in a standard encyclopedia.
- Provide exactly 4 options per question where exactly one is correct.
- The correctAnswer field must match one option verbatim.
- The context field holds a short, interesting fact explaining the answer.`

const translateSystemPrompt = `You are a translation engine for a quiz database.

Rules:
- Translate question, options, correctAnswer, and context naturally.
- Keep every id exactly as given.
- Ensure correctAnswer matches the translation used in options.
- Return the same number of questions in the same order.`

// languageNames maps language codes to display names for prompts.
var languageNames = map[quiz.Language]string{
	quiz.LangEnglish:  "English",
	quiz.LangKorean:   "Korean (한국어)",
	quiz.LangJapanese: "Japanese (日本語)",
	quiz.LangSpanish:  "Spanish (Español)",
	quiz.LangFrench:   "French (Français)",
	quiz.LangChinese:  "Chinese Simplified (简体中文)",
}

// LanguageName returns the prompt-facing name for a language code.
func LanguageName(lang quiz.Language) string {
	if n, ok := languageNames[lang]; ok {
		return n
	}
	return string(lang)
}

// buildBatchMessage constructs the user message for batch generation.
func buildBatchMessage(in BatchInput) string {
	ids := make([]string, 0, len(in.Topics))
	for _, t := range in.Topics {
		ids = append(ids, t.Topic.StableID)
	}

	var b strings.Builder

	idsJSON, _ := json.Marshal(ids)
	fmt.Fprintf(&b, "Generate 5 multiple-choice questions for EACH of these topics: %s\n\n", idsJSON)
	fmt.Fprintf(&b, "Base difficulty: %s\n", in.Difficulty)
	fmt.Fprintf(&b, "Language: generate content in %s ONLY.\n", LanguageName(in.Language))

	audience := in.AgeGroup
	if audience == "" {
		audience = "General"
	}
	fmt.Fprintf(&b, "Target audience: %s\n", audience)

	b.WriteString("\nUser adaptation profile:\n")
	for _, t := range in.Topics {
		level := rating.LevelFor(t.Rating)
		fmt.Fprintf(&b, "- %s: knowledge level %s (rating %d)\n", t.Topic.StableID, level, t.Rating)
	}

	fmt.Fprintf(&b, "\nReturn a JSON object keyed by the exact topic names provided (%s).\n", strings.Join(ids, ", "))

	return b.String()
}

// buildTranslateMessage constructs the user message for set translation.
func buildTranslateMessage(records []quiz.QuestionRecord, lang quiz.Language) string {
	src, _ := json.Marshal(records)

	var b strings.Builder
	fmt.Fprintf(&b, "Translate these quiz questions from English to %s.\n\n", LanguageName(lang))
	b.WriteString("INPUT:\n")
	b.Write(src)
	return b.String()
}
