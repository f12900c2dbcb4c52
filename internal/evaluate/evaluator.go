// Package evaluate turns a session's answer batches into end-of-session
// reports. One LLM call analyzes every topic together; when the call
// fails, a deterministic local report keeps the session closable.
package evaluate

import (
	"encoding/json"
	"fmt"
	"strings"

	"context"

	"github.com/abhisek/quizclash/internal/llm"
	"github.com/abhisek/quizclash/internal/quiz"
	"github.com/abhisek/quizclash/internal/quizgen"
)

// Demographics is the player context woven into the analysis prompt.
type Demographics struct {
	AgeGroup    string
	Nationality string
}

// Evaluator produces evaluation reports through the LLM provider.
type Evaluator struct {
	provider  llm.Provider
	maxTokens int
}

// New creates an Evaluator with the given provider. A nil provider
// serves the local heuristic report exclusively.
func New(provider llm.Provider) *Evaluator {
	return &Evaluator{provider: provider, maxTokens: 4096}
}

// Evaluate analyzes every batch in one LLM call and returns one report
// per batch, in input order. A failed or malformed LLM response never
// surfaces as an error; the local heuristic report stands in instead.
func (e *Evaluator) Evaluate(ctx context.Context, batches []quiz.Batch, demo Demographics, lang quiz.Language) []quiz.EvaluationResult {
	if len(batches) == 0 {
		return nil
	}
	if e.provider == nil {
		return LocalReports(batches, lang)
	}

	results, err := e.evaluateLLM(ctx, batches, demo, lang)
	if err != nil {
		return LocalReports(batches, lang)
	}
	return results
}

func (e *Evaluator) evaluateLLM(ctx context.Context, batches []quiz.Batch, demo Demographics, lang quiz.Language) ([]quiz.EvaluationResult, error) {
	ctx = llm.WithPurpose(ctx, "evaluate")

	req := llm.Request{
		System: evalSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvalMessage(batches, demo, lang)},
		},
		Schema:    ReportSchema,
		MaxTokens: e.maxTokens,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Results []reportOutput `json:"results"`
	}
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, fmt.Errorf("parse evaluation response: %w", err)
	}
	if len(parsed.Results) != len(batches) {
		return nil, fmt.Errorf("evaluation returned %d reports, want %d", len(parsed.Results), len(batches))
	}

	out := make([]quiz.EvaluationResult, 0, len(batches))
	for i, res := range parsed.Results {
		out = append(out, mergeReport(&batches[i], &res, lang))
	}
	return out, nil
}

// reportOutput is the raw LLM response for one topic before merging.
type reportOutput struct {
	Title                 string `json:"title"`
	HumanPercentile       int    `json:"humanPercentile"`
	DemographicPercentile int    `json:"demographicPercentile"`
	DemographicComment    string `json:"demographicComment"`
	AIComparison          string `json:"aiComparison"`
	Details               []struct {
		QuestionID  int    `json:"questionId"`
		IsCorrect   bool   `json:"isCorrect"`
		AIComment   string `json:"aiComment"`
		CorrectFact string `json:"correctFact"`
	} `json:"details"`
}

// mergeReport joins the model's analysis with the recorded answers. The
// answers are the source of truth for correctness and text; only the
// commentary comes from the model, with placeholders where it skipped a
// question.
func mergeReport(batch *quiz.Batch, res *reportOutput, lang quiz.Language) quiz.EvaluationResult {
	perQuestion := make([]quiz.QuestionEval, 0, len(batch.Answers))
	for _, a := range batch.Answers {
		eval := quiz.QuestionEval{
			QuestionID:     a.QuestionID,
			IsCorrect:      a.IsCorrect,
			Prompt:         a.Prompt,
			SelectedOption: a.SelectedOption,
			CorrectOption:  a.CorrectOption,
			Commentary:     missingAnalysisText(lang),
			FactCheck:      "N/A",
		}
		for i := range res.Details {
			if res.Details[i].QuestionID == a.QuestionID {
				eval.Commentary = res.Details[i].AIComment
				eval.FactCheck = res.Details[i].CorrectFact
				break
			}
		}
		perQuestion = append(perQuestion, eval)
	}

	return quiz.EvaluationResult{
		TopicID:               batch.Topic.StableID,
		Title:                 res.Title,
		TotalScore:            batch.Score(),
		HumanPercentile:       res.HumanPercentile,
		DemographicPercentile: res.DemographicPercentile,
		NarrativeComparison:   res.AIComparison,
		DemographicComment:    res.DemographicComment,
		PerQuestion:           perQuestion,
	}
}

// LocalReports builds deterministic reports without the LLM: the score
// doubles as both percentiles and commentary falls back to placeholders.
func LocalReports(batches []quiz.Batch, lang quiz.Language) []quiz.EvaluationResult {
	out := make([]quiz.EvaluationResult, 0, len(batches))
	for i := range batches {
		b := &batches[i]
		score := b.Score()

		perQuestion := make([]quiz.QuestionEval, 0, len(b.Answers))
		for _, a := range b.Answers {
			perQuestion = append(perQuestion, quiz.QuestionEval{
				QuestionID:     a.QuestionID,
				IsCorrect:      a.IsCorrect,
				Prompt:         a.Prompt,
				SelectedOption: a.SelectedOption,
				CorrectOption:  a.CorrectOption,
				Commentary:     "N/A",
				FactCheck:      "N/A",
			})
		}

		out = append(out, quiz.EvaluationResult{
			TopicID:               b.Topic.StableID,
			Title:                 b.Topic.DisplayLabel,
			TotalScore:            score,
			HumanPercentile:       score,
			DemographicPercentile: score,
			NarrativeComparison:   "AI recalibrating...",
			DemographicComment:    localFallbackText(lang),
			PerQuestion:           perQuestion,
		})
	}
	return out
}

func missingAnalysisText(lang quiz.Language) string {
	if lang == quiz.LangKorean {
		return "분석 데이터 없음"
	}
	return "Analysis unavailable"
}

func localFallbackText(lang quiz.Language) string {
	if lang == quiz.LangKorean {
		return "서버 부하로 인해 로컬 분석으로 대체되었습니다."
	}
	return "Local analysis used due to server load."
}

const evalSystemPrompt = `You are an AI analyst evaluating human intelligence.
Analyze the player's performance across multiple topics and generate a separate report for EACH topic, in input order.

Rules:
- For the details array, give specific analysis for each question based on its text and the player's answer. Explain why an answer is wrong, or praise the insight behind a correct one.
- aiComparison and demographicComment should be creative and slightly provocative, playing up the human-versus-AI theme.
- Include questionId in every detail so it can be matched to the input.`

// buildEvalMessage renders the answer batches and player context.
func buildEvalMessage(batches []quiz.Batch, demo Demographics, lang quiz.Language) string {
	var b strings.Builder

	fmt.Fprintf(&b, "User context: age %s, nationality %s.\n", orGeneral(demo.AgeGroup), orGeneral(demo.Nationality))
	fmt.Fprintf(&b, "Language: %s (return ALL text in this language).\n\n", quizgen.LanguageName(lang))

	for _, batch := range batches {
		fmt.Fprintf(&b, "## Topic: %s (Score: %d/100)\n", batch.Topic.StableID, batch.Score())
		b.WriteString("Questions:\n")
		for _, a := range batch.Answers {
			result := "Incorrect"
			if a.IsCorrect {
				result = "Correct"
			}
			fmt.Fprintf(&b, "- Q%d: %q\n    User selected: %q\n    Correct answer: %q\n    Result: %s\n",
				a.QuestionID, a.Prompt, a.SelectedOption, a.CorrectOption, result)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func orGeneral(s string) string {
	if s == "" {
		return "General"
	}
	return s
}
