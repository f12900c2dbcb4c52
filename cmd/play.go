package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/quizclash/internal/content"
	"github.com/abhisek/quizclash/internal/dataset"
	"github.com/abhisek/quizclash/internal/evaluate"
	"github.com/abhisek/quizclash/internal/quiz"
	"github.com/abhisek/quizclash/internal/quizgen"
	"github.com/abhisek/quizclash/internal/session"
	"github.com/abhisek/quizclash/internal/topics"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		in := bufio.NewReader(os.Stdin)

		lang := quiz.ParseLanguage(flagString(cmd, "lang"))
		difficulty, err := parseDifficulty(flagString(cmd, "difficulty"))
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		labels := splitTopics(flagString(cmd, "topics"))
		if len(labels) == 0 {
			labels, err = pickTopics(in, lang)
			if err != nil {
				return err
			}
		}
		requested := topics.ResolveAll(labels, lang)

		var engine *content.Engine
		var evaluator *evaluate.Evaluator
		provider := buildProvider(cmd, st.EventRepo())
		if provider != nil {
			gen := quizgen.New(provider, quizgen.DefaultConfig())
			engine = content.NewEngine(dataset.NewIndex(), st.CacheRepo(), gen)
			evaluator = evaluate.New(provider)
		} else {
			engine = content.NewEngine(dataset.NewIndex(), st.CacheRepo(), nil)
			evaluator = evaluate.New(nil)
		}

		sess := session.New(engine, evaluator, st.ProfileRepo(), st.EventRepo(), difficulty, lang, session.DefaultConfig())

		fmt.Println("Loading first topic...")
		if err := sess.Start(ctx, requested); err != nil {
			return err
		}

		for {
			fmt.Printf("\n=== %s ===\n", sess.CurrentTopic().DisplayLabel)

			done, err := playCurrentTopic(cmd, in, sess)
			if err != nil {
				return err
			}
			if done {
				break
			}

			fmt.Println("\nPreparing next topic...")
			if err := sess.NextTopic(ctx); err != nil {
				return err
			}
		}

		fmt.Println("\nEvaluating your session...")
		reports, err := sess.Finish(ctx)
		if err != nil {
			return err
		}
		printSummary(sess.BuildSummary())
		printReports(reports)
		return nil
	},
}

// playCurrentTopic runs the answer loop for the active topic and reports
// whether the session is finished.
func playCurrentTopic(cmd *cobra.Command, in *bufio.Reader, sess *session.Session) (bool, error) {
	for {
		q := sess.Current()
		if q == nil {
			return false, fmt.Errorf("no question available")
		}

		fmt.Printf("\n%s\n", q.Prompt)
		for i, opt := range q.Options {
			fmt.Printf("  %d. %s\n", i+1, opt)
		}

		choice, err := readChoice(in, "Your answer (1-4): ", len(q.Options))
		if err != nil {
			return false, err
		}

		res, err := sess.SubmitAnswer(cmd.Context(), q.Options[choice-1])
		if err != nil {
			return false, err
		}

		if res.Correct {
			fmt.Println("Correct!")
		} else {
			fmt.Println("Wrong.")
		}
		if res.Explanation != "" {
			fmt.Println(" ", res.Explanation)
		}

		if res.TopicDone {
			return res.SessionDone, nil
		}
	}
}

// pickTopics walks the category and subtopic menus.
func pickTopics(in *bufio.Reader, lang quiz.Language) ([]string, error) {
	fmt.Println("Categories:")
	for i, cat := range topics.Categories {
		fmt.Printf("  %d. %s\n", i+1, cat)
	}
	choice, err := readChoice(in, "Pick a category: ", len(topics.Categories))
	if err != nil {
		return nil, err
	}
	category := topics.Categories[choice-1]

	subs := topics.Subtopics(category, lang)
	if len(subs) == 0 {
		return nil, fmt.Errorf("no topics available for %s", category)
	}
	fmt.Printf("\nTopics in %s:\n", category)
	for i, sub := range subs {
		fmt.Printf("  %d. %s\n", i+1, sub)
	}
	fmt.Println("Pick up to 3, comma-separated (e.g. 1,3):")

	line, err := in.ReadString('\n')
	if err != nil {
		return nil, err
	}
	var picked []string
	for _, part := range strings.Split(strings.TrimSpace(line), ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > len(subs) {
			return nil, fmt.Errorf("invalid topic selection %q", strings.TrimSpace(part))
		}
		picked = append(picked, subs[n-1])
		if len(picked) == 3 {
			break
		}
	}
	if len(picked) == 0 {
		return nil, fmt.Errorf("no topics selected")
	}
	return picked, nil
}

func readChoice(in *bufio.Reader, prompt string, max int) (int, error) {
	for {
		fmt.Print(prompt)
		line, err := in.ReadString('\n')
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= max {
			return n, nil
		}
		fmt.Printf("Enter a number between 1 and %d.\n", max)
	}
}

func printSummary(sum *session.Summary) {
	fmt.Println()
	fmt.Println("Session Summary")
	fmt.Println(strings.Repeat("─", 44))
	for _, ts := range sum.TopicScores {
		fmt.Printf("  %-28s  %3d/100\n", ts.Label, ts.Score)
	}
	fmt.Println(strings.Repeat("─", 44))
	fmt.Printf("  Correct: %d/%d (%.0f%%)   AI benchmark: %d\n",
		sum.TotalCorrect, sum.TotalQuestions, sum.Accuracy*100, sum.AIBenchmark)
}

func printReports(reports []quiz.EvaluationResult) {
	for _, r := range reports {
		fmt.Println()
		fmt.Printf("%s — %d/100\n", r.Title, r.TotalScore)
		fmt.Printf("  Better than %d%% of players", r.HumanPercentile)
		if r.DemographicComment != "" {
			fmt.Printf(", %s", r.DemographicComment)
		}
		fmt.Println()
		if r.NarrativeComparison != "" {
			fmt.Printf("  %s\n", r.NarrativeComparison)
		}
		for _, pq := range r.PerQuestion {
			mark := "✓"
			if !pq.IsCorrect {
				mark = "✗"
			}
			fmt.Printf("  %s %s\n", mark, pq.Prompt)
			if pq.Commentary != "" {
				fmt.Printf("     %s\n", pq.Commentary)
			}
		}
	}
}

func parseDifficulty(s string) (quiz.Difficulty, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "MEDIUM":
		return quiz.DifficultyMedium, nil
	case "EASY":
		return quiz.DifficultyEasy, nil
	case "HARD":
		return quiz.DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (easy, medium, hard)", s)
	}
}

func splitTopics(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func init() {
	playCmd.Flags().StringP("difficulty", "d", "medium", "Base difficulty: easy, medium, hard")
	playCmd.Flags().StringP("lang", "l", "en", "Display language code (en, ko, ja, es, fr, zh)")
	playCmd.Flags().StringP("topics", "t", "", "Comma-separated topic labels (skips the menu)")
}
