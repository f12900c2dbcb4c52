package cmd

import (
	"fmt"

	"github.com/abhisek/quizclash/internal/dataset"
	"github.com/abhisek/quizclash/internal/quiz"
	"github.com/abhisek/quizclash/internal/quizgen"
	"github.com/abhisek/quizclash/internal/store"
	"github.com/abhisek/quizclash/internal/topics"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <category>",
	Short: "Pre-generate and cache question sets for a category",
	Long:  "Generates master-language question sets for every topic in a category and stores them in the local cache, so later sessions resolve without network calls.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := args[0]
		subs := topics.Subtopics(category, quiz.MasterLanguage)
		if len(subs) == 0 {
			return fmt.Errorf("unknown category %q", category)
		}
		difficulty, err := parseDifficulty(flagString(cmd, "difficulty"))
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider := buildProvider(cmd, st.EventRepo())
		if provider == nil {
			return fmt.Errorf("seeding requires an LLM provider")
		}
		gen := quizgen.New(provider, quizgen.DefaultConfig())

		// Topics the embedded bank already covers need no generation.
		bank := dataset.NewIndex()
		in := quizgen.BatchInput{
			Difficulty: difficulty,
			Language:   quiz.MasterLanguage,
		}
		for _, sub := range subs {
			topic := topics.Resolve(sub, quiz.MasterLanguage)
			if len(bank.Questions(topic.CategoryID, topic.StableID, difficulty, quiz.MasterLanguage)) >= quiz.QuestionsPerSet {
				continue
			}
			in.Topics = append(in.Topics, quizgen.TopicPrompt{
				Topic:  topic,
				Rating: store.DefaultRating,
			})
		}
		if len(in.Topics) == 0 {
			fmt.Println("All topics already covered by the bundled dataset.")
			return nil
		}

		fmt.Printf("Generating %d topic sets for %s (%s)...\n", len(in.Topics), category, difficulty)
		generated, err := gen.GenerateBatch(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		cached := 0
		for stableID, records := range generated {
			key := quiz.CacheKey(stableID, difficulty, quiz.MasterLanguage)
			if err := st.CacheRepo().Put(cmd.Context(), key, records); err != nil {
				fmt.Printf("  skip %s: %v\n", stableID, err)
				continue
			}
			cached++
		}
		fmt.Printf("Cached %d/%d topic sets.\n", cached, len(in.Topics))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringP("difficulty", "d", "hard", "Base difficulty: easy, medium, hard")
}
