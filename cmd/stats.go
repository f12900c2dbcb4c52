package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/quizclash/internal/rating"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show ratings and match history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		prof, err := st.ProfileRepo().Get(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		overall := rating.Aggregate(prof.Ratings)
		fmt.Printf("Overall rating: %d (%s)\n", overall, rating.LevelFor(overall))

		if len(prof.Ratings) > 0 {
			fmt.Println()
			fmt.Println("Ratings by Category")
			fmt.Println(strings.Repeat("─", 48))
			cats := make([]string, 0, len(prof.Ratings))
			for cat := range prof.Ratings {
				cats = append(cats, cat)
			}
			sort.Strings(cats)
			for _, cat := range cats {
				r := prof.Ratings[cat]
				fmt.Printf("  %-20s  %4d  %s\n", cat, r, rating.LevelFor(r))
			}
		}

		fmt.Printf("\nQuestions answered: %d\n", len(prof.SeenQuestionIDs))

		history, err := st.EventRepo().QuizHistory(ctx, limit)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(history) == 0 {
			fmt.Println("\nNo games played yet.")
			return nil
		}

		fmt.Println()
		fmt.Println("Recent Games")
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("  %-19s  %-16s  %-8s  %5s  %5s\n", "When", "Category", "Level", "You", "AI")
		for _, h := range history {
			outcome := "won"
			if h.Score < h.AIScore {
				outcome = "lost"
			}
			fmt.Printf("  %-19s  %-16s  %-8s  %5d  %5d  (%s)\n",
				h.Timestamp.Local().Format("2006-01-02 15:04"),
				h.CategoryID,
				h.Difficulty,
				h.Score,
				h.AIScore,
				outcome,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of games to show")
}
