package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/quizclash/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear stored data",
}

var resetCacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Clear the question cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.CacheRepo().Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
		fmt.Println("Question cache cleared.")
		return nil
	},
}

var resetProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Reset ratings, seen questions and high scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force && !confirm("This wipes your ratings and progress. Continue? [y/N] ") {
			fmt.Println("Aborted.")
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ProfileRepo().Save(cmd.Context(), &store.Profile{
			Ratings:         map[string]int{},
			SeenQuestionIDs: map[int]bool{},
			HighScores:      map[string]int{},
		}); err != nil {
			return fmt.Errorf("reset profile: %w", err)
		}
		fmt.Println("Profile reset.")
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	resetProfileCmd.Flags().BoolP("force", "f", false, "Skip confirmation")

	resetCmd.AddCommand(resetCacheCmd)
	resetCmd.AddCommand(resetProfileCmd)
}
