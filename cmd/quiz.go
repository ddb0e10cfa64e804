package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bashlore/bashlore/internal/quiz"
	"github.com/bashlore/bashlore/internal/report"
	"github.com/bashlore/bashlore/internal/store"
	"github.com/bashlore/bashlore/internal/tui"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Play an interactive quiz built from your command history",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		data, err := runPipeline(cmd, logger)
		if err != nil {
			return err
		}
		set := data.Quiz
		if len(set.Questions) == 0 {
			fmt.Println("No quiz questions could be generated. Run some commands first.")
			return nil
		}

		if print, _ := cmd.Flags().GetBool("print"); print {
			printQuiz(set)
			return nil
		}

		player, err := tui.Run(set)
		if err != nil {
			return err
		}
		if player.Aborted() && len(player.Answers()) == 0 {
			return nil
		}

		return persistRun(cmd, data, player)
	},
}

func init() {
	addPipelineFlags(quizCmd)
	quizCmd.Flags().Bool("print", false, "Print the questions instead of playing")
}

// persistRun records the finished run; history failures should not eat
// the player's result, so they only warn.
func persistRun(cmd *cobra.Command, data *report.Data, player *tui.Player) error {
	logger := newLogger(cmd)
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		logger.Warn("quiz history not saved", "err", err)
		return nil
	}
	st, err := store.Open(dbPath)
	if err != nil {
		logger.Warn("quiz history not saved", "err", err)
		return nil
	}
	defer st.Close()

	runID, err := st.StartRun(ctx, data.Seed, len(data.Quiz.Questions))
	if err != nil {
		logger.Warn("quiz history not saved", "err", err)
		return nil
	}
	for _, a := range player.Answers() {
		err := st.RecordAttempt(ctx, store.Attempt{
			RunID:        runID,
			QuestionID:   a.QuestionID,
			QuestionType: a.Type.String(),
			Command:      a.Command,
			ChosenIndex:  a.ChosenIndex,
			Correct:      a.Correct,
		})
		if err != nil {
			logger.Warn("attempt not saved", "err", err)
		}
	}
	if err := st.FinishRun(ctx, runID, player.Score()); err != nil {
		logger.Warn("quiz history not saved", "err", err)
	}
	return nil
}

func printQuiz(set *quiz.Set) {
	for i, q := range set.Questions {
		fmt.Printf("%d. [%s] %s\n", i+1, q.Type, q.Prompt)
		for j, opt := range q.Options {
			fmt.Printf("   %c) %s\n", 'A'+j, opt)
		}
		fmt.Printf("   Answer: %c) %s\n", 'A'+q.CorrectIndex, q.Answer())
		if q.Explanation != "" {
			fmt.Printf("   %s\n", q.Explanation)
		}
		fmt.Println()
	}
	if set.Shortfall > 0 {
		fmt.Printf("(%d fewer questions than requested; not enough distinct material)\n", set.Shortfall)
	}
}
