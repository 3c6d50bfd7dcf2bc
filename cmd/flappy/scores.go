package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagClear bool
	flagPlain bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best runs and the local best score.

In a terminal the scores open in an interactive table; when output is
piped, or with --plain, they are printed as text.

Examples:
  flappy scores
  flappy scores --plain --limit 5
  flappy scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history and the local best score")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as plain text even in a terminal")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print in plain mode")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := clearScores(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(os.Stdout, store, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

// clearScores removes the history and the local best-score record.
func clearScores(store *storage.Store) error {
	if err := store.ClearScores(flappy.ID); err != nil {
		return err
	}
	return store.DeleteRecord(tui.BestScoreRecord(""))
}

// printScores writes the top runs as a plain table.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(flappy.ID, limit)
	if err != nil {
		return err
	}
	best, err := store.LoadRecord(tui.BestScoreRecord(""))
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - Flappy Bird")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)
	return nil
}
