package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zombie-arcade/internal/games/zombies"
	"github.com/vovakirdan/zombie-arcade/internal/platform/tui"
	"github.com/vovakirdan/zombie-arcade/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagTUI    bool
	flagRunID  string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best and recent runs",
	Long: `Display the best runs (by kills, then survival time) or the most
recent ones.

Examples:
  zombies scores
  zombies scores --recent --limit 20
  zombies scores --run 0b6f3c1e-8a4d-4f52-9d39-2f1d7c4e5a10
  zombies scores --clear
  zombies scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show most recent runs instead of best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its id")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
	scoresCmd.MarkFlagsMutuallyExclusive("tui", "run", "clear")
}

func runScores(cmd *cobra.Command, _ []string) error {
	title := zombies.New().Title()
	out := cmd.OutOrStdout()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagRunID != "":
		run, err := store.RunByID(flagRunID)
		if err != nil {
			return fmt.Errorf("retrieving run: %w", err)
		}
		if run == nil {
			return fmt.Errorf("no run with id %q", flagRunID)
		}
		printRun(out, *run)
		return nil

	case flagClear:
		n, err := store.ClearRuns(gameID)
		if err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Fprintf(out, "Cleared %d runs.\n", n)
		return nil

	case flagTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, title, width, height)
	}

	var runs []storage.RunRecord
	if flagRecent {
		runs, err = store.RecentRuns(gameID, flagLimit)
	} else {
		runs, err = store.BestRuns(gameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	heading := "Best Runs"
	if flagRecent {
		heading = "Recent Runs"
	}
	printRuns(out, fmt.Sprintf("%s - %s", heading, title), runs)

	if len(runs) > 0 {
		if stats, err := store.Stats(gameID); err == nil {
			fmt.Fprintf(out, "\nBest: %d kills (stage %d)  Runs: %d  Avg: %.1f  Longest: %s\n",
				stats.BestKills, stats.BestStage, stats.Runs, stats.AvgKills,
				tui.FormatSurvived(stats.LongestSurvived))
		}
	}
	return nil
}

func printRuns(w io.Writer, title string, runs []storage.RunRecord) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'zombies play' to set the first high score!")
		return
	}

	rows := tui.RunRows(runs)
	fmt.Fprintf(w, "  %-4s  %-5s  %-5s  %-8s  %-6s  %-12s  %s\n", "Rank", "Kills", "Stage", "Survived", "Preset", "Date", "Run")
	fmt.Fprintf(w, "  %-4s  %-5s  %-5s  %-8s  %-6s  %-12s  %s\n", "----", "-----", "-----", "--------", "------", "----", "---")
	for i, r := range rows {
		fmt.Fprintf(w, "  %-4s  %-5s  %-5s  %-8s  %-6s  %-12s  %s\n", r[0], r[1], r[2], r[3], r[4], r[5], runs[i].RunID)
	}
}

func printRun(w io.Writer, r storage.RunRecord) {
	preset := r.Preset
	if preset == "" {
		preset = "-"
	}
	fmt.Fprintf(w, "Run       %s\n", r.RunID)
	fmt.Fprintf(w, "Kills     %d\n", r.Kills)
	fmt.Fprintf(w, "Stage     %d\n", r.Stage)
	fmt.Fprintf(w, "Survived  %s\n", tui.FormatSurvived(r.Survived))
	fmt.Fprintf(w, "Preset    %s\n", preset)
	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Played    %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
