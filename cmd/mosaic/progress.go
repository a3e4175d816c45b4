package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mosaic/internal/puzzles"
	"github.com/vovakirdan/tui-mosaic/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress [day]",
	Short: "Show solved days and scores",
	Long: `Display the overall progress, or the session history for a
single day when one is given.

Examples:
  mosaic progress
  mosaic progress 2026-02-14`,
	Args: cobra.MaximumNArgs(1),
	Run:  runProgress,
}

func runProgress(cmd *cobra.Command, args []string) {
	cal, err := puzzles.Load(flagCalendar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading calendar: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showDay(store, cal, args[0])
		return
	}

	progress, err := store.AllProgress()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading progress: %v\n", err)
		os.Exit(1)
	}

	solved := 0
	for _, pr := range progress {
		if pr.Solved {
			solved++
		}
	}

	fmt.Printf("Progress: %d/%d puzzles solved\n", solved, len(cal.Puzzles))
	fmt.Println()
	fmt.Printf("  %-10s  %-8s  %-8s  %-7s  %s\n", "Day", "Status", "Points", "Swaps", "Solved at")
	fmt.Printf("  %-10s  %-8s  %-8s  %-7s  %s\n", "---", "------", "------", "-----", "---------")

	for _, p := range cal.Puzzles {
		status, points, attempts, solvedAt := "hidden", "-", "-", "-"
		if pr, ok := progress[p.ID]; ok {
			if pr.Solved {
				status = "solved"
				if !pr.SolvedAt.IsZero() {
					solvedAt = pr.SolvedAt.Format("2006-01-02 15:04")
				}
			} else {
				status = "started"
			}
			points = fmt.Sprintf("%d", pr.Points)
			attempts = fmt.Sprintf("%d", pr.Attempts)
		}
		fmt.Printf("  %-10s  %-8s  %-8s  %-7s  %s\n", p.ID, status, points, attempts, solvedAt)
	}
}

// showDay prints the session history for one puzzle.
func showDay(store *storage.Store, cal *puzzles.Calendar, day string) {
	pz, ok := cal.ByID(day)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no puzzle for day %q\n", day)
		fmt.Fprintln(os.Stderr, "Run 'mosaic list' to see the calendar.")
		os.Exit(1)
	}

	sessions, err := store.RecentSessions(pz.ID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sessions - %s (%s)\n", pz.Title, pz.ID)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mosaic play %s' to start uncovering the picture!\n", pz.ID)
		return
	}

	fmt.Printf("  %-6s  %-8s  %-7s  %-10s  %s\n", "When", "Points", "Swaps", "Revealed", "Result")
	fmt.Printf("  %-6s  %-8s  %-7s  %-10s  %s\n", "----", "------", "-----", "--------", "------")

	for _, s := range sessions {
		revealed := fmt.Sprintf("%d/%d", s.Revealed, s.Total)
		result := "left"
		if s.Completed {
			result = "solved"
		}
		fmt.Printf("  %-6s  %-8d  %-7d  %-10s  %s\n",
			s.CreatedAt.Format("Jan 02"), s.Points, s.Attempts, revealed, result)
	}

	if best, err := store.BestPoints(pz.ID); err == nil && best > 0 {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}
