package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mosaic/internal/puzzles"
	"github.com/vovakirdan/tui-mosaic/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the puzzle calendar",
	Long:  `Shows every day in the puzzle calendar and its solved state.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	cal, err := puzzles.Load(flagCalendar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading calendar: %v\n", err)
		os.Exit(1)
	}

	// Solved markers are best effort; the list works without a database
	var progress map[string]*storage.Progress
	if store, err := storage.Open(flagDBPath); err == nil {
		progress, _ = store.AllProgress()
		store.Close()
	}

	fmt.Println("Puzzle calendar:")
	fmt.Println()

	maxTitleLen := 5 // "Title" header
	for _, p := range cal.Puzzles {
		if len(p.Title) > maxTitleLen {
			maxTitleLen = len(p.Title)
		}
	}

	fmt.Printf("  %-10s  %-*s  %s\n", "Day", maxTitleLen, "Title", "Status")
	fmt.Printf("  %-10s  %-*s  %s\n", "---", maxTitleLen, "-----", "------")

	for _, p := range cal.Puzzles {
		status := "hidden"
		if pr, ok := progress[p.ID]; ok {
			if pr.Solved {
				status = fmt.Sprintf("solved (%d pts)", pr.Points)
			} else {
				status = "started"
			}
		}
		fmt.Printf("  %-10s  %-*s  %s\n", p.ID, maxTitleLen, p.Title, status)
	}

	fmt.Println()
	fmt.Println("Run 'mosaic play <day>' to play a puzzle.")
}
