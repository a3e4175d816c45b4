package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mosaic/internal/config"
	"github.com/vovakirdan/tui-mosaic/internal/core"
	"github.com/vovakirdan/tui-mosaic/internal/platform/tui"
	"github.com/vovakirdan/tui-mosaic/internal/puzzles"
	"github.com/vovakirdan/tui-mosaic/internal/storage"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Pick a day interactively",
	Long: `Start the interactive day picker.

Use arrow keys or j/k to navigate, Enter to open a puzzle.
After a puzzle you return to the calendar.

Controls:
  Up/Down/j/k  - Navigate days
  Enter/Space  - Play the selected day
  Tab          - Progress table
  Q            - Quit

Examples:
  mosaic calendar
  mosaic calendar --fps 30
  mosaic calendar --db ./progress.db`,
	Run: runCalendar,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db, --calendar)
}

func runCalendar(_ *cobra.Command, _ []string) {
	cal, err := puzzles.Load(flagCalendar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading calendar: %v\n", err)
		os.Exit(1)
	}

	engCfg, err := config.LoadEngine(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading engine config: %v\n", err)
		os.Exit(1)
	}

	// Open progress storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Picker loop
	for {
		result, err := tui.RunCalendar(cal, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		if result.Quit {
			break
		}

		if result.WantsProgress {
			goBack, prErr := tui.RunProgress(cal, store, cfg.ScreenW, cfg.ScreenH)
			if prErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", prErr)
			}
			if goBack {
				continue // Back to the calendar
			}
			break // User quit from the progress table
		}

		pz, ok := cal.ByID(result.PuzzleID)
		if !ok {
			break
		}

		// Fresh board per session
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(pz, store, engCfg, cfg, result.Solved); err != nil {
			fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", err)
		}

		// Loop back to the calendar
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
