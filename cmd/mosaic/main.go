// mosaic is a match-3 picture calendar for the terminal: every day
// hides a small image that is uncovered by clearing tokens above it.
//
// Usage:
//
//	mosaic list              - List the puzzle calendar
//	mosaic play [day]        - Play a day's puzzle (default: today)
//	mosaic calendar          - Pick a day interactively
//	mosaic progress          - Show solved days and scores
//	mosaic serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible boards
//	--db <path>        - Set database path (default: ~/.mosaic/progress.db)
//	--calendar <path>  - Use a custom puzzle calendar YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagCalendar string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mosaic",
	Short: "Mosaic - A match-3 picture calendar in your terminal",
	Long: `Mosaic is a terminal puzzle calendar. Each day hides a small
picture behind a grid of colored tokens; swap adjacent tokens to clear
runs of three and uncover the image piece by piece.

Available commands:
  list      - Show the puzzle calendar
  play      - Play a day's puzzle directly
  calendar  - Interactive day picker
  progress  - View solved days and scores
  serve     - Start SSH server for remote play

Examples:
  mosaic list
  mosaic play
  mosaic play 2026-02-14
  mosaic calendar
  mosaic serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mosaic/progress.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagCalendar, "calendar", "", "Path to custom puzzle calendar YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}
