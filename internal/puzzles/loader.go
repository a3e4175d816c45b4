package puzzles

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-mosaic/internal/core"
)

// yamlCalendar is the on-disk structure of a calendar file.
type yamlCalendar struct {
	Puzzles []yamlPuzzle `yaml:"puzzles"`
}

type yamlPuzzle struct {
	ID      string                `yaml:"id"`
	Title   string                `yaml:"title"`
	Size    yamlSize              `yaml:"size"`
	Palette int                   `yaml:"palette,omitempty"`
	Legend  map[string]yamlLegend `yaml:"legend"`
	Rows    []string              `yaml:"rows"`
}

type yamlSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type yamlLegend struct {
	Glyph string `yaml:"glyph,omitempty"` // Defaults to a full block
	Color string `yaml:"color"`
}

// Load loads the puzzle calendar.
// Search order: customPath -> ~/.mosaic/puzzles/calendar.yaml -> ./puzzles/calendar.yaml -> embedded default
func Load(customPath string) (*Calendar, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read calendar %s: %w", customPath, err)
		}
		return Parse(data)
	}

	if userPath := userCalendarPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if cal, err := Parse(data); err == nil {
				return cal, nil
			}
		}
	}

	if data, err := os.ReadFile("puzzles/calendar.yaml"); err == nil {
		if cal, err := Parse(data); err == nil {
			return cal, nil
		}
	}

	return Parse(defaultCalendarYAML)
}

// Parse decodes a calendar file and validates every puzzle in it.
func Parse(data []byte) (*Calendar, error) {
	var yc yamlCalendar
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("puzzles: yaml unmarshal: %w", err)
	}

	cal := &Calendar{Puzzles: make([]Puzzle, 0, len(yc.Puzzles))}
	for _, yp := range yc.Puzzles {
		p, err := buildPuzzle(yp)
		if err != nil {
			return nil, err
		}
		cal.Puzzles = append(cal.Puzzles, p)
	}

	if len(cal.Puzzles) == 0 {
		return nil, fmt.Errorf("puzzles: calendar has no puzzles")
	}
	return cal, nil
}

func buildPuzzle(yp yamlPuzzle) (Puzzle, error) {
	p := Puzzle{
		ID:      yp.ID,
		Title:   yp.Title,
		Width:   yp.Size.W,
		Height:  yp.Size.H,
		Palette: yp.Palette,
	}

	if len(yp.Rows) != p.Height {
		return Puzzle{}, fmt.Errorf("puzzles: %s: %d rows, expected %d", p.ID, len(yp.Rows), p.Height)
	}

	legend, err := buildLegend(yp.ID, yp.Legend)
	if err != nil {
		return Puzzle{}, err
	}

	p.Art = make([]ArtCell, 0, p.Width*p.Height)
	for rowIdx, row := range yp.Rows {
		runes := []rune(row)
		if len(runes) != p.Width {
			return Puzzle{}, fmt.Errorf("puzzles: %s: row %d has %d cells, expected %d",
				p.ID, rowIdx, len(runes), p.Width)
		}
		for _, r := range runes {
			cell, ok := legend[r]
			if !ok {
				return Puzzle{}, fmt.Errorf("puzzles: %s: row %d uses %q which is not in the legend",
					p.ID, rowIdx, r)
			}
			p.Art = append(p.Art, cell)
		}
	}

	if err := p.Validate(); err != nil {
		return Puzzle{}, err
	}
	return p, nil
}

func buildLegend(id string, yl map[string]yamlLegend) (map[rune]ArtCell, error) {
	legend := make(map[rune]ArtCell, len(yl))
	for key, entry := range yl {
		keyRunes := []rune(key)
		if len(keyRunes) != 1 {
			return nil, fmt.Errorf("puzzles: %s: legend key %q must be a single character", id, key)
		}

		color, ok := core.ParseColor(entry.Color)
		if !ok {
			return nil, fmt.Errorf("puzzles: %s: legend %q has unknown color %q", id, key, entry.Color)
		}

		glyph := '█'
		if entry.Glyph != "" {
			glyphRunes := []rune(entry.Glyph)
			if len(glyphRunes) != 1 {
				return nil, fmt.Errorf("puzzles: %s: legend %q glyph must be a single character", id, key)
			}
			glyph = glyphRunes[0]
		}

		legend[keyRunes[0]] = ArtCell{Glyph: glyph, Color: color}
	}
	return legend, nil
}

// userCalendarPath returns the path to the user calendar file, or empty
// if home is unavailable.
func userCalendarPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mosaic", "puzzles", "calendar.yaml")
}
