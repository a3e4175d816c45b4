package puzzles

import (
	_ "embed"
)

//go:embed defaults/calendar.yaml
var defaultCalendarYAML []byte
