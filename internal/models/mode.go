package models

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the line-numbering policy applied while rendering.
// The zero value is ModePlain.
type Mode int

const (
	ModePlain          Mode = iota // Print lines verbatim
	ModeNumberAll                  // Number every line, blank or not
	ModeNumberNonblank             // Number only non-empty lines
)

// ErrConflictingModes is returned when both numbering flags are set.
var ErrConflictingModes = errors.New("--number and --number-nonblank are mutually exclusive")

// ModeFromFlags converts the two command-line booleans into a Mode.
func ModeFromFlags(numberAll, numberNonblank bool) (Mode, error) {
	switch {
	case numberAll && numberNonblank:
		return ModePlain, ErrConflictingModes
	case numberAll:
		return ModeNumberAll, nil
	case numberNonblank:
		return ModeNumberNonblank, nil
	default:
		return ModePlain, nil
	}
}

// ParseMode parses the configuration spelling of a mode.
// Accepted values: "plain", "number", "number-nonblank" (case-insensitive).
// An empty string parses as ModePlain.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain":
		return ModePlain, nil
	case "number":
		return ModeNumberAll, nil
	case "number-nonblank":
		return ModeNumberNonblank, nil
	default:
		return ModePlain, fmt.Errorf("invalid mode %q, must be one of: plain, number, number-nonblank", s)
	}
}

// String returns the configuration spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeNumberAll:
		return "number"
	case ModeNumberNonblank:
		return "number-nonblank"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
