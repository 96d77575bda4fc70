package duplicates

import (
	"strings"
)

// Mode selects the pairing policy of a scan
type Mode string

const (
	// ModeRPA compares the RPA inventory against the collaboration worklist
	ModeRPA Mode = "RPA"

	// ModeCollab compares the collaboration worklist against itself
	ModeCollab Mode = "COLLAB"
)

// Modes lists the recognised duplication types in display order
var Modes = []Mode{ModeRPA, ModeCollab}

// ParseMode converts a duplication type argument into a Mode, case-insensitively
func ParseMode(s string) (Mode, error) {
	upper := Mode(strings.ToUpper(strings.TrimSpace(s)))
	for _, m := range Modes {
		if upper == m {
			return m, nil
		}
	}
	return "", &ConfigurationError{Setting: "duplication type", Value: s, Err: ErrUnknownMode}
}

// Description is the one-line banner printed before a scan starts
func (m Mode) Description() string {
	switch m {
	case ModeRPA:
		return "evaluating RPA inventory to ETA submissions worklist"
	case ModeCollab:
		return "evaluating ETA submissions worklist against itself"
	default:
		return "unknown evaluation"
	}
}

func joinModes() string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
