package session

import (
	"fmt"
	"strings"
)

// InvalidPlayerCountError reports a series configured with a player count
// outside the supported range.
type InvalidPlayerCountError struct {
	Min, Max, Submitted int
}

func (e InvalidPlayerCountError) Error() string {
	return fmt.Sprintf("player count %d is outside the supported range %d to %d", e.Submitted, e.Min, e.Max)
}

// NonuniquePlayerNamesError reports a series configured with duplicate
// player names. Names must be unique because the leaderboard is keyed on
// them.
type NonuniquePlayerNamesError struct {
	SubmittedNames []string
}

func (e NonuniquePlayerNamesError) Error() string {
	return fmt.Sprintf("player names must be unique, got %s", strings.Join(e.SubmittedNames, ", "))
}

// EmptyPlayerNamesError reports a series configured with one or more blank
// player names.
type EmptyPlayerNamesError struct {
	SubmittedNames []string
}

func (e EmptyPlayerNamesError) Error() string {
	return fmt.Sprintf("player names must not be empty, got %q", e.SubmittedNames)
}
