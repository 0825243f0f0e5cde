package games

import "fmt"

// NotFoundError reports a catalog lookup for an unknown game id.
type NotFoundError struct{ ID int }

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Game with ID: %d not found.", e.ID)
}

// NoMatchError reports a non-empty name filter that matched nothing.
// This is distinct from an empty catalog with no filter applied.
type NoMatchError struct{ Filter string }

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("No games found containing: %s", e.Filter)
}
