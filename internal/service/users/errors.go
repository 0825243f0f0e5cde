package users

import "fmt"

// UserExistsError reports a username that is already taken.
type UserExistsError struct{ Username string }

func (e *UserExistsError) Error() string {
	return fmt.Sprintf("Username '%s' is already taken", e.Username)
}

// UserNotFoundError reports an unknown user id.
type UserNotFoundError struct{ UserID int }

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("User with user_id '%d' not found", e.UserID)
}

// AlreadyFavoredError reports a duplicate (user, game) pairing.
type AlreadyFavoredError struct {
	UserID int
	GameID int
}

func (e *AlreadyFavoredError) Error() string {
	return fmt.Sprintf("User_id '%d' has already favored game_id '%d'", e.UserID, e.GameID)
}

// StorageError wraps any other persistence failure. The message is safe to
// show to callers; the wrapped error is for logs only.
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string { return e.Message }
func (e *StorageError) Unwrap() error { return e.Err }
