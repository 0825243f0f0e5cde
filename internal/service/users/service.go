package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	usersrepo "github.com/gameshelf/gameshelf/internal/repo/gorm/users"
)

// Repository is the slice of the users repo this service needs.
type Repository interface {
	CreateUser(ctx context.Context, u *usersrepo.User) error
	GetUser(ctx context.Context, userID int) (*usersrepo.User, error)
	CreateFavorite(ctx context.Context, fg *usersrepo.FavoriteGame) error
	HasFavorite(ctx context.Context, userID, gameID int) (bool, error)
	ListFavorites(ctx context.Context, userID int) ([]usersrepo.FavoriteGame, error)
}

// Service manages users and their favorite games. Each call is one atomic
// unit against the store; nothing is retained between calls.
type Service struct{ repo Repository }

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) ensureUser(ctx context.Context, userID int) (*usersrepo.User, error) {
	u, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Warn("user not found", "user_id", userID)
			return nil, &UserNotFoundError{UserID: userID}
		}
		return nil, &StorageError{Message: fmt.Sprintf("Failed to fetch user '%d'", userID), Err: err}
	}
	return u, nil
}

// CreateUser inserts a new user. A duplicate username is detected via the
// unique constraint at commit time, not a pre-check, so concurrent creates
// cannot race past each other.
func (s *Service) CreateUser(ctx context.Context, username string) (*usersrepo.User, error) {
	u := &usersrepo.User{Username: username}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			slog.Error("username already taken", "username", username)
			return nil, &UserExistsError{Username: username}
		}
		slog.Error("create user failed", "username", username, "err", err)
		return nil, &StorageError{Message: fmt.Sprintf("Failed to create user '%s'", username), Err: err}
	}
	slog.Info("user created", "username", username, "user_id", u.UserID)
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, userID int) (*usersrepo.User, error) {
	return s.ensureUser(ctx, userID)
}

// AddFavorite records a game in a user's favorites. The existence check
// gives a friendly fast-path error; the composite unique index on
// (user_id, game_id) is the authoritative duplicate signal.
func (s *Service) AddFavorite(ctx context.Context, userID, gameID int) (*usersrepo.FavoriteGame, error) {
	if _, err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	if dup, err := s.repo.HasFavorite(ctx, userID, gameID); err != nil {
		return nil, &StorageError{Message: fmt.Sprintf("Failed to add favorite game %d to user %d", gameID, userID), Err: err}
	} else if dup {
		slog.Warn("game already favored", "user_id", userID, "game_id", gameID)
		return nil, &AlreadyFavoredError{UserID: userID, GameID: gameID}
	}
	fg := &usersrepo.FavoriteGame{UserID: userID, GameID: gameID}
	if err := s.repo.CreateFavorite(ctx, fg); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &AlreadyFavoredError{UserID: userID, GameID: gameID}
		}
		slog.Error("add favorite failed", "user_id", userID, "game_id", gameID, "err", err)
		return nil, &StorageError{Message: fmt.Sprintf("Failed to add favorite game %d to user %d", gameID, userID), Err: err}
	}
	slog.Info("favorite added", "user_id", userID, "game_id", gameID)
	return fg, nil
}

// ListFavorites returns the user's favorites in insertion order. A user
// with no favorites yields an empty slice, not an error.
func (s *Service) ListFavorites(ctx context.Context, userID int) ([]usersrepo.FavoriteGame, error) {
	if _, err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	arr, err := s.repo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, &StorageError{Message: fmt.Sprintf("Failed to list favorite games of user %d", userID), Err: err}
	}
	slog.Debug("favorites listed", "user_id", userID, "count", len(arr))
	return arr, nil
}
