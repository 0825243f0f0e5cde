package games

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	gamesrepo "github.com/gameshelf/gameshelf/internal/repo/gorm/games"
)

// Repository is the slice of the games repo this service needs.
type Repository interface {
	List(ctx context.Context) ([]gamesrepo.Game, error)
	Get(ctx context.Context, id int) (*gamesrepo.Game, error)
}

// Service answers read-only catalog queries. All state lives in the repo.
type Service struct{ repo Repository }

func NewService(repo Repository) *Service { return &Service{repo: repo} }

// List returns the catalog in primary-key order. A non-empty nameFilter
// keeps only games whose name contains it case-insensitively; zero matches
// for a non-empty filter fail with NoMatchError.
func (s *Service) List(ctx context.Context, nameFilter string) ([]gamesrepo.Game, error) {
	arr, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	if nameFilter == "" {
		return arr, nil
	}
	needle := strings.ToLower(nameFilter)
	out := make([]gamesrepo.Game, 0, len(arr))
	for _, g := range arr {
		if strings.Contains(strings.ToLower(g.Name), needle) {
			out = append(out, g)
		}
	}
	if len(out) == 0 {
		slog.Debug("name filter matched nothing", "filter", nameFilter)
		return nil, &NoMatchError{Filter: nameFilter}
	}
	return out, nil
}

// Get returns a single game by id.
func (s *Service) Get(ctx context.Context, id int) (*gamesrepo.Game, error) {
	g, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("get game %d: %w", id, err)
	}
	return g, nil
}
