package users

import (
	"context"

	"gorm.io/gorm"
)

// Repo provides GORM-based persistence for users and their favorites.
type Repo struct{ db *gorm.DB }

func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(&User{}, &FavoriteGame{}) }
func NewRepo(db *gorm.DB) *Repo     { return &Repo{db: db} }

func (r *Repo) CreateUser(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *Repo) GetUser(ctx context.Context, userID int) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) CreateFavorite(ctx context.Context, fg *FavoriteGame) error {
	return r.db.WithContext(ctx).Create(fg).Error
}

// HasFavorite reports whether the (user, game) pairing is already stored.
func (r *Repo) HasFavorite(ctx context.Context, userID, gameID int) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&FavoriteGame{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListFavorites returns a user's favorites in insertion order.
func (r *Repo) ListFavorites(ctx context.Context, userID int) ([]FavoriteGame, error) {
	arr := make([]FavoriteGame, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("favorite_id").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}
