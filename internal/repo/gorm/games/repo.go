package games

import (
	"context"

	"gorm.io/gorm"
)

// Repo provides GORM-based persistence for the game catalog.
type Repo struct{ db *gorm.DB }

func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(&Game{}) }
func NewRepo(db *gorm.DB) *Repo     { return &Repo{db: db} }

// List returns the whole catalog in primary-key order.
func (r *Repo) List(ctx context.Context) ([]Game, error) {
	var arr []Game
	if err := r.db.WithContext(ctx).Order("bgg_id").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

func (r *Repo) Get(ctx context.Context, id int) (*Game, error) {
	var g Game
	if err := r.db.WithContext(ctx).First(&g, "bgg_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Game{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Seed inserts the given catalog rows unless the table already holds data.
func (r *Repo) Seed(ctx context.Context, rows []Game) error {
	n, err := r.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, 500).Error
}

// Reseed replaces the whole catalog in one transaction. Used when the
// dataset file changes on disk.
func (r *Repo) Reseed(ctx context.Context, rows []Game) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Game{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 500).Error
	})
}
