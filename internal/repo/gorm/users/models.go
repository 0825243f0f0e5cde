package users

// User holds one account row. Usernames are globally unique; the
// constraint is enforced by the store so concurrent creates resolve there.
type User struct {
	UserID   int    `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username string `gorm:"size:80;uniqueIndex;not null" json:"username"`
}

func (User) TableName() string { return "users" }

// FavoriteGame links a user to a game id. The game id is opaque here: the
// catalog lives in a separate schema and is not referenced. The composite
// unique index makes a duplicate (user_id, game_id) insert fail at commit
// time, which is the authoritative duplicate signal.
type FavoriteGame struct {
	FavoriteID int `gorm:"column:favorite_id;primaryKey" json:"-"`
	UserID     int `gorm:"column:user_id;not null;uniqueIndex:idx_user_game" json:"user_id"`
	GameID     int `gorm:"column:game_id;not null;uniqueIndex:idx_user_game" json:"game_id"`
}

func (FavoriteGame) TableName() string { return "favorite_games" }
