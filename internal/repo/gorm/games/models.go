package games

// Game is the DB model for one catalog entry. The primary key is the
// BoardGameGeek id carried by the dataset, not a server-assigned one.
type Game struct {
	BGGID int    `gorm:"column:bgg_id;primaryKey" json:"id"`
	Name  string `gorm:"size:255;not null" json:"name"`
}

func (Game) TableName() string { return "games" }
