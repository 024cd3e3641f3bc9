package players

// Player is a cached upstream player. The id comes from the upstream API and is never auto-assigned.
type Player struct {
	ID     int     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name   string  `gorm:"not null" json:"name"`
	Height *string `json:"height"`
	Weight *string `json:"weight"`
}

// TableName keeps the table name singular.
func (Player) TableName() string {
	return "player"
}
