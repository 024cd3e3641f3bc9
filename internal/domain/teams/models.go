package teams

// Unknown is stored when the upstream omits a city or nickname.
const Unknown = "N/A"

// Team is a cached upstream team.
type Team struct {
	ID       int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	City     string `json:"city"`
	Nickname string `json:"nickname"`
}

// TableName keeps the table name singular.
func (Team) TableName() string {
	return "team"
}
