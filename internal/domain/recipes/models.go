package recipes

// Recipe is stored directly from client submissions. IDs are assigned by the database.
type Recipe struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Ingredients  string `gorm:"not null" json:"ingredients"`
	Instructions string `gorm:"not null" json:"instructions"`
}

// TableName keeps the table name singular.
func (Recipe) TableName() string {
	return "recipe"
}

// Input is one item of an addRecipes body. Pointers distinguish a missing key from an empty string.
type Input struct {
	Name         *string `json:"name" validate:"required"`
	Ingredients  *string `json:"ingredients" validate:"required"`
	Instructions *string `json:"instructions" validate:"required"`
}

// Recipe converts a validated input into a row. Call only after validation.
func (in Input) Recipe() Recipe {
	return Recipe{
		Name:         *in.Name,
		Ingredients:  *in.Ingredients,
		Instructions: *in.Instructions,
	}
}
