package models

// Dish is a menu entry. CategoryID is checked only when the dish is created;
// deleting the category afterwards leaves it dangling.
type Dish struct {
	ID         uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string `json:"name" gorm:"not null" validate:"required"`
	Price      int    `json:"price" gorm:"not null" validate:"gte=0"`
	CategoryID uint   `json:"category_id" gorm:"index"`
}

// Fields lists the dish's columns in declaration order
func (d Dish) Fields() []Field {
	return []Field{
		{Name: "id", Value: d.ID},
		{Name: "name", Value: d.Name},
		{Name: "price", Value: d.Price},
		{Name: "category_id", Value: d.CategoryID},
	}
}

func (Dish) TableName() string { return "dishes" }
