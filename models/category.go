package models

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"not null" validate:"required"`
}

// Fields lists the category's columns in declaration order
func (c Category) Fields() []Field {
	return []Field{
		{Name: "id", Value: c.ID},
		{Name: "name", Value: c.Name},
	}
}

func (Category) TableName() string { return "categories" }
