package models

type Customer struct {
	ID    uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"not null" validate:"required"`
	Phone string `json:"phone" gorm:"not null"`
}

// Fields lists the customer's columns in declaration order
func (c Customer) Fields() []Field {
	return []Field{
		{Name: "id", Value: c.ID},
		{Name: "name", Value: c.Name},
		{Name: "phone", Value: c.Phone},
	}
}

func (Customer) TableName() string { return "customers" }
