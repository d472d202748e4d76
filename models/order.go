package models

// Order links one customer to one dish on a given day
type Order struct {
	ID         uint `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID uint `json:"customer_id" gorm:"index"`
	DishID     uint `json:"dish_id" gorm:"index"`
	OrderDate  Date `json:"order_date" validate:"required"`
}

// Fields lists the order's columns in declaration order
func (o Order) Fields() []Field {
	return []Field{
		{Name: "id", Value: o.ID},
		{Name: "customer_id", Value: o.CustomerID},
		{Name: "dish_id", Value: o.DishID},
		{Name: "order_date", Value: o.OrderDate.String()},
	}
}

func (Order) TableName() string { return "orders" }
