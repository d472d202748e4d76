package store

import (
	"context"
	"log/slog"

	"restaurant-orders/models"

	"gorm.io/gorm"
)

type Orders struct {
	s *Store
}

type OrderPatch struct {
	CustomerID Optional[uint]
	DishID     Optional[uint]
	OrderDate  Optional[models.Date]
}

// Create resolves the customer first, then the dish. Either miss aborts the
// whole write.
func (r *Orders) Create(ctx context.Context, o models.Order) (*models.Order, error) {
	o.ID = 0
	if err := validateEntity(entityOrder, o); err != nil {
		return nil, err
	}
	err := r.s.write(ctx, "create order", func(tx *gorm.DB) error {
		if err := requireRow[models.Customer](tx, entityCustomer, o.CustomerID); err != nil {
			return err
		}
		if err := requireRow[models.Dish](tx, entityDish, o.DishID); err != nil {
			return err
		}
		return tx.Create(&o).Error
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("order created", "id", o.ID, "customer_id", o.CustomerID, "dish_id", o.DishID)
	return &o, nil
}

func (r *Orders) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	return getByID[models.Order](ctx, r.s, "get order", id)
}

func (r *Orders) ListAll(ctx context.Context) ([]models.Order, error) {
	return listAll[models.Order](ctx, r.s, "list orders")
}

func (r *Orders) Update(ctx context.Context, id uint, p OrderPatch) (*models.Order, error) {
	return patchRow(ctx, r.s, entityOrder, id, func(tx *gorm.DB, o *models.Order, changes map[string]any) error {
		if p.CustomerID.apply(&o.CustomerID) {
			changes["customer_id"] = o.CustomerID
			if r.s.strict {
				if err := requireRow[models.Customer](tx, entityCustomer, o.CustomerID); err != nil {
					return err
				}
			}
		}
		if p.DishID.apply(&o.DishID) {
			changes["dish_id"] = o.DishID
			if r.s.strict {
				if err := requireRow[models.Dish](tx, entityDish, o.DishID); err != nil {
					return err
				}
			}
		}
		if p.OrderDate.apply(&o.OrderDate) {
			changes["order_date"] = o.OrderDate
		}
		return validateEntity(entityOrder, *o)
	})
}

func (r *Orders) Delete(ctx context.Context, id uint) (bool, error) {
	return deleteByID[models.Order](ctx, r.s, entityOrder, id)
}
