package store

import (
	"context"
	"log/slog"

	"restaurant-orders/models"

	"gorm.io/gorm"
)

type Dishes struct {
	s *Store
}

type DishPatch struct {
	Name       Optional[string]
	Price      Optional[int]
	CategoryID Optional[uint]
}

// Create writes the dish only if its category exists
func (r *Dishes) Create(ctx context.Context, d models.Dish) (*models.Dish, error) {
	d.ID = 0
	if err := validateEntity(entityDish, d); err != nil {
		return nil, err
	}
	err := r.s.write(ctx, "create dish", func(tx *gorm.DB) error {
		if err := requireRow[models.Category](tx, entityCategory, d.CategoryID); err != nil {
			return err
		}
		return tx.Create(&d).Error
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("dish created", "id", d.ID, "name", d.Name, "category_id", d.CategoryID)
	return &d, nil
}

func (r *Dishes) GetByID(ctx context.Context, id uint) (*models.Dish, error) {
	return getByID[models.Dish](ctx, r.s, "get dish", id)
}

func (r *Dishes) ListAll(ctx context.Context) ([]models.Dish, error) {
	return listAll[models.Dish](ctx, r.s, "list dishes")
}

func (r *Dishes) Update(ctx context.Context, id uint, p DishPatch) (*models.Dish, error) {
	return patchRow(ctx, r.s, entityDish, id, func(tx *gorm.DB, d *models.Dish, changes map[string]any) error {
		if p.Name.apply(&d.Name) {
			changes["name"] = d.Name
		}
		if p.Price.apply(&d.Price) {
			changes["price"] = d.Price
		}
		if p.CategoryID.apply(&d.CategoryID) {
			changes["category_id"] = d.CategoryID
			if r.s.strict {
				if err := requireRow[models.Category](tx, entityCategory, d.CategoryID); err != nil {
					return err
				}
			}
		}
		return validateEntity(entityDish, *d)
	})
}

// Delete does not touch orders that reference the dish
func (r *Dishes) Delete(ctx context.Context, id uint) (bool, error) {
	return deleteByID[models.Dish](ctx, r.s, entityDish, id)
}
