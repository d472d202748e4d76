package store

import (
	"context"
	"log/slog"

	"restaurant-orders/models"

	"gorm.io/gorm"
)

type Categories struct {
	s *Store
}

type CategoryPatch struct {
	Name Optional[string]
}

func (r *Categories) Create(ctx context.Context, c models.Category) (*models.Category, error) {
	c.ID = 0
	if err := validateEntity(entityCategory, c); err != nil {
		return nil, err
	}
	err := r.s.write(ctx, "create category", func(tx *gorm.DB) error {
		return tx.Create(&c).Error
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("category created", "id", c.ID, "name", c.Name)
	return &c, nil
}

func (r *Categories) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return getByID[models.Category](ctx, r.s, "get category", id)
}

func (r *Categories) ListAll(ctx context.Context) ([]models.Category, error) {
	return listAll[models.Category](ctx, r.s, "list categories")
}

func (r *Categories) Update(ctx context.Context, id uint, p CategoryPatch) (*models.Category, error) {
	return patchRow(ctx, r.s, entityCategory, id, func(_ *gorm.DB, c *models.Category, changes map[string]any) error {
		if p.Name.apply(&c.Name) {
			changes["name"] = c.Name
		}
		return validateEntity(entityCategory, *c)
	})
}

// Delete leaves dishes of the category pointing at the removed id
func (r *Categories) Delete(ctx context.Context, id uint) (bool, error) {
	return deleteByID[models.Category](ctx, r.s, entityCategory, id)
}
