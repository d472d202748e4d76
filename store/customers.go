package store

import (
	"context"
	"log/slog"

	"restaurant-orders/models"

	"gorm.io/gorm"
)

type Customers struct {
	s *Store
}

type CustomerPatch struct {
	Name  Optional[string]
	Phone Optional[string]
}

func (r *Customers) Create(ctx context.Context, c models.Customer) (*models.Customer, error) {
	c.ID = 0
	if err := validateEntity(entityCustomer, c); err != nil {
		return nil, err
	}
	err := r.s.write(ctx, "create customer", func(tx *gorm.DB) error {
		return tx.Create(&c).Error
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("customer created", "id", c.ID)
	return &c, nil
}

func (r *Customers) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	return getByID[models.Customer](ctx, r.s, "get customer", id)
}

func (r *Customers) ListAll(ctx context.Context) ([]models.Customer, error) {
	return listAll[models.Customer](ctx, r.s, "list customers")
}

func (r *Customers) Update(ctx context.Context, id uint, p CustomerPatch) (*models.Customer, error) {
	return patchRow(ctx, r.s, entityCustomer, id, func(_ *gorm.DB, c *models.Customer, changes map[string]any) error {
		if p.Name.apply(&c.Name) {
			changes["name"] = c.Name
		}
		if p.Phone.apply(&c.Phone) {
			changes["phone"] = c.Phone
		}
		return validateEntity(entityCustomer, *c)
	})
}

// Delete leaves the customer's orders in place
func (r *Customers) Delete(ctx context.Context, id uint) (bool, error) {
	return deleteByID[models.Customer](ctx, r.s, entityCustomer, id)
}
