package store

import (
	"context"
	"testing"

	"restaurant-orders/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDishes(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		opts  []Option
		check func(t *testing.T, s *Store, cat *models.Category)
	}{
		{
			name: "create with existing category succeeds",
			check: func(t *testing.T, s *Store, cat *models.Category) {
				d, err := s.Dishes.Create(ctx, models.Dish{Name: "Soda", Price: 5, CategoryID: cat.ID})
				require.NoError(t, err)
				got, err := s.Dishes.GetByID(ctx, d.ID)
				require.NoError(t, err)
				assert.Equal(t, d, got)
			},
		},
		{
			name: "create with missing category writes nothing",
			check: func(t *testing.T, s *Store, cat *models.Category) {
				_, err := s.Dishes.Create(ctx, models.Dish{Name: "Soda", Price: 5, CategoryID: cat.ID})
				require.NoError(t, err)
				before, err := s.Dishes.ListAll(ctx)
				require.NoError(t, err)

				_, err = s.Dishes.Create(ctx, models.Dish{Name: "Juice", Price: 4, CategoryID: 99})
				assert.ErrorIs(t, err, ErrNotFound)
				assert.EqualError(t, err, "Category with ID 99 not found")

				after, err := s.Dishes.ListAll(ctx)
				require.NoError(t, err)
				assert.Equal(t, before, after)
			},
		},
		{
			name: "negative price and empty name are rejected before the category lookup",
			check: func(t *testing.T, s *Store, cat *models.Category) {
				_, err := s.Dishes.Create(ctx, models.Dish{Name: "Soda", Price: -1, CategoryID: 99})
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "price", ve.Field)

				_, err = s.Dishes.Create(ctx, models.Dish{Name: "", Price: 1, CategoryID: cat.ID})
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "name", ve.Field)
			},
		},
		{
			name: "zero price is allowed",
			check: func(t *testing.T, s *Store, cat *models.Category) {
				d, err := s.Dishes.Create(ctx, models.Dish{Name: "Water", Price: 0, CategoryID: cat.ID})
				require.NoError(t, err)
				assert.Equal(t, 0, d.Price)
			},
		},
		{
			name: "empty patch returns the dish unchanged",
			check: func(t *testing.T, s *Store, cat *models.Category) {
				d, err := s.Dishes.Create(ctx, models.Dish{Name: "Soda", Price: 5, CategoryID: cat.ID})
				require.NoError(t, err)

				got, err := s.Dishes.Update(ctx, d.ID, DishPatch{})
				require.NoError(t, err)
				assert.Equal(t, d, got)
			},
		},
		{
			name: "partial patch changes only supplied fields",
			check: func(t *testing.T, s *Store, cat *models.Category) {
				d, err := s.Dishes.Create(ctx, models.Dish{Name: "Soda", Price: 5, CategoryID: cat.ID})
				require.NoError(t, err)

				got, err := s.Dishes.Update(ctx, d.ID, DishPatch{Price: Some(0)})
				require.NoError(t, err)
				assert.Equal(t, &models.Dish{ID: d.ID, Name: "Soda", Price: 0, CategoryID: cat.ID}, got)

				stored, err := s.Dishes.GetByID(ctx, d.ID)
				require.NoError(t, err)
				assert.Equal(t, got, stored)
			},
		},
		{
			name: "lenient update persists a missing category id",
			check: func(t *testing.T, s *Store, cat *models.Category) {
				d, err := s.Dishes.Create(ctx, models.Dish{Name: "Soda", Price: 5, CategoryID: cat.ID})
				require.NoError(t, err)

				got, err := s.Dishes.Update(ctx, d.ID, DishPatch{CategoryID: Some(uint(99))})
				require.NoError(t, err)
				assert.Equal(t, uint(99), got.CategoryID)
			},
		},
		{
			name: "strict update rejects a missing category id",
			opts: []Option{WithStrictReferences()},
			check: func(t *testing.T, s *Store, cat *models.Category) {
				assert.True(t, s.StrictReferences())
				d, err := s.Dishes.Create(ctx, models.Dish{Name: "Soda", Price: 5, CategoryID: cat.ID})
				require.NoError(t, err)

				_, err = s.Dishes.Update(ctx, d.ID, DishPatch{Name: Some("Cola"), CategoryID: Some(uint(99))})
				assert.ErrorIs(t, err, ErrNotFound)

				stored, err := s.Dishes.GetByID(ctx, d.ID)
				require.NoError(t, err)
				assert.Equal(t, d, stored)
			},
		},
		{
			name: "deleting an ordered dish keeps the order",
			check: func(t *testing.T, s *Store, cat *models.Category) {
				d, err := s.Dishes.Create(ctx, models.Dish{Name: "Soda", Price: 5, CategoryID: cat.ID})
				require.NoError(t, err)
				c, err := s.Customers.Create(ctx, models.Customer{Name: "Ana", Phone: "555"})
				require.NoError(t, err)
				o, err := s.Orders.Create(ctx, models.Order{CustomerID: c.ID, DishID: d.ID, OrderDate: orderDate()})
				require.NoError(t, err)

				deleted, err := s.Dishes.Delete(ctx, d.ID)
				require.NoError(t, err)
				assert.True(t, deleted)

				stored, err := s.Orders.GetByID(ctx, o.ID)
				require.NoError(t, err)
				require.NotNil(t, stored)
				assert.Equal(t, d.ID, stored.DishID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(t, tt.opts...)
			cat, err := s.Categories.Create(ctx, models.Category{Name: "Drinks"})
			require.NoError(t, err)
			tt.check(t, s, cat)
		})
	}
}
