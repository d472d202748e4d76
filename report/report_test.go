package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"restaurant-orders/algebra"
	"restaurant-orders/config"
	"restaurant-orders/models"
	"restaurant-orders/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestWrite(t *testing.T) {
	ctx := context.Background()
	db, err := config.OpenDB(config.DBConfig{Path: ":memory:", LogLevel: logger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() { config.CloseDB(db) })
	s := store.New(db)

	drinks, err := s.Categories.Create(ctx, models.Category{Name: "Drinks"})
	require.NoError(t, err)
	soda, err := s.Dishes.Create(ctx, models.Dish{Name: "Soda", Price: 5, CategoryID: drinks.ID})
	require.NoError(t, err)
	_, err = s.Dishes.Create(ctx, models.Dish{Name: "Lemonade", Price: 9, CategoryID: drinks.ID})
	require.NoError(t, err)
	ana, err := s.Customers.Create(ctx, models.Customer{Name: "Ana", Phone: "555"})
	require.NoError(t, err)
	_, err = s.Orders.Create(ctx, models.Order{CustomerID: ana.ID, DishID: soda.ID, OrderDate: models.NewDate(2024, time.March, 15)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(ctx, &buf, algebra.NewQueries(s), 6))
	out := buf.String()

	for _, want := range []string{
		"Categories",
		"Drinks",
		"2024-03-15",
		"Selection: dishes with price >= 6",
		"Projection: customer name and phone",
		"Join: orders with customer and dish",
		"Difference: dishes never ordered",
		"Lemonade",
		"id=1 name=Drinks",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWriteEmptyStore(t *testing.T) {
	db, err := config.OpenDB(config.DBConfig{Path: ":memory:", LogLevel: logger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() { config.CloseDB(db) })

	var buf bytes.Buffer
	require.NoError(t, Write(context.Background(), &buf, algebra.NewQueries(store.New(db)), 0))
	assert.Contains(t, buf.String(), "no categories")
	assert.Contains(t, buf.String(), "no orders")
}
