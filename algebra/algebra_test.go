package algebra

import (
	"slices"
	"testing"
	"time"

	"restaurant-orders/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dishA = models.Dish{ID: 1, Name: "A", Price: 10, CategoryID: 1}
	dishB = models.Dish{ID: 2, Name: "B", Price: 20, CategoryID: 1}
	ana   = models.Customer{ID: 5, Name: "Ana", Phone: "555"}
	day   = models.NewDate(2024, time.March, 15)
)

func TestSelect(t *testing.T) {
	dishes := []models.Dish{dishA, dishB}
	maxPrice := 20

	all := slices.Collect(Select(slices.Values(dishes), func(d models.Dish) bool { return d.Price >= 0 }))
	assert.Equal(t, dishes, all)

	none := slices.Collect(Select(slices.Values(dishes), func(d models.Dish) bool { return d.Price >= maxPrice+1 }))
	assert.Empty(t, none)

	some := slices.Collect(Select(slices.Values(dishes), func(d models.Dish) bool { return d.Price >= 15 }))
	assert.Equal(t, []models.Dish{dishB}, some)
}

func TestSequencesAreSinglePass(t *testing.T) {
	seq := Select(slices.Values([]models.Dish{dishA, dishB}), func(models.Dish) bool { return true })
	assert.Len(t, slices.Collect(seq), 2)
	assert.Empty(t, slices.Collect(seq))
}

func TestSelectStopsEarly(t *testing.T) {
	calls := 0
	seq := Select(slices.Values([]models.Dish{dishA, dishB}), func(models.Dish) bool {
		calls++
		return true
	})
	for range seq {
		break
	}
	assert.Equal(t, 1, calls)
}

func TestProject(t *testing.T) {
	customers := []models.Customer{ana, {ID: 6, Name: "Ana", Phone: "555"}}

	rows, err := Project(slices.Values(customers), "name", "phone")
	require.NoError(t, err)
	got := slices.Collect(rows)

	// positional projection: duplicates survive
	require.Len(t, got, 2)
	assert.Equal(t, got[0].Fields, got[1].Fields)
	assert.Equal(t, "customers", got[0].Relation)
	assert.Equal(t, []models.Field{{Name: "name", Value: "Ana"}, {Name: "phone", Value: "555"}}, got[0].Fields)

	v, ok := got[0].Get("phone")
	assert.True(t, ok)
	assert.Equal(t, "555", v)
	_, ok = got[0].Get("id")
	assert.False(t, ok)
}

func TestProjectUnknownColumn(t *testing.T) {
	_, err := Project(slices.Values([]models.Customer{ana}), "name", "email")
	assert.EqualError(t, err, `relation customers has no column "email"`)
}

func TestNaturalJoin(t *testing.T) {
	dish9 := models.Dish{ID: 9, Name: "Soda", Price: 5, CategoryID: 1}
	order := models.Order{ID: 1, CustomerID: 5, DishID: 9, OrderDate: day}
	dangling := models.Order{ID: 2, CustomerID: 5, DishID: 404, OrderDate: day}
	orphan := models.Order{ID: 3, CustomerID: 404, DishID: 9, OrderDate: day}

	got := slices.Collect(NaturalJoin(
		slices.Values([]models.Order{order, dangling, orphan}),
		slices.Values([]models.Customer{ana}),
		slices.Values([]models.Dish{dish9}),
	))
	assert.Equal(t, []OrderDetail{{Order: order, Customer: ana, Dish: dish9}}, got)

	// dish 9 deleted
	got = slices.Collect(NaturalJoin(
		slices.Values([]models.Order{order}),
		slices.Values([]models.Customer{ana}),
		slices.Values([]models.Dish{}),
	))
	assert.Empty(t, got)
}

func TestDifference(t *testing.T) {
	orders := []models.Order{{ID: 1, CustomerID: 5, DishID: 1, OrderDate: day}}

	got := slices.Collect(Difference(
		slices.Values([]models.Dish{dishA, dishB}), func(d models.Dish) uint { return d.ID },
		slices.Values(orders), func(o models.Order) uint { return o.DishID },
	))
	assert.Equal(t, []models.Dish{dishB}, got)
}

func TestUnion(t *testing.T) {
	cat := models.Category{ID: 1, Name: "Drinks"}

	got := slices.Collect(Union(
		Rows(slices.Values([]models.Dish{dishA})),
		Rows(slices.Values([]models.Category{cat})),
	))
	require.Len(t, got, 2)
	assert.Equal(t, "dishes", got[0].Relation)
	assert.Len(t, got[0].Fields, 4)
	assert.Equal(t, "categories", got[1].Relation)
	assert.Len(t, got[1].Fields, 2)
}
