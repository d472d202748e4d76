package algebra

import (
	"context"
	"iter"
	"slices"

	"restaurant-orders/models"
	"restaurant-orders/store"
)

// Queries binds the operators to the store's relations. Each method takes a
// fresh snapshot of the relations it reads.
type Queries struct {
	store *store.Store
}

func NewQueries(s *store.Store) *Queries {
	return &Queries{store: s}
}

func priceAtLeast(minPrice int) func(models.Dish) bool {
	return func(d models.Dish) bool { return d.Price >= minPrice }
}

// DishesPricedAtLeast is σ(price >= minPrice)(dishes)
func (q *Queries) DishesPricedAtLeast(ctx context.Context, minPrice int) (iter.Seq[models.Dish], error) {
	dishes, err := q.store.Dishes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Select(slices.Values(dishes), priceAtLeast(minPrice)), nil
}

// CustomerContacts is π(name, phone)(customers)
func (q *Queries) CustomerContacts(ctx context.Context) (iter.Seq[Row], error) {
	customers, err := q.store.Customers.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Project(slices.Values(customers), "name", "phone")
}

// OrderDetails is orders ⋈ customers ⋈ dishes
func (q *Queries) OrderDetails(ctx context.Context) (iter.Seq[OrderDetail], error) {
	orders, err := q.store.Orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := q.store.Customers.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	dishes, err := q.store.Dishes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return NaturalJoin(slices.Values(orders), slices.Values(customers), slices.Values(dishes)), nil
}

// UnorderedDishes is dishes − π(dish_id)(orders)
func (q *Queries) UnorderedDishes(ctx context.Context) (iter.Seq[models.Dish], error) {
	dishes, err := q.store.Dishes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := q.store.Orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Difference(
		slices.Values(dishes), func(d models.Dish) uint { return d.ID },
		slices.Values(orders), func(o models.Order) uint { return o.DishID },
	), nil
}

// DishesAndCategories lists dishes priced at least minPrice followed by every
// category
func (q *Queries) DishesAndCategories(ctx context.Context, minPrice int) (iter.Seq[Row], error) {
	dishes, err := q.store.Dishes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := q.store.Categories.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Union(
		Rows(Select(slices.Values(dishes), priceAtLeast(minPrice))),
		Rows(slices.Values(categories)),
	), nil
}

// Tables is a snapshot of every relation, with orders shown through the join
type Tables struct {
	Categories []models.Category `json:"categories"`
	Dishes     []models.Dish     `json:"dishes"`
	Customers  []models.Customer `json:"customers"`
	Orders     []OrderDetail     `json:"orders"`
}

func (q *Queries) Tables(ctx context.Context) (*Tables, error) {
	var (
		t   Tables
		err error
	)
	if t.Categories, err = q.store.Categories.ListAll(ctx); err != nil {
		return nil, err
	}
	if t.Dishes, err = q.store.Dishes.ListAll(ctx); err != nil {
		return nil, err
	}
	if t.Customers, err = q.store.Customers.ListAll(ctx); err != nil {
		return nil, err
	}
	orders, err := q.store.Orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	t.Orders = slices.AppendSeq([]OrderDetail{}, NaturalJoin(slices.Values(orders), slices.Values(t.Customers), slices.Values(t.Dishes)))
	return &t, nil
}
