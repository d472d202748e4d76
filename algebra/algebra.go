// Package algebra composes read-only relational queries over snapshots of the
// store's relations. Every operator is lazy: nothing is evaluated until the
// returned sequence is ranged over, and each sequence can be consumed once.
package algebra

import (
	"fmt"
	"iter"

	"restaurant-orders/models"
)

// Row is a relation-labelled list of column values
type Row struct {
	Relation string         `json:"relation"`
	Fields   []models.Field `json:"fields"`
}

// Get returns the value of the named column
func (r Row) Get(column string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == column {
			return f.Value, true
		}
	}
	return nil, false
}

// OrderDetail is one row of the order ⋈ customer ⋈ dish join
type OrderDetail struct {
	Order    models.Order    `json:"order"`
	Customer models.Customer `json:"customer"`
	Dish     models.Dish     `json:"dish"`
}

// once makes seq single-pass: ranging over it a second time yields nothing
func once[T any](seq iter.Seq[T]) iter.Seq[T] {
	used := false
	return func(yield func(T) bool) {
		if used {
			return
		}
		used = true
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// Select keeps the rows for which pred holds
func Select[T any](rows iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return once(func(yield func(T) bool) {
		for r := range rows {
			if pred(r) && !yield(r) {
				return
			}
		}
	})
}

// Rows converts records into labelled rows carrying every column
func Rows[T models.Record](rows iter.Seq[T]) iter.Seq[Row] {
	return once(func(yield func(Row) bool) {
		for r := range rows {
			if !yield(Row{Relation: r.TableName(), Fields: r.Fields()}) {
				return
			}
		}
	})
}

// Project reduces each record to the named columns, in the order given.
// Duplicates are kept. Column names are checked against T's schema before
// any row is read.
func Project[T models.Record](rows iter.Seq[T], columns ...string) (iter.Seq[Row], error) {
	var zero T
	index := map[string]int{}
	for i, f := range zero.Fields() {
		index[f.Name] = i
	}
	positions := make([]int, len(columns))
	for i, c := range columns {
		pos, ok := index[c]
		if !ok {
			return nil, fmt.Errorf("relation %s has no column %q", zero.TableName(), c)
		}
		positions[i] = pos
	}

	return once(func(yield func(Row) bool) {
		for r := range rows {
			all := r.Fields()
			out := make([]models.Field, len(positions))
			for i, pos := range positions {
				out[i] = all[pos]
			}
			if !yield(Row{Relation: r.TableName(), Fields: out}) {
				return
			}
		}
	}), nil
}

// NaturalJoin pairs every order with its customer and dish. Orders whose
// customer or dish no longer exists are left out.
func NaturalJoin(orders iter.Seq[models.Order], customers iter.Seq[models.Customer], dishes iter.Seq[models.Dish]) iter.Seq[OrderDetail] {
	return once(func(yield func(OrderDetail) bool) {
		byCustomer := map[uint]models.Customer{}
		for c := range customers {
			byCustomer[c.ID] = c
		}
		byDish := map[uint]models.Dish{}
		for d := range dishes {
			byDish[d.ID] = d
		}
		for o := range orders {
			c, ok := byCustomer[o.CustomerID]
			if !ok {
				continue
			}
			d, ok := byDish[o.DishID]
			if !ok {
				continue
			}
			if !yield(OrderDetail{Order: o, Customer: c, Dish: d}) {
				return
			}
		}
	})
}

// Difference yields the left rows whose key is not referenced by any right
// row. The referenced set is built from right before left is read.
func Difference[L, R any](left iter.Seq[L], key func(L) uint, right iter.Seq[R], ref func(R) uint) iter.Seq[L] {
	return once(func(yield func(L) bool) {
		referenced := map[uint]struct{}{}
		for r := range right {
			referenced[ref(r)] = struct{}{}
		}
		for l := range left {
			if _, ok := referenced[key(l)]; ok {
				continue
			}
			if !yield(l) {
				return
			}
		}
	})
}

// Union concatenates row sequences for display. Rows keep their own
// relation label and columns; no schema compatibility is assumed.
func Union(seqs ...iter.Seq[Row]) iter.Seq[Row] {
	return once(func(yield func(Row) bool) {
		for _, seq := range seqs {
			for r := range seq {
				if !yield(r) {
					return
				}
			}
		}
	})
}
