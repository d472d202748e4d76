// Package report prints the relations and the relational-algebra views as
// plain text tables.
package report

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"restaurant-orders/algebra"
)

// Write prints every relation followed by the five algebra queries.
// minPrice drives the selection and the union.
func Write(ctx context.Context, w io.Writer, q *algebra.Queries, minPrice int) error {
	tables, err := q.Tables(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	section(tw, "Categories", "ID\tNAME")
	if len(tables.Categories) == 0 {
		fmt.Fprintln(tw, "no categories")
	}
	for _, c := range tables.Categories {
		fmt.Fprintf(tw, "%d\t%s\n", c.ID, c.Name)
	}

	section(tw, "Dishes", "ID\tNAME\tPRICE\tCATEGORY")
	if len(tables.Dishes) == 0 {
		fmt.Fprintln(tw, "no dishes")
	}
	for _, d := range tables.Dishes {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", d.ID, d.Name, d.Price, d.CategoryID)
	}

	section(tw, "Customers", "ID\tNAME\tPHONE")
	if len(tables.Customers) == 0 {
		fmt.Fprintln(tw, "no customers")
	}
	for _, c := range tables.Customers {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Name, c.Phone)
	}

	section(tw, "Orders", "ID\tCUSTOMER\tDISH\tDATE")
	if len(tables.Orders) == 0 {
		fmt.Fprintln(tw, "no orders")
	}
	for _, o := range tables.Orders {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", o.Order.ID, o.Customer.Name, o.Dish.Name, o.Order.OrderDate)
	}

	selected, err := q.DishesPricedAtLeast(ctx, minPrice)
	if err != nil {
		return err
	}
	section(tw, fmt.Sprintf("Selection: dishes with price >= %d", minPrice), "ID\tNAME\tPRICE")
	for d := range selected {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", d.ID, d.Name, d.Price)
	}

	contacts, err := q.CustomerContacts(ctx)
	if err != nil {
		return err
	}
	section(tw, "Projection: customer name and phone", "NAME\tPHONE")
	for r := range contacts {
		name, _ := r.Get("name")
		phone, _ := r.Get("phone")
		fmt.Fprintf(tw, "%v\t%v\n", name, phone)
	}

	joined, err := q.OrderDetails(ctx)
	if err != nil {
		return err
	}
	section(tw, "Join: orders with customer and dish", "ORDER\tCUSTOMER\tDISH\tDATE")
	for o := range joined {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", o.Order.ID, o.Customer.Name, o.Dish.Name, o.Order.OrderDate)
	}

	unordered, err := q.UnorderedDishes(ctx)
	if err != nil {
		return err
	}
	section(tw, "Difference: dishes never ordered", "ID\tNAME")
	for d := range unordered {
		fmt.Fprintf(tw, "%d\t%s\n", d.ID, d.Name)
	}

	union, err := q.DishesAndCategories(ctx, minPrice)
	if err != nil {
		return err
	}
	section(tw, fmt.Sprintf("Union: dishes with price >= %d and all categories", minPrice), "RELATION\tVALUES")
	for r := range union {
		fmt.Fprintf(tw, "%s\t", r.Relation)
		for i, f := range r.Fields {
			if i > 0 {
				fmt.Fprint(tw, " ")
			}
			fmt.Fprintf(tw, "%s=%v", f.Name, f.Value)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

func section(w io.Writer, title, header string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, header)
}
