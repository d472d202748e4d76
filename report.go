package main

import (
	"errors"
	"fmt"

	"restaurant-orders/algebra"
	"restaurant-orders/report"

	"github.com/spf13/cobra"
)

var errAccessDenied = errors.New("access denied, incorrect username or password")

func newReportCmd() *cobra.Command {
	var (
		username string
		password string
		minPrice int
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print every table and the relational algebra views",
		Long: `Print the categories, dishes, customers and orders tables followed by
the selection, projection, join, difference and union queries.

Example:
  restaurant report --user admin --password admin123 --min-price 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gate, err := newGate()
			if err != nil {
				return err
			}
			if !gate.Authenticate(username, password) {
				return errAccessDenied
			}

			s, closeStore, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			if err := report.Write(cmd.Context(), cmd.OutOrStdout(), algebra.NewQueries(s), minPrice); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "user", "", "username")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.Flags().IntVar(&minPrice, "min-price", 0, "price threshold for the selection and union views")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
