package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", d.String())

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want string
	}{
		{name: "string", src: "2024-01-02", want: "2024-01-02"},
		{name: "bytes", src: []byte("2024-01-02"), want: "2024-01-02"},
		{name: "datetime string", src: "2024-01-02 00:00:00+00:00", want: "2024-01-02"},
		{name: "time", src: time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC), want: "2024-01-02"},
		{name: "nil", src: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d.String())
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
}

func TestDateJSON(t *testing.T) {
	data, err := json.Marshal(Order{ID: 1, CustomerID: 2, DishID: 3, OrderDate: NewDate(2024, time.May, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"customer_id":2,"dish_id":3,"order_date":"2024-05-01"}`, string(data))

	var o Order
	require.NoError(t, json.Unmarshal(data, &o))
	assert.True(t, o.OrderDate.Equal(NewDate(2024, time.May, 1)))

	assert.Error(t, json.Unmarshal([]byte(`{"order_date":"May 1"}`), &o))
}

func TestFieldsOrder(t *testing.T) {
	d := Dish{ID: 1, Name: "Soda", Price: 5, CategoryID: 2}
	var names []string
	for _, f := range d.Fields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"id", "name", "price", "category_id"}, names)
}
