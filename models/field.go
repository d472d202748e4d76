package models

// Field is one named column value of a stored row
type Field struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Record is implemented by every persisted entity
type Record interface {
	TableName() string
	Fields() []Field
}
