package store

// Optional marks a patch field as present or absent. The zero value is
// absent, so Some("") means "set to empty" and is distinct from "no change".
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// FromPtr maps nil to absent
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}
	return Some(*p)
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

// apply overwrites *dst when the value is present and reports whether it did
func (o Optional[T]) apply(dst *T) bool {
	if !o.set {
		return false
	}
	*dst = o.value
	return true
}
