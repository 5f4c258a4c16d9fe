package ptr

func To[T any](v T) *T {
	return &v
}

// Deref returns the zero value for nil
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
