package patch

// Coalesce resolves an optional PATCH field: the submitted value when present,
// the stored one otherwise.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
