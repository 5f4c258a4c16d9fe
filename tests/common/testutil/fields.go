//go:build unit || e2e

package testutil

// Field sets key to value, or removes key when value is nil.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Fields applies several Field mutations in order.
func Fields(kv map[string]any) func(map[string]any) {
	return func(m map[string]any) {
		for k, v := range kv {
			Field(k, v)(m)
		}
	}
}
