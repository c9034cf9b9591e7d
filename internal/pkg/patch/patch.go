package patch

// Coalesce unwraps an optional field from a partial update request,
// falling back to the current value when the field was omitted.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
