package pointer

// Ref returns a pointer to a copy of t.
//
// Use it to fill optional (nullable) properties from literals.
func Ref[T any](t T) *T {
	return &t
}
