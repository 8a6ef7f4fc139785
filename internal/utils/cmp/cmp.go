package cmp

// SliceEqualUnordered reports whether a and b hold the same elements, ignoring order.
//
// Duplicates are counted: [x, x, y] and [x, y, y] are not equal.
func SliceEqualUnordered[T interface{ Equal(T) bool }](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	// make a copy of b
	b = append([]T(nil), b...)

A:
	for _, x := range a {
		for i, y := range b {
			if x.Equal(y) {
				// remove y from b
				b = append(b[:i], b[i+1:]...)
				continue A
			}
		}
		return false
	}

	return len(b) == 0
}

// SliceEqual reports whether a and b hold equal elements in the same order.
func SliceEqual[T interface{ Equal(T) bool }](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// *a == *b, where both nil are equal.
func PEqEq[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// a.Equal(b) on pointers, where both nil are equal.
func PEqual[T interface{ Equal(T) bool }](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return (*a).Equal(*b)
}
