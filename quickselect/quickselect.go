package quickselect

// Select returns the k-th smallest element of items (0-indexed) under
// less, without mutating items. Ties (neither less(a,b) nor less(b,a))
// are treated as equal and any one of them may be returned for a k
// that falls within the tied run.
//
// Panics if k is outside [0, len(items)).
//
// Complexity: expected O(n), worst case O(n^2) (a pathological pivot
// sequence), matching the classic quickselect tradeoff.
func Select[T any](items []T, k int, less func(a, b T) bool) T {
	if k < 0 || k >= len(items) {
		panic("quickselect: k out of range")
	}
	work := append([]T(nil), items...)
	return selectRec(work, k, less)
}

func selectRec[T any](items []T, k int, less func(a, b T) bool) T {
	if len(items) == 1 {
		return items[0]
	}
	pivot := items[len(items)/2]

	var below, equal, above []T
	for _, it := range items {
		switch {
		case less(it, pivot):
			below = append(below, it)
		case less(pivot, it):
			above = append(above, it)
		default:
			equal = append(equal, it)
		}
	}

	switch {
	case k < len(below):
		return selectRec(below, k, less)
	case k < len(below)+len(equal):
		return pivot
	default:
		return selectRec(above, k-len(below)-len(equal), less)
	}
}

// Median returns the lower median of items under less: Select at
// index (len(items)-1)/2. Panics if items is empty.
func Median[T any](items []T, less func(a, b T) bool) T {
	if len(items) == 0 {
		panic("quickselect: Median of empty slice")
	}
	return Select(items, (len(items)-1)/2, less)
}
