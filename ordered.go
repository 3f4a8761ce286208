package dataship

// CompareFloat64 is the three-way comparator used by Insert:
// -1 if a < b, +1 if a > b, and 0 otherwise.
func CompareFloat64(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// BinarySearch returns a position at which `target` can be inserted into `vals`
// without breaking its order, where `vals` is already sorted under `cmp`
// and cmp(target, candidate) reports whether target sorts before (-1), after (+1), or with (0) the candidate.
//
// Returns 0 for an empty slice and len(vals) if target sorts after every element.
// On a tie the position of the matching element is returned as soon as it is found,
// so the position among equal elements is not guaranteed to be the leftmost or rightmost.
func BinarySearch(vals []float64, target float64, cmp func(a, b float64) int) int {
	lo, hi := 0, len(vals)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch cmp(target, vals[mid]) {
		case -1:
			hi = mid
		case 1:
			lo = mid + 1
		default:
			return mid
		}
	}
	return lo
}

// Insert inserts `val` into the sorted slice `vals`, shifting later elements to the right.
// The returned slice shares its backing array with `vals` when there is spare capacity.
func Insert(vals []float64, val float64) []float64 {
	i := BinarySearch(vals, val, CompareFloat64)
	vals = append(vals, 0)
	copy(vals[i+1:], vals[i:])
	vals[i] = val
	return vals
}

// sortedMedian returns the median of an already sorted, non-empty slice.
func sortedMedian(sorted []float64) float64 {
	// rounds down if there are even number of elements
	mNumber := len(sorted) / 2

	// odd number of elements
	if len(sorted)%2 != 0 {
		return sorted[mNumber]
	}
	// even number of elements
	return (sorted[mNumber-1] + sorted[mNumber]) / 2
}
