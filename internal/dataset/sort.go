package dataset

// SortBy orders the samples in place by one coordinate using quicksort with
// the last element of each range as pivot. Whole samples are exchanged, so
// the other coordinate follows its key.
//
// Average cost is O(n log n). Already sorted or adversarial input degrades to
// O(n²) comparisons; that is acceptable for the small datasets this tool is
// meant for. The sort is not stable.
func (d *Dataset) SortBy(a Axis) {
	if d.Len() < 2 {
		return
	}
	quicksort(d.Samples, a, 0, len(d.Samples)-1)
}

// IsSortedBy reports whether samples are non-decreasing on the given axis.
func (d *Dataset) IsSortedBy(a Axis) bool {
	for i := 1; i < d.Len(); i++ {
		if d.Samples[i].Get(a) < d.Samples[i-1].Get(a) {
			return false
		}
	}
	return true
}

func quicksort(s []Sample, a Axis, low, high int) {
	for low < high {
		p := partition(s, a, low, high)
		// Recurse on the smaller side to keep stack depth logarithmic.
		if p-low < high-p {
			quicksort(s, a, low, p-1)
			low = p + 1
		} else {
			quicksort(s, a, p+1, high)
			high = p - 1
		}
	}
}

func partition(s []Sample, a Axis, low, high int) int {
	pivot := s[high].Get(a)
	i := low - 1
	for j := low; j < high; j++ {
		if s[j].Get(a) <= pivot {
			i++
			s[i], s[j] = s[j], s[i]
		}
	}
	s[i+1], s[high] = s[high], s[i+1]
	return i + 1
}
