package vehicle

import "sort"

// SortNewestFirst orders vehicles by descending ID in place. Numeric IDs
// compare numerically and come before non-numeric ones, which compare as
// strings. Drafts count as ID 0.
func SortNewestFirst(vehicles []Vehicle) {
	sort.SliceStable(vehicles, func(i, j int) bool {
		return newer(vehicles[i].ID, vehicles[j].ID)
	})
}

func newer(a, b ID) bool {
	an, aNum := numericOrZero(a)
	bn, bNum := numericOrZero(b)
	switch {
	case aNum && bNum:
		return an > bn
	case aNum != bNum:
		return aNum
	default:
		return a > b
	}
}

func numericOrZero(id ID) (int64, bool) {
	if id.IsZero() {
		return 0, true
	}
	return id.Int()
}
