package render

import "sort"

// Row is one packed grid row: one or two item indices into the original
// item list. Paired rows always carry the large item in slot 0.
type Row struct {
	Items  []int
	Paired bool
}

// Pack partitions items (given by weight) into brick-pattern rows. It
// scans left to right; for each unconsumed item it looks forward among the
// still-unconsumed items for the first "large" item (weight strictly above
// threshold) and the first "small" item (weight at or below). Both found
// means a paired row; otherwise the current item becomes a singleton row.
// Every input index appears in exactly one row. With all weights at or
// below the threshold no pairing ever succeeds (the comparison is strict),
// so every item packs as a singleton.
func Pack(weights []int, threshold float64) []Row {
	used := make([]bool, len(weights))
	var rows []Row
	for i := range weights {
		if used[i] {
			continue
		}
		large, small := -1, -1
		for j := i; j < len(weights); j++ {
			if used[j] {
				continue
			}
			if float64(weights[j]) > threshold {
				if large < 0 {
					large = j
				}
			} else if small < 0 {
				small = j
			}
			if large >= 0 && small >= 0 {
				break
			}
		}
		if large >= 0 && small >= 0 {
			used[large] = true
			used[small] = true
			rows = append(rows, Row{Items: []int{large, small}, Paired: true})
		} else {
			used[i] = true
			rows = append(rows, Row{Items: []int{i}})
		}
	}
	return rows
}

// HighlightSlot returns which slot of a paired row receives the gradient
// highlight: row parity alternates the emphasis between the two cards
// while the large card always stays in slot 0.
func HighlightSlot(rowIndex int) int {
	return rowIndex % 2
}

// Median returns the median of weights, averaging the two middle values
// for an even count. Empty input yields 0.
func Median(weights []int) float64 {
	if len(weights) == 0 {
		return 0
	}
	sorted := make([]int, len(weights))
	copy(sorted, weights)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}

// gridClass selects the responsive two-column grid class, applied only
// when there are more than two items and at least one carries weight.
func gridClass(weights []int) string {
	if len(weights) <= 2 {
		return ""
	}
	for _, w := range weights {
		if w > 0 {
			return "grid-2-1"
		}
	}
	return ""
}
