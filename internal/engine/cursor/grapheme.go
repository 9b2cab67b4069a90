package cursor

import "github.com/rivo/uniseg"

// DefaultTabWidth is the display width of a tab stop.
const DefaultTabWidth = 8

// clusters calls fn with the start offset and display width of every
// grapheme cluster in s. Iteration stops when fn returns false.
func clusters(s string, tabWidth int, fn func(start, width int) bool) {
	state := -1
	pos, col := 0, 0
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "\t" {
			width = tabWidth - col%tabWidth
		}
		if !fn(pos, width) {
			return
		}
		pos += len(cluster)
		col += width
	}
}

// NextBoundary returns the byte column of the grapheme cluster after the one
// at col, or len(s) if col is in the last cluster.
func NextBoundary(s string, col int) int {
	next := len(s)
	clusters(s, DefaultTabWidth, func(start, _ int) bool {
		if start > col {
			next = start
			return false
		}
		return true
	})
	return next
}

// PrevBoundary returns the start of the grapheme cluster before col, or 0.
func PrevBoundary(s string, col int) int {
	prev := 0
	clusters(s, DefaultTabWidth, func(start, _ int) bool {
		if start >= col {
			return false
		}
		prev = start
		return true
	})
	return prev
}

// SnapToBoundary returns the start of the grapheme cluster containing col.
func SnapToBoundary(s string, col int) int {
	if col >= len(s) {
		return len(s)
	}
	snapped := 0
	clusters(s, DefaultTabWidth, func(start, _ int) bool {
		if start > col {
			return false
		}
		snapped = start
		return true
	})
	return snapped
}

// LastCharStart returns the start of the last grapheme cluster in s, or 0 for
// an empty string.
func LastCharStart(s string) int {
	return PrevBoundary(s, len(s))
}

// DisplayColumn returns the number of display cells before byte column col.
func DisplayColumn(s string, col, tabWidth int) int {
	cells := 0
	clusters(s, tabWidth, func(start, width int) bool {
		if start >= col {
			return false
		}
		cells += width
		return true
	})
	return cells
}

// ColumnForDisplay returns the byte column of the cluster covering display
// cell want, or len(s) when the line is narrower than want.
func ColumnForDisplay(s string, want, tabWidth int) int {
	col := len(s)
	cells := 0
	clusters(s, tabWidth, func(start, width int) bool {
		if cells+width > want {
			col = start
			return false
		}
		cells += width
		return true
	})
	return col
}
