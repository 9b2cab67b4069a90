package rope

import "strings"

// Point is a 0-indexed line/column position. Column is a byte offset within the line.
type Point struct {
	Line   int
	Column int
}

// summary holds the metrics aggregated over a subtree.
type summary struct {
	bytes int
	lines int // newline count
}

func (s summary) add(o summary) summary {
	return summary{bytes: s.bytes + o.bytes, lines: s.lines + o.lines}
}

func summarize(s string) summary {
	return summary{bytes: len(s), lines: strings.Count(s, "\n")}
}

// nthNewline returns the byte index of the nth newline (1-indexed) in s, or -1.
func nthNewline(s string, n int) int {
	if n <= 0 {
		return -1
	}
	idx := 0
	for {
		i := strings.IndexByte(s[idx:], '\n')
		if i < 0 {
			return -1
		}
		n--
		if n == 0 {
			return idx + i
		}
		idx += i + 1
	}
}
