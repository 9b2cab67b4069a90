package fileio

import (
	"io"
	"strings"
)

// LineEnding is the newline convention of a file on disk.
type LineEnding uint8

const (
	// LineEndingLF is Unix style "\n".
	LineEndingLF LineEnding = iota
	// LineEndingCRLF is Windows style "\r\n".
	LineEndingCRLF
	// LineEndingCR is classic Mac style "\r".
	LineEndingCR
)

// String returns the conventional short name.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "dos"
	case LineEndingCR:
		return "mac"
	default:
		return "unix"
	}
}

// Sequence returns the bytes written for one line break.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// DetectLineEnding returns the most common line ending in text. Text with no
// line breaks is LF.
func DetectLineEnding(text string) LineEnding {
	var lf, crlf, cr int
	for i := 0; i < len(text); i++ {
		switch {
		case text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n':
			crlf++
			i++
		case text[i] == '\r':
			cr++
		case text[i] == '\n':
			lf++
		}
	}

	switch {
	case crlf > 0 && crlf >= lf && crlf >= cr:
		return LineEndingCRLF
	case cr > 0 && cr > lf:
		return LineEndingCR
	default:
		return LineEndingLF
	}
}

// Normalize converts every line break in text to "\n".
func Normalize(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// endingWriter rewrites "\n" to the target line ending.
type endingWriter struct {
	w   io.Writer
	seq string
}

func newEndingWriter(w io.Writer, le LineEnding) io.Writer {
	if le == LineEndingLF {
		return w
	}
	return &endingWriter{w: w, seq: le.Sequence()}
}

// Write reports len(p) on success so io.Copy accounting stays in input
// bytes.
func (ew *endingWriter) Write(p []byte) (int, error) {
	s := strings.ReplaceAll(string(p), "\n", ew.seq)
	if _, err := io.WriteString(ew.w, s); err != nil {
		return 0, err
	}
	return len(p), nil
}
