package buffer

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"pgregory.net/rapid"
)

func TestNew(t *testing.T) {
	b := New()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
	if got := b.LineText(0); got != "" {
		t.Errorf("expected empty line, got %q", got)
	}
}

func TestNewFromStringMultiline(t *testing.T) {
	b := NewFromString("line1\nline2\nline3")

	if b.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", b.LineCount())
	}
	for i, want := range []string{"line1", "line2", "line3"} {
		if got := b.LineText(i); got != want {
			t.Errorf("LineText(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestNewFromStringKeepsLineEndings(t *testing.T) {
	b := NewFromString("a\r\nb")
	if b.Text() != "a\r\nb" {
		t.Errorf("buffer must not rewrite line endings, got %q", b.Text())
	}
	if b.LineText(0) != "a\r" {
		t.Errorf("expected carriage return kept in line, got %q", b.LineText(0))
	}
}

func TestInsert(t *testing.T) {
	b := NewFromString("Hello World")

	e, err := b.Insert(5, ",")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if e.Range != (Range{Start: 5, End: 5}) || e.NewText != "," || e.OldText != "" {
		t.Errorf("unexpected edit %v", e)
	}
	if e.End() != 6 {
		t.Errorf("expected end 6, got %d", e.End())
	}
	if b.Text() != "Hello, World" {
		t.Errorf("expected 'Hello, World', got %q", b.Text())
	}
}

func TestInsertOutOfRange(t *testing.T) {
	b := NewFromString("abc")
	rev := b.Revision()

	_, err := b.Insert(4, "x")
	if !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
	if b.Text() != "abc" || b.Revision() != rev {
		t.Error("failed insert must not modify the buffer")
	}
}

func TestDelete(t *testing.T) {
	b := NewFromString("Hello, World")

	e, err := b.Delete(Range{Start: 5, End: 7})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if e.OldText != ", " {
		t.Errorf("expected old text %q, got %q", ", ", e.OldText)
	}
	if b.Text() != "HelloWorld" {
		t.Errorf("expected HelloWorld, got %q", b.Text())
	}
}

func TestDeleteInvalid(t *testing.T) {
	tests := []struct {
		name string
		r    Range
	}{
		{"end before start", Range{Start: 3, End: 1}},
		{"past end", Range{Start: 1, End: 10}},
		{"negative", Range{Start: -1, End: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString("abcd")
			if _, err := b.Delete(tt.r); !errors.Is(err, ErrRangeInvalid) {
				t.Errorf("expected ErrRangeInvalid, got %v", err)
			}
		})
	}
}

func TestEditInvert(t *testing.T) {
	b := NewFromString("one two three")

	e, err := b.Replace(4, 7, "2")
	if err != nil {
		t.Fatal(err)
	}
	if b.Text() != "one 2 three" {
		t.Fatalf("unexpected text %q", b.Text())
	}

	if _, err := b.Apply(e.Invert()); err != nil {
		t.Fatalf("apply inverse: %v", err)
	}
	if b.Text() != "one two three" {
		t.Errorf("inverse did not restore text, got %q", b.Text())
	}

	if _, err := b.Apply(e); err != nil {
		t.Fatalf("reapply: %v", err)
	}
	if b.Text() != "one 2 three" {
		t.Errorf("reapply produced %q", b.Text())
	}
}

func TestApplyStale(t *testing.T) {
	b := NewFromString("abc")
	e := Edit{Range: Range{Start: 0, End: 1}, OldText: "z", NewText: "y"}
	if _, err := b.Apply(e); !errors.Is(err, ErrStaleEdit) {
		t.Errorf("expected ErrStaleEdit, got %v", err)
	}
}

func TestPositionConversion(t *testing.T) {
	b := NewFromString("ab\n\ncde")

	tests := []struct {
		offset int
		point  Point
	}{
		{0, Point{0, 0}},
		{2, Point{0, 2}},
		{3, Point{1, 0}},
		{4, Point{2, 0}},
		{7, Point{2, 3}},
	}
	for _, tt := range tests {
		if got := b.PositionOf(tt.offset); got != tt.point {
			t.Errorf("PositionOf(%d) = %v, want %v", tt.offset, got, tt.point)
		}
		if got := b.OffsetOf(tt.point); got != tt.offset {
			t.Errorf("OffsetOf(%v) = %d, want %d", tt.point, got, tt.offset)
		}
	}
}

func TestBoundsPanics(t *testing.T) {
	b := NewFromString("ab\ncd")

	tests := []struct {
		name string
		fn   func()
	}{
		{"line past end", func() { b.LineText(2) }},
		{"negative line", func() { b.LineLen(-1) }},
		{"column past line", func() { b.OffsetOf(Point{Line: 0, Column: 3}) }},
		{"offset past end", func() { b.PositionOf(6) }},
		{"slice past end", func() { b.Slice(0, 9) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				be, ok := r.(*BoundsError)
				if !ok {
					t.Fatalf("expected *BoundsError panic, got %v", r)
				}
				if !errors.Is(be, ErrOffsetOutOfRange) {
					t.Error("BoundsError should match ErrOffsetOutOfRange")
				}
			}()
			tt.fn()
		})
	}
}

func TestCheckPoint(t *testing.T) {
	b := NewFromString("ab\ncd")

	if err := b.CheckPoint(Point{Line: 1, Column: 2}); err != nil {
		t.Errorf("end of last line should be valid: %v", err)
	}
	if err := b.CheckPoint(Point{Line: 1, Column: 3}); err == nil {
		t.Error("column past line end should be invalid")
	}
	if err := b.CheckOffset(5); err != nil {
		t.Errorf("offset at Len should be valid: %v", err)
	}
	if err := b.CheckOffset(6); err == nil {
		t.Error("offset past Len should be invalid")
	}
}

func TestLinesClamped(t *testing.T) {
	b := NewFromString("a\nb\nc")

	var got []string
	for i, line := range b.Lines(1, 10) {
		got = append(got, line)
		if b.LineText(i) != line {
			t.Errorf("line %d mismatch", i)
		}
	}
	if strings.Join(got, ",") != "b,c" {
		t.Errorf("expected b,c got %v", got)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	b := NewFromString("before")
	snap := b.Snapshot()

	if _, err := b.Insert(0, "x"); err != nil {
		t.Fatal(err)
	}
	if snap.Text() != "before" {
		t.Errorf("snapshot changed to %q", snap.Text())
	}
	if snap.Revision() == b.Revision() {
		t.Error("revision should advance after an edit")
	}
}

func TestWriteToRoundTrip(t *testing.T) {
	text := strings.Repeat("trailing space \t\n", 200) + "no newline"
	b := NewFromString(text)

	var sb strings.Builder
	if _, err := b.WriteTo(&sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != text {
		t.Error("serialisation is not byte-identical")
	}
}

func TestConcurrentReads(t *testing.T) {
	b := NewFromString(strings.Repeat("line\n", 100))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = b.LineText(j)
			}
		}()
	}
	wg.Wait()
}

// Every valid point survives OffsetOf then PositionOf after any sequence of
// inserts and deletes.
func TestProperty_PositionRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewFromString(rapid.StringMatching(`[ab\n]{0,40}`).Draw(t, "initial"))

		ops := rapid.IntRange(0, 20).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			if rapid.Bool().Draw(t, "insert") {
				off := rapid.IntRange(0, b.Len()).Draw(t, "off")
				text := rapid.StringMatching(`[xé\n]{1,5}`).Draw(t, "text")
				if _, err := b.Insert(off, text); err != nil {
					t.Fatal(err)
				}
			} else if b.Len() > 0 {
				start := rapid.IntRange(0, b.Len()).Draw(t, "start")
				end := rapid.IntRange(start, b.Len()).Draw(t, "end")
				if _, err := b.Delete(Range{Start: start, End: end}); err != nil {
					t.Fatal(err)
				}
			}

			for line := 0; line < b.LineCount(); line++ {
				for col := 0; col <= b.LineLen(line); col++ {
					p := Point{Line: line, Column: col}
					if got := b.PositionOf(b.OffsetOf(p)); got != p {
						t.Fatalf("round trip %v -> %v", p, got)
					}
				}
			}
		}
	})
}
