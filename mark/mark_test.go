package mark

import (
	"testing"

	"github.com/ge-editor/tecore/file"
)

func newTestFile(lines ...string) *file.File {
	ff := file.NewFile("")
	for i, line := range lines {
		if i > 0 {
			ff.SplitLine(i-1, ff.RowLength(i-1))
		}
		ff.InsertText(i, 0, []rune(line))
	}
	return ff
}

func TestSelectionText(t *testing.T) {
	ff := newTestFile("hello world", "foo bar", "baz")
	tests := []struct {
		name         string
		anchor, head file.Cursor
		want         string
	}{
		{"multi line", file.Cursor{0, 6}, file.Cursor{1, 3}, "world\nfoo"},
		{"reversed", file.Cursor{1, 3}, file.Cursor{0, 6}, "world\nfoo"},
		{"single line", file.Cursor{1, 4}, file.Cursor{1, 7}, "bar"},
		{"interior lines", file.Cursor{0, 11}, file.Cursor{2, 1}, "\nfoo bar\nb"},
		{"past the end", file.Cursor{2, 1}, file.Cursor{7, 40}, "az"},
		{"column past line end", file.Cursor{1, 4}, file.Cursor{1, 90}, "bar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection()
			s.Begin(tt.anchor)
			s.Extend(tt.head)
			s.End()
			if !s.IsActive() {
				t.Fatal("selection not active")
			}
			if got := s.Text(ff); got != tt.want {
				t.Errorf("Text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDegenerateSelectionClears(t *testing.T) {
	s := NewSelection()
	s.Begin(file.Cursor{1, 2})
	s.Extend(file.Cursor{1, 2})
	s.End()
	if s.IsActive() {
		t.Error("empty selection still active")
	}
	if got := s.Text(newTestFile("abc")); got != "" {
		t.Errorf("Text = %q", got)
	}
}

func TestNormalize(t *testing.T) {
	s := NewSelection()
	s.Begin(file.Cursor{3, 1})
	s.Extend(file.Cursor{1, 5})
	start, end := s.Normalize()
	if start != (file.Cursor{1, 5}) || end != (file.Cursor{3, 1}) {
		t.Errorf("Normalize = %v, %v", start, end)
	}
	if s.Anchor != (file.Cursor{3, 1}) {
		t.Errorf("Normalize changed the anchor: %v", s.Anchor)
	}
}

func TestSelectionFollowsEdits(t *testing.T) {
	s := NewSelection()
	s.Begin(file.Cursor{0, 4})
	s.Extend(file.Cursor{1, 2})

	s.AdjustForInsertion(file.Cursor{0, 0}, file.Cursor{0, 3})
	if s.Anchor != (file.Cursor{0, 7}) || s.Head != (file.Cursor{1, 2}) {
		t.Errorf("after insertion: %v %v", s.Anchor, s.Head)
	}
	s.AdjustForDeletion(file.Cursor{0, 1}, file.Cursor{1, 0})
	if s.Anchor != (file.Cursor{0, 1}) || s.Head != (file.Cursor{0, 3}) {
		t.Errorf("after deletion: %v %v", s.Anchor, s.Head)
	}

	ff := newTestFile("ab")
	s.Clamp(ff)
	if s.Head != (file.Cursor{0, 2}) {
		t.Errorf("after clamp: %v", s.Head)
	}
}
