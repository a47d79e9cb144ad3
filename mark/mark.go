package mark

import (
	"github.com/ge-editor/tecore/file"
)

// Source is the document content a selection reads from.
type Source interface {
	ClampCursor(c file.Cursor) file.Cursor
	GetRegion(a, b file.Cursor) []rune
}

func NewSelection() *Selection {
	return &Selection{}
}

// Selection is the range between the anchor, where selecting began, and
// the head, which follows the pointer. The two are kept in the order they
// were set; Normalize gives them in document order.
type Selection struct {
	Anchor file.Cursor
	Head   file.Cursor
	active bool
}

// Begin starts a selection at c.
func (s *Selection) Begin(c file.Cursor) {
	s.Anchor, s.Head = c, c
	s.active = true
}

// Extend moves the head to c.
func (s *Selection) Extend(c file.Cursor) {
	if !s.active {
		s.Begin(c)
		return
	}
	s.Head = c
}

// End finishes selecting. A selection with no extent is cleared.
func (s *Selection) End() {
	if s.Anchor.Equals(s.Head) {
		s.Clear()
	}
}

func (s *Selection) Clear() {
	*s = Selection{}
}

// IsActive reports whether there is a selection with an extent.
func (s *Selection) IsActive() bool {
	return s.active && !s.Anchor.Equals(s.Head)
}

// Normalize returns the ends of the selection in document order.
func (s *Selection) Normalize() (start, end file.Cursor) {
	return file.Order(s.Anchor, s.Head)
}

// Text returns the selected text, lines joined with LF. Ends past the
// document content are clamped to it.
func (s *Selection) Text(src Source) string {
	if !s.IsActive() {
		return ""
	}
	start, end := s.Normalize()
	return string(src.GetRegion(start, end))
}

// AdjustForInsertion keeps both ends on the same text after an insertion.
func (s *Selection) AdjustForInsertion(start, end file.Cursor) {
	if !s.active {
		return
	}
	s.Anchor.AdjustForInsertion(start, end)
	s.Head.AdjustForInsertion(start, end)
}

// AdjustForDeletion keeps both ends on the same text after a deletion.
func (s *Selection) AdjustForDeletion(start, end file.Cursor) {
	if !s.active {
		return
	}
	s.Anchor.AdjustForDeletion(start, end)
	s.Head.AdjustForDeletion(start, end)
}

// Clamp limits both ends to the content of src.
func (s *Selection) Clamp(src Source) {
	if !s.active {
		return
	}
	s.Anchor = src.ClampCursor(s.Anchor)
	s.Head = src.ClampCursor(s.Head)
}
