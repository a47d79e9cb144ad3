package buffer

import (
	"github.com/ge-editor/tecore/file"
	"github.com/ge-editor/tecore/vline"
)

func NewMeta() *Meta {
	return &Meta{
		Cursor: file.Cursor{
			RowIndex: 0,
			ColIndex: 0,
		},
		PrevCx: -1,
	}
}

// Meta is the view state of a document: caret and scroll.
type Meta struct {
	file.Cursor
	vline.Scroll
	// PrevCx is the caret pixel column kept while moving vertically, -1 when unset.
	PrevCx int
}

// Copy returns a snapshot of m.
func (m *Meta) Copy() *Meta {
	c := *m
	return &c
}
