package te

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/ge-editor/utils"

	"github.com/ge-editor/tecore/vline"
)

// Output for the drawing side. Pixel positions are relative to the top left
// corner of the text area, after scrolling.

// Line is a document line inside the view.
type Line struct {
	RowIndex int
	Text     string
	Y        int // pixels
}

// MatchRect is the highlight of one search match.
type MatchRect struct {
	utils.Rect
	Current bool
}

// ScrollOffset returns the horizontal offset in pixels and the vertical
// offset in lines.
func (e *Editor) ScrollOffset() vline.Scroll {
	return e.Meta.Scroll
}

// CaretPixel returns the pixel position of the caret.
func (e *Editor) CaretPixel() (x, y int) {
	x = e.vlines.GetVline(e.RowIndex).PixelAtColumn(e.ColIndex) - e.X
	y = (e.RowIndex - e.Y) * e.viewport.LineHeight
	return x, y
}

// PixelAtColumn returns the pixel offset of colIndex on rowIndex, before scrolling.
func (e *Editor) PixelAtColumn(rowIndex, colIndex int) int {
	return e.vlines.GetVline(rowIndex).PixelAtColumn(colIndex)
}

// VisibleLines returns the lines shown by the view, top to bottom.
func (e *Editor) VisibleLines() []Line {
	first, last := e.viewport.VisibleRows(e.Meta.Scroll, e.LenRows())
	if first < 0 {
		return nil
	}
	lines := make([]Line, 0, last-first+1)
	for i := first; i <= last; i++ {
		lines = append(lines, Line{
			RowIndex: i,
			Text:     e.Row(i).String(),
			Y:        (i - e.Y) * e.viewport.LineHeight,
		})
	}
	return lines
}

// rect is the highlight of the pixel span x0..x1 on rowIndex.
func (e *Editor) rect(rowIndex, x0, x1 int) utils.Rect {
	return utils.Rect{
		X:      x0 - e.X,
		Y:      (rowIndex - e.Y) * e.viewport.LineHeight,
		Width:  x1 - x0,
		Height: e.viewport.LineHeight,
	}
}

// HasSelection reports whether a selection with an extent exists.
func (e *Editor) HasSelection() bool {
	return e.selection.IsActive()
}

// SelectionText returns the selected text, lines joined with LF.
func (e *Editor) SelectionText() string {
	return e.selection.Text(e.File)
}

// SelectionRects returns one rectangle per visible selected line.
// A selected line break is shown as one cell past the end of the line.
func (e *Editor) SelectionRects() []utils.Rect {
	if !e.selection.IsActive() {
		return nil
	}
	first, last := e.viewport.VisibleRows(e.Meta.Scroll, e.LenRows())
	if first < 0 {
		return nil
	}
	start, end := e.selection.Normalize()
	start, end = e.ClampCursor(start), e.ClampCursor(end)

	var rects []utils.Rect
	for i := max(first, start.RowIndex); i <= min(last, end.RowIndex); i++ {
		vl := e.vlines.GetVline(i)
		x0 := 0
		if i == start.RowIndex {
			x0 = vl.PixelAtColumn(start.ColIndex)
		}
		x1 := vl.Width() + e.cfg.CellWidth
		if i == end.RowIndex {
			x1 = vl.PixelAtColumn(end.ColIndex)
		}
		if x1 > x0 {
			rects = append(rects, e.rect(i, x0, x1))
		}
	}
	return rects
}

// MatchRects returns the rectangles of the search matches inside the view.
func (e *Editor) MatchRects() []MatchRect {
	first, last := e.viewport.VisibleRows(e.Meta.Scroll, e.LenRows())
	if first < 0 || !e.search.IsActive() {
		return nil
	}
	current, hasCurrent := e.search.Current()

	matches := e.search.InRows(first, last)
	rects := make([]MatchRect, 0, len(matches))
	for _, m := range matches {
		x0, x1 := e.vlines.GetVline(m.Row).Span(m.Start, m.End)
		rects = append(rects, MatchRect{
			Rect:    e.rect(m.Row, x0, x1),
			Current: hasCurrent && m == current,
		})
	}
	return rects
}

// SearchQuery returns the query being searched, empty when none.
func (e *Editor) SearchQuery() string {
	return e.search.Query()
}

// Title is the display name, marked when the document has unsaved changes.
func (e *Editor) Title() string {
	if e.IsModified() {
		return e.DisplayName() + " (Modified)"
	}
	return e.DisplayName()
}

// Stats is the information bar content.
type Stats struct {
	Line      int // 1-based
	Column    int // 1-based
	Lines     int
	Chars     int // runes, line terminators excluded
	Graphemes int // user-perceived characters
}

func (s Stats) String() string {
	return fmt.Sprintf("Ln %d, Col %d  |  Lines: %d  |  Chars: %d", s.Line, s.Column, s.Lines, s.Chars)
}

func (e *Editor) Stats() Stats {
	graphemes := 0
	for i := 0; i < e.LenRows(); i++ {
		graphemes += uniseg.GraphemeClusterCount(e.Row(i).String())
	}
	return Stats{
		Line:      e.RowIndex + 1,
		Column:    e.ColIndex + 1,
		Lines:     e.LenRows(),
		Chars:     e.LenChars(),
		Graphemes: graphemes,
	}
}
