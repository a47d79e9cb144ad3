package vline

import (
	"github.com/mattn/go-runewidth"

	"github.com/ge-editor/gecore/define"

	"github.com/ge-editor/utils"

	"github.com/ge-editor/tecore/file"
)

// Measurer reports the pixel width of ch drawn at horizontal offset x,
// x being the sum of the widths of the runes before it on the line.
// Widths must not be negative, so prefix widths are monotonic.
type Measurer interface {
	RuneWidth(ch rune, x int) int
}

// CellMeasurer measures a monospace grid: every terminal cell is CellWidth pixels.
type CellMeasurer struct {
	CellWidth int
	TabWidth  int // in cells
	cond      *runewidth.Condition
}

// NewCellMeasurer returns a measurer for cells of cellWidth pixels.
// With ambiguousWide, East Asian ambiguous runes take two cells.
func NewCellMeasurer(cellWidth, tabWidth int, ambiguousWide bool) *CellMeasurer {
	m := &CellMeasurer{
		CellWidth: max(cellWidth, 1),
		TabWidth:  max(tabWidth, 1),
	}
	if ambiguousWide {
		m.cond = runewidth.NewCondition()
		m.cond.EastAsianWidth = true
	}
	return m
}

func (m *CellMeasurer) RuneWidth(ch rune, x int) int {
	return m.cellsOf(ch, x/m.CellWidth) * m.CellWidth
}

// cellsOf returns the number of cells ch takes at cell position pos.
func (m *CellMeasurer) cellsOf(ch rune, pos int) int {
	switch {
	case ch == '\t':
		return utils.TabWidth(pos, m.TabWidth)
	case ch == define.DEL, ch < 32: // shown as ^X
		return 2
	case m.cond != nil:
		return m.cond.RuneWidth(ch)
	}
	return utils.RuneWidth(ch)
}

// Update cell width and class
// x: pixel offset of the cell on the line
func updateCell(c *cell, ch rune, x int, m Measurer) {
	c.class = file.ClassOf(ch)
	c.SetCellWidth(max(m.RuneWidth(ch, x), 0))
}
