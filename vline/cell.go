package vline

import "github.com/ge-editor/tecore/file"

// cell is the measured extent of one rune.
type cell struct {
	width int
	class file.CharClass
}

func (m *cell) IsEmpty() bool {
	return m.width == 0
}

func (m cell) GetCellWidth() int {
	return m.width
}

func (m *cell) SetCellWidth(w int) {
	m.width = w
}

func (m cell) Class() file.CharClass {
	return m.class
}
