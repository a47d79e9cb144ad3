package vline

import (
	"runtime"

	"github.com/ge-editor/gecore/verb"
)

type cells []cell

func (m *cells) make(size int) {
	l := len(*m)
	if size < l {
		*m = (*m)[:size]
	} else if size > l {
		*m = append(*m, make(cells, size-l)...)
	}
}

// GetCell returns the cell at index, or an empty cell when index is out of range.
func (m cells) GetCell(index int) cell {
	if index < 0 || index >= len(m) {
		pc, file, line, _ := runtime.Caller(1)
		verb.PP("Failed: GetCell: index: %d, len: %d, file: %s, line: %d, function: %s", index, len(m), file, line, runtime.FuncForPC(pc).Name())
		return cell{}
	}
	return m[index]
}
