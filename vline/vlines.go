package vline

import (
	"slices"

	"github.com/ge-editor/utils"

	"github.com/ge-editor/tecore/file"
)

func NewVlines(ff *file.File, m Measurer) *Vlines {
	return &Vlines{
		file:     ff,
		measurer: m,
	}
}

// Vlines caches one Vline per document row.
// Editing code must Release, Insert or Delete the rows it touches.
type Vlines struct {
	file     *file.File
	measurer Measurer
	vlines   []*Vline
}

func (vs *Vlines) SetFile(ff *file.File) {
	vs.file = ff
	vs.ReleaseAll()
}

func (vs *Vlines) SetMeasurer(m Measurer) {
	vs.measurer = m
	vs.ReleaseAll()
}

func (vs *Vlines) Measurer() Measurer {
	return vs.measurer
}

// GetVline returns the measured row, measuring it on first use.
// Rows out of range measure as empty.
func (vs *Vlines) GetVline(rowIndex int) *Vline {
	row, ok := vs.file.GetRow(rowIndex)
	if !ok {
		return newVline(nil, vs.measurer)
	}
	vs.sync()
	if vs.vlines[rowIndex] == nil {
		vs.vlines[rowIndex] = newVline(row, vs.measurer)
	}
	return vs.vlines[rowIndex]
}

// sync resizes the cache when the row count changed without Insert or Delete.
func (vs *Vlines) sync() {
	n := vs.file.LenRows()
	if len(vs.vlines) == n {
		return
	}
	if len(vs.vlines) > n {
		vs.vlines = vs.vlines[:n]
	} else {
		vs.vlines = append(vs.vlines, make([]*Vline, n-len(vs.vlines))...)
	}
	vs.ReleaseAll()
}

// Overwrite the specified rowIndex range of the vlines slice with nil
// Release(a, a) index a only
// Release(a, b) region a:b
// Release(a, -1) region a:
func (vs *Vlines) Release(startIndex, endIndex int) {
	if len(vs.vlines) == 0 {
		return
	}
	if endIndex < 0 {
		endIndex = len(vs.vlines) - 1
	}
	startIndex, endIndex = utils.FindOverlap(0, len(vs.vlines)-1, startIndex, endIndex)
	if startIndex == -1 {
		return
	}
	clear(vs.vlines[startIndex : endIndex+1])
}

func (vs *Vlines) ReleaseAll() {
	clear(vs.vlines)
}

// Insert unmeasured slots for the rows startIndex to endIndex.
// Outside the index range is ignored
func (vs *Vlines) Insert(startIndex, endIndex int) {
	if startIndex < 0 || startIndex > len(vs.vlines) || endIndex < startIndex {
		return
	}
	vs.vlines = slices.Insert(vs.vlines, startIndex, make([]*Vline, endIndex-startIndex+1)...)
}

// Delete startIndex to endIndex
// Outside the index range is ignored
func (vs *Vlines) Delete(startIndex, endIndex int) {
	if len(vs.vlines) == 0 {
		return
	}
	startIndex, endIndex = utils.FindOverlap(0, len(vs.vlines)-1, startIndex, endIndex)
	if startIndex == -1 {
		return
	}
	vs.vlines = slices.Delete(vs.vlines, startIndex, endIndex+1)
}

// MaxWidth returns the pixel width of the widest row.
func (vs *Vlines) MaxWidth() int {
	w := 0
	for i := 0; i < vs.file.LenRows(); i++ {
		w = max(w, vs.GetVline(i).Width())
	}
	return w
}
