package file

import (
	"slices"

	"github.com/ge-editor/gecore/verb"
)

// Editing primitives.
// Out of range rows are a no-op, columns are clamped. None of them touch the
// undo history: callers record an Action for every successful change.

// InsertText inserts text at rowIndex, colIndex and returns the position
// right after the inserted runes.
// Runes are inserted literally, a '\n' in text does not split the line.
func (ff *File) InsertText(rowIndex, colIndex int, text []rune) (Cursor, bool) {
	row, ok := ff.rows.GetRow(rowIndex)
	if !ok {
		verb.PP("InsertText: row %d out of range", rowIndex)
		return Cursor{}, false
	}
	colIndex = row.clampCol(colIndex)
	if len(text) == 0 {
		return Cursor{RowIndex: rowIndex, ColIndex: colIndex}, true
	}
	ff.rows.InsertToCol(rowIndex, colIndex, slices.Clone(text))
	return Cursor{RowIndex: rowIndex, ColIndex: colIndex + len(text)}, true
}

// DeleteText removes up to length runes starting at rowIndex, colIndex and
// returns the removed runes. A negative column is clamped to 0; a column at or
// past the end of the line removes nothing.
func (ff *File) DeleteText(rowIndex, colIndex, length int) []rune {
	row, ok := ff.rows.GetRow(rowIndex)
	if !ok || length <= 0 {
		return nil
	}
	if colIndex < 0 {
		colIndex = 0
	}
	if colIndex >= len(row) {
		return nil
	}
	end := min(colIndex+length, len(row))
	removed := slices.Clone(row[colIndex:end])
	ff.rows.SetRow(rowIndex, slices.Delete(row, colIndex, end))
	return removed
}

// SplitLine breaks rowIndex at colIndex. The text right of the column moves to
// a new line inserted after rowIndex and is returned.
func (ff *File) SplitLine(rowIndex, colIndex int) ([]rune, bool) {
	row, ok := ff.rows.GetRow(rowIndex)
	if !ok {
		verb.PP("SplitLine: row %d out of range", rowIndex)
		return nil, false
	}
	colIndex = row.clampCol(colIndex)
	remainder := slices.Clone(row[colIndex:])
	ff.rows.SetRow(rowIndex, row[:colIndex:colIndex])
	ff.rows.InsertRow(rowIndex+1, remainder)
	return remainder, true
}

// MergeLineWithPrevious appends rowIndex onto rowIndex-1 and removes it.
// It returns the join point, that is the old end of the previous line.
func (ff *File) MergeLineWithPrevious(rowIndex int) (Cursor, bool) {
	if rowIndex <= 0 || rowIndex >= ff.rows.LenRows() {
		return Cursor{}, false
	}
	prev := rowIndex - 1
	join := Cursor{RowIndex: prev, ColIndex: ff.rows.RowLength(prev)}
	ff.rows.AddToRow(prev, ff.rows.Row(rowIndex))
	ff.rows.RemoveRow(rowIndex)
	return join, true
}

// GetRegion returns the text between two cursors joined with LF.
// The cursors may be given in any order and are clamped to the document.
func (ff *File) GetRegion(a, b Cursor) []rune {
	start, end := Order(ff.rows.ClampCursor(a), ff.rows.ClampCursor(b))
	if start.RowIndex == end.RowIndex {
		return slices.Clone(ff.rows.Row(start.RowIndex)[start.ColIndex:end.ColIndex])
	}

	region := slices.Clone(ff.rows.Row(start.RowIndex)[start.ColIndex:])
	for i := start.RowIndex + 1; i < end.RowIndex; i++ {
		region = append(region, '\n')
		region = append(region, ff.rows.Row(i)...)
	}
	region = append(region, '\n')
	region = append(region, ff.rows.Row(end.RowIndex)[:end.ColIndex]...)
	return region
}
