package te

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/ge-editor/gecore/define"
	"github.com/ge-editor/gecore/verb"

	"github.com/ge-editor/utils"

	"github.com/ge-editor/tecore/file"
	"github.com/ge-editor/tecore/pkg_error"
	"github.com/ge-editor/tecore/search"
)

// readonly reports, and echoes, that the document may not be edited.
func (e *Editor) readonly() bool {
	if e.IsReadonly() {
		e.Echo(pkg_error.ErrReadonly.Error())
		return true
	}
	return false
}

// TypeRune dispatches a key character: tab, enter, backspace or a printable
// character. Other control characters are ignored. In search mode the
// character edits the query instead.
func (e *Editor) TypeRune(ch rune) {
	if e.searchMode {
		switch {
		case ch == '\b':
			e.SearchBackspace()
		case ch == '\r' || ch == '\n':
			e.FindNext()
		case ch < 32 || ch == define.DEL:
		default:
			e.SearchInsert(ch)
		}
		return
	}

	switch {
	case ch == '\t':
		e.InsertTab()
	case ch == '\r' || ch == '\n':
		e.InsertNewline()
	case ch == '\b':
		e.DeleteRuneBackward()
	case ch < 32 || ch == define.DEL:
	default:
		e.InsertRune(ch)
	}
}

// Insert a rune 'ch' at the current cursor position, advance cursor one character forward.
// Consecutive runes of the same class are undone together.
func (e *Editor) InsertRune(ch rune) {
	if e.readonly() {
		return
	}
	at := e.Cursor
	cursor, ok := e.InsertText(at.RowIndex, at.ColIndex, []rune{ch})
	if !ok {
		e.Echo("Error insert")
		return
	}
	e.Typed(at, ch)
	e.syncEdits(syncInsert, at, cursor)
	e.setCursor(cursor)
	e.PrevCx = -1
}

// InsertTab inserts TabSize spaces as one undo entry.
func (e *Editor) InsertTab() {
	if e.readonly() {
		return
	}
	at := e.Cursor
	spaces := slices.Repeat([]rune{' '}, e.cfg.TabSize)
	cursor, ok := e.InsertText(at.RowIndex, at.ColIndex, spaces)
	if !ok {
		e.Echo("Error insert")
		return
	}
	e.Record(&file.InsertText{At: at, Text: spaces, CharClass: file.ClassAtomic})
	e.syncEdits(syncInsert, at, cursor)
	e.setCursor(cursor)
	e.PrevCx = -1
}

// InsertNewline splits the line at the caret.
func (e *Editor) InsertNewline() {
	if e.readonly() {
		return
	}
	at := e.Cursor
	remainder, ok := e.SplitLine(at.RowIndex, at.ColIndex)
	if !ok {
		e.Echo("Error insert")
		return
	}
	e.Record(&file.LineSplit{At: at, Remainder: remainder})
	cursor := file.Cursor{RowIndex: at.RowIndex + 1, ColIndex: 0}
	e.syncEdits(syncInsert, at, cursor)
	e.setCursor(cursor)
	e.PrevCx = -1
}

// Autoindent inserts a newline and repeats the leading spaces of the line.
func (e *Editor) Autoindent() {
	spaces := e.Row(e.RowIndex).BeginningSpaces()
	e.InsertNewline()
	for _, c := range spaces {
		e.InsertRune(c)
	}
}

// DeleteRuneBackward removes the character left of the caret, or joins the
// line with the previous one at column 0.
func (e *Editor) DeleteRuneBackward() {
	if e.readonly() {
		return
	}
	at := e.Cursor
	if at.ColIndex > 0 {
		ch := e.Row(at.RowIndex).Ch(at.ColIndex - 1)
		removed := e.DeleteText(at.RowIndex, at.ColIndex-1, 1)
		if len(removed) != 1 {
			e.Echo("Error delete")
			return
		}
		cursor := file.Cursor{RowIndex: at.RowIndex, ColIndex: at.ColIndex - 1}
		e.Erased(cursor, ch)
		e.syncEdits(syncDelete, cursor, at)
		e.setCursor(cursor)
		e.PrevCx = -1
		return
	}

	if at.RowIndex == 0 {
		e.Finalize()
		e.Echo("Beginning of buffer")
		return
	}
	remainder := slices.Clone(e.Row(at.RowIndex))
	join, ok := e.MergeLineWithPrevious(at.RowIndex)
	if !ok {
		e.Echo("Error delete")
		return
	}
	e.Record(&file.LineJoin{At: join, Remainder: remainder})
	e.syncEdits(syncDelete, join, at)
	e.setCursor(join)
	e.PrevCx = -1
}

// InsertString inserts s at the caret as one undo entry.
// LF, CRLF and CR in s split lines.
func (e *Editor) InsertString(s string) (file.Cursor, bool) {
	if s == "" || e.readonly() {
		return e.Cursor, false
	}
	e.Finalize()
	at := e.Cursor
	g := &file.Group{Before: at}
	cursor := e.insertString(g, at, s)
	g.After = cursor
	e.Record(g)
	e.syncEdits(syncInsert, at, cursor)
	e.moveCursor(cursor)
	return cursor, true
}

// insertString applies s at at, recording every primitive into g, and
// returns the position after the inserted text.
func (e *Editor) insertString(g *file.Group, at file.Cursor, s string) file.Cursor {
	for i, line := range file.SplitLines(s) {
		if i > 0 {
			remainder, ok := e.SplitLine(at.RowIndex, at.ColIndex)
			if !ok {
				verb.PP("insertString: split at %v failed", at)
				return at
			}
			g.Push(&file.LineSplit{At: at, Remainder: remainder})
			at = file.Cursor{RowIndex: at.RowIndex + 1, ColIndex: 0}
		}
		if line == "" {
			continue
		}
		text := []rune(line)
		cursor, ok := e.InsertText(at.RowIndex, at.ColIndex, text)
		if !ok {
			verb.PP("insertString: insert at %v failed", at)
			return at
		}
		g.Push(&file.InsertText{At: at, Text: text, CharClass: file.ClassOfRunes(text)})
		at = cursor
	}
	return at
}

// deleteRegion removes the text between start and end, start first, and
// records every primitive into g.
func (e *Editor) deleteRegion(g *file.Group, start, end file.Cursor) {
	start, end = file.Order(e.ClampCursor(start), e.ClampCursor(end))

	deleteText := func(at file.Cursor, length int) {
		if removed := e.DeleteText(at.RowIndex, at.ColIndex, length); len(removed) > 0 {
			g.Push(&file.DeleteText{At: at, Text: removed, CharClass: file.ClassOfRunes(removed)})
		}
	}

	if start.RowIndex == end.RowIndex {
		deleteText(start, end.ColIndex-start.ColIndex)
		return
	}

	deleteText(file.Cursor{RowIndex: end.RowIndex, ColIndex: 0}, end.ColIndex)
	deleteText(start, e.RowLength(start.RowIndex)-start.ColIndex)
	next := start.RowIndex + 1
	for i := start.RowIndex + 1; i <= end.RowIndex; i++ {
		if i < end.RowIndex { // interior line
			deleteText(file.Cursor{RowIndex: next, ColIndex: 0}, e.RowLength(next))
		}
		remainder := slices.Clone(e.Row(next))
		join, ok := e.MergeLineWithPrevious(next)
		if !ok {
			verb.PP("deleteRegion: join of row %d failed", next)
			return
		}
		g.Push(&file.LineJoin{At: join, Remainder: remainder})
	}
}

//----------------------------------------------------------------------------
// cursor movement
//----------------------------------------------------------------------------

// Move cursor to c. The open undo action is committed.
func (e *Editor) MoveCursorTo(c file.Cursor) {
	e.moveCursor(c)
}

// Move cursor one character forward.
func (e *Editor) MoveCursorForward() {
	c := e.Cursor
	if c.ColIndex >= e.RowLength(c.RowIndex) {
		if e.IsLastRow(c.RowIndex) {
			e.Finalize()
			e.Echo("End of buffer")
			return
		}
		c = file.Cursor{RowIndex: c.RowIndex + 1, ColIndex: 0}
	} else {
		c.ColIndex++
	}
	e.moveCursor(c)
}

// Move cursor one character backward.
func (e *Editor) MoveCursorBackward() {
	c := e.Cursor
	if c.ColIndex == 0 {
		if c.RowIndex == 0 {
			e.Finalize()
			e.Echo("Beginning of buffer")
			return
		}
		c.RowIndex-- // previous line
		c.ColIndex = e.RowLength(c.RowIndex)
	} else {
		c.ColIndex--
	}
	e.moveCursor(c)
}

// Move cursor to the next line.
func (e *Editor) MoveCursorNextLine() {
	if e.IsLastRow(e.RowIndex) {
		e.Finalize()
		e.Echo("End of buffer")
		return
	}
	e.moveCursorVertically(e.RowIndex + 1)
}

// Move cursor to the previous line.
func (e *Editor) MoveCursorPrevLine() {
	if e.RowIndex == 0 {
		e.Finalize()
		e.Echo("Beginning of buffer")
		return
	}
	e.moveCursorVertically(e.RowIndex - 1)
}

// moveCursorVertically moves to rowIndex keeping the pixel column the
// vertical movement started from.
func (e *Editor) moveCursorVertically(rowIndex int) {
	x := e.PrevCx
	if x < 0 {
		x = e.vlines.GetVline(e.RowIndex).PixelAtColumn(e.ColIndex)
	}
	rowIndex = max(0, min(rowIndex, e.LenRows()-1))
	col := e.vlines.GetVline(rowIndex).ColumnAtPixel(x)
	e.moveCursor(file.Cursor{RowIndex: rowIndex, ColIndex: col})
	e.PrevCx = x
}

// Move view and cursor one page forward.
func (e *Editor) MoveViewPageForward() {
	n := e.viewport.LinesPerPage()
	e.Y += n
	e.viewport.ClampScroll(&e.Meta.Scroll, e.LenRows(), e.vlines.MaxWidth())
	e.moveCursorVertically(e.RowIndex + n)
}

// Move view and cursor one page backward.
func (e *Editor) MoveViewPageBackward() {
	n := e.viewport.LinesPerPage()
	e.Y = max(0, e.Y-n)
	e.moveCursorVertically(e.RowIndex - n)
}

// Move cursor to the beginning of the line.
func (e *Editor) MoveCursorBeginningOfLine() {
	e.moveCursor(file.Cursor{RowIndex: e.RowIndex, ColIndex: 0})
}

// Move cursor to the end of the line.
func (e *Editor) MoveCursorEndOfLine() {
	e.moveCursor(file.Cursor{RowIndex: e.RowIndex, ColIndex: e.RowLength(e.RowIndex)})
}

func (e *Editor) MoveCursorBeginningOfFile() {
	e.moveCursor(file.Cursor{})
}

func (e *Editor) MoveCursorEndOfFile() {
	last := e.LenRows() - 1
	e.moveCursor(file.Cursor{RowIndex: last, ColIndex: e.RowLength(last)})
}

// lineNumber is 1-based.
func (e *Editor) MoveCursorToLine(lineNumber int) {
	e.moveCursor(file.Cursor{RowIndex: lineNumber - 1, ColIndex: 0})
}

//----------------------------------------------------------------------------
// pointer and scrolling
//----------------------------------------------------------------------------

// cursorAtPixel maps a point of the text area to a document position.
// Points below the last line land at the end of the document.
func (e *Editor) cursorAtPixel(x, y int) file.Cursor {
	rowIndex := e.viewport.LineAtPixelY(y, e.Y)
	if rowIndex >= e.LenRows() {
		return e.ClampCursor(file.Cursor{RowIndex: rowIndex})
	}
	col := e.vlines.GetVline(rowIndex).ColumnAtPixel(x + e.X)
	return file.Cursor{RowIndex: rowIndex, ColIndex: col}
}

// PointerDown moves the caret to the point and starts a selection there.
// With extend the selection runs from the previous caret instead.
func (e *Editor) PointerDown(x, y int, extend bool) {
	prev := e.Cursor
	e.moveCursor(e.cursorAtPixel(x, y))
	if extend {
		if !e.selection.IsActive() {
			e.selection.Begin(prev)
		}
		e.selection.Extend(e.Cursor)
		return
	}
	e.selection.Begin(e.Cursor)
}

// PointerDrag extends the selection to the point.
func (e *Editor) PointerDrag(x, y int) {
	e.moveCursor(e.cursorAtPixel(x, y))
	e.selection.Extend(e.Cursor)
}

// PointerDoubleClick selects the word at the point.
func (e *Editor) PointerDoubleClick(x, y int) {
	c := e.cursorAtPixel(x, y)
	start, end := e.vlines.GetVline(c.RowIndex).WordAt(c.ColIndex)
	e.selection.Begin(file.Cursor{RowIndex: c.RowIndex, ColIndex: start})
	e.selection.Extend(file.Cursor{RowIndex: c.RowIndex, ColIndex: end})
	e.selection.End()
	e.moveCursor(file.Cursor{RowIndex: c.RowIndex, ColIndex: end})
}

// PointerUp ends selecting. A selection without extent is cleared.
func (e *Editor) PointerUp() {
	e.selection.End()
}

func (e *Editor) ClearSelection() {
	e.selection.Clear()
}

func (e *Editor) SelectAll() {
	last := e.LenRows() - 1
	end := file.Cursor{RowIndex: last, ColIndex: e.RowLength(last)}
	e.selection.Begin(file.Cursor{})
	e.selection.Extend(end)
	e.selection.End()
	e.moveCursor(end)
}

// ScrollLines scrolls the view by notches of the mouse wheel, positive
// downward. The caret does not move.
func (e *Editor) ScrollLines(notches int) {
	e.Finalize()
	e.Y += notches * e.cfg.WheelLines
	e.viewport.ClampScroll(&e.Meta.Scroll, e.LenRows(), e.vlines.MaxWidth())
}

// ScrollPixels scrolls the view horizontally by dx pixels.
func (e *Editor) ScrollPixels(dx int) {
	e.Finalize()
	e.X += dx
	e.viewport.ClampScroll(&e.Meta.Scroll, e.LenRows(), e.vlines.MaxWidth())
}

//----------------------------------------------------------------------------
// history
//----------------------------------------------------------------------------

func (e *Editor) Undo() {
	if e.IsUndoEmpty() {
		e.Echo("No further undo information")
		return
	}
	caret, ok := e.File.Undo()
	if !ok {
		e.Echo("No further undo information")
		return
	}
	e.syncEdits(syncModify, caret, caret)
	e.setCursor(caret)
	e.PrevCx = -1
	e.Echo("Undo!")
}

func (e *Editor) Redo() {
	if e.IsRedoEmpty() {
		e.Echo("No further redo information")
		return
	}
	caret, ok := e.File.Redo()
	if !ok {
		e.Echo("No further redo information")
		return
	}
	e.syncEdits(syncModify, caret, caret)
	e.setCursor(caret)
	e.PrevCx = -1
	e.Echo("Redo!")
}

//----------------------------------------------------------------------------
// clipboard
//----------------------------------------------------------------------------

// Copy the selection to the clipboard.
func (e *Editor) Copy() {
	e.Finalize()
	if !e.selection.IsActive() {
		e.Echo("There is no selection")
		return
	}
	if err := e.clipboard.WriteAll(e.selection.Text(e.File)); err != nil {
		e.Echo("Copied, " + err.Error())
		return
	}
	e.Echo("Copied")
}

// Cut the selection to the clipboard. The removal is one undo entry.
func (e *Editor) Cut() {
	e.Finalize()
	if !e.selection.IsActive() {
		e.Echo("There is no selection")
		return
	}
	if e.readonly() {
		return
	}
	if err := e.clipboard.WriteAll(e.selection.Text(e.File)); err != nil {
		e.Echo(err.Error())
		return
	}

	start, end := e.selection.Normalize()
	e.selection.Clear()
	g := &file.Group{Before: e.Cursor, After: start}
	e.deleteRegion(g, start, end)
	e.Record(g)
	e.syncEdits(syncDelete, start, end)
	e.moveCursor(start)
	e.Echo("Cut")
}

// Paste the clipboard at the caret, replacing the selection.
// The removal and the insertion are one undo entry.
func (e *Editor) Paste() {
	e.Finalize()
	if e.readonly() {
		return
	}
	s, err := e.clipboard.ReadAll()
	if err != nil {
		e.Echo(err.Error())
		return
	}
	if s == "" {
		return
	}

	g := &file.Group{Before: e.Cursor}
	at := e.Cursor
	if e.selection.IsActive() {
		start, end := e.selection.Normalize()
		e.selection.Clear()
		e.deleteRegion(g, start, end)
		e.syncEdits(syncDelete, start, end)
		at = e.ClampCursor(start)
	}
	cursor := e.insertString(g, at, s)
	g.After = cursor
	e.Record(g)
	e.syncEdits(syncInsert, at, cursor)
	e.moveCursor(cursor)
}

//----------------------------------------------------------------------------
// search
//----------------------------------------------------------------------------

// EnterSearch starts search mode. The caret and scroll are stored and come
// back on ExitSearch.
func (e *Editor) EnterSearch() {
	e.Finalize()
	if e.searchMode {
		return
	}
	e.set.PushMeta(e.Meta)
	e.searchMode = true
	e.echoSearch()
}

func (e *Editor) IsSearchMode() bool {
	return e.searchMode
}

// SearchInsert appends ch to the query and searches again.
func (e *Editor) SearchInsert(ch rune) {
	e.SetSearchQuery(e.search.Query() + string(ch))
}

// SearchBackspace removes the last character of the query and searches again.
func (e *Editor) SearchBackspace() {
	q := []rune(e.search.Query())
	if len(q) == 0 {
		return
	}
	e.SetSearchQuery(string(q[:len(q)-1]))
}

// SetSearchQuery replaces the query and jumps to the first match.
func (e *Editor) SetSearchQuery(query string) error {
	e.Finalize()
	if err := e.search.SetQuery(query, e.File); err != nil {
		e.Echo(err.Error())
		return err
	}
	if m, ok := e.search.Current(); ok {
		e.jumpTo(m)
		return nil
	}
	e.echoSearch()
	return nil
}

// SetSearchOptions changes case sensitivity and regexp mode and searches again.
func (e *Editor) SetSearchOptions(opts search.Options) error {
	if err := e.search.SetOptions(opts, e.File); err != nil {
		e.Echo(err.Error())
		return err
	}
	e.echoSearch()
	return nil
}

// FindNext moves to the next match, wrapping to the first.
func (e *Editor) FindNext() {
	e.Finalize()
	m, ok := e.search.Next(e.File)
	if !ok {
		e.echoSearch()
		return
	}
	e.jumpTo(m)
}

// FindPrevious moves to the previous match, wrapping to the last.
func (e *Editor) FindPrevious() {
	e.Finalize()
	m, ok := e.search.Previous(e.File)
	if !ok {
		e.echoSearch()
		return
	}
	e.jumpTo(m)
}

// JumpToMatch makes match i current and reveals it.
func (e *Editor) JumpToMatch(i int) bool {
	m, ok := e.search.Select(i)
	if !ok {
		return false
	}
	e.jumpTo(m)
	return true
}

// jumpTo puts the caret on the start of m and scrolls so the whole match is visible.
func (e *Editor) jumpTo(m search.Match) {
	e.Finalize()
	e.Cursor = e.ClampCursor(m.StartCursor())
	e.PrevCx = -1
	startX, endX := e.vlines.GetVline(m.Row).Span(m.Start, m.End)
	e.viewport.Reveal(&e.Meta.Scroll, m.Row, startX, endX, e.LenRows())
	e.echoSearch()
}

// AcceptSearch leaves search mode at the current match.
// The query is kept for FindNext and FindPrevious.
func (e *Editor) AcceptSearch() {
	e.Finalize()
	if !e.searchMode {
		return
	}
	e.searchMode = false
	e.set.DropMeta()
}

// ExitSearch leaves search mode, clears the query and restores the caret
// and scroll stored by EnterSearch.
func (e *Editor) ExitSearch() {
	e.Finalize()
	if !e.searchMode {
		return
	}
	e.searchMode = false
	e.search.Clear()

	m := e.set.PopMeta()
	m.Cursor = e.ClampCursor(m.Cursor)
	e.Meta = m
	e.viewport.ClampScroll(&e.Meta.Scroll, e.LenRows(), e.vlines.MaxWidth())
	e.Echo("")
}

func (e *Editor) echoSearch() {
	q := e.search.Query()
	switch {
	case q == "":
		e.Echo("Search: ")
	case e.search.Len() == 0:
		e.Echo(fmt.Sprintf("Search: %s (%s)", q, pkg_error.ErrNotFound))
	default:
		e.Echo(fmt.Sprintf("Search: %s (%d/%d)", q, e.search.CurrentIndex()+1, e.search.Len()))
	}
}

//----------------------------------------------------------------------------
// information
//----------------------------------------------------------------------------

// CharInfo echoes the character under the caret.
func (e *Editor) CharInfo() {
	row := e.Row(e.RowIndex)
	if e.ColIndex >= row.LenCh() {
		e.Echo(fmt.Sprintf("End of line (%s), Cursor index: %d,%d", e.GetLinefeed(), e.RowIndex, e.ColIndex))
		return
	}
	ch := row.Ch(e.ColIndex)
	str := runeToDisplayString(ch)
	e.Echo(fmt.Sprintf("Char: '%s' (dec: %d, oct: %s, hex: %02X, %s), Cursor index: %d,%d", str, ch, strconv.FormatInt(int64(ch), 8), ch, utils.WidthKindString(ch), e.RowIndex, e.ColIndex))
}

// Convert rune to displaying string on the status line
// Conversion target:
//   - control code: ^X
//   - DEL: ^?
func runeToDisplayString(ch rune) string {
	if ch == define.DEL {
		return `^?`
	} else if ch == '\t' {
		return `\t`
	} else if ch < 32 {
		return fmt.Sprintf("^%c", ch+64)
	}
	return string(ch)
}
