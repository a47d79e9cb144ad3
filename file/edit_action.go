package file

import (
	"slices"

	"github.com/ge-editor/gecore/verb"
)

// optional holds a value that may be absent.
type optional[T any] struct {
	value T
	ok    bool
}

func (o *optional[T]) set(v T) {
	o.value, o.ok = v, true
}

// get returns a pointer to the held value for in place extension.
func (o *optional[T]) get() (*T, bool) {
	if !o.ok {
		return nil, false
	}
	return &o.value, true
}

// take returns the held value and clears the optional.
func (o *optional[T]) take() (v T, ok bool) {
	v, ok = o.value, o.ok
	var zero T
	o.value, o.ok = zero, false
	return v, ok
}

// -------------------------
// UndoStack
// -------------------------

// UndoStack is the edit history of a File.
//
// Character typing and backspacing are accumulated in an open action and
// committed on Finalize. Entries at and above index are undone entries that
// Redo can re-apply; any new commit discards them.
type UndoStack struct {
	stack []Action
	index int
	limit int // 0 is unbounded

	typing   optional[InsertText]
	deletion optional[DeleteText]
}

// Create a new UndoStack. limit bounds the number of committed entries, 0 for no bound.
func NewUndoStack(limit int) *UndoStack {
	return &UndoStack{
		stack: make([]Action, 0, 64),
		limit: max(limit, 0),
	}
}

// Typed records ch inserted at the position at by typing.
// It extends the open typing action when ch continues it, otherwise the open
// action is committed and a new one is opened.
func (u *UndoStack) Typed(at Cursor, ch rune) {
	u.finalizeDeletion()

	class := ClassOf(ch)
	if t, ok := u.typing.get(); ok && class.Groupable() && t.CharClass == class &&
		t.At.RowIndex == at.RowIndex && t.At.ColIndex+len(t.Text) == at.ColIndex {
		t.Text = append(t.Text, ch)
		return
	}
	u.finalizeTyping()
	u.typing.set(InsertText{At: at, Text: []rune{ch}, CharClass: class})
}

// Erased records ch removed by backspace. at is the position ch occupied.
func (u *UndoStack) Erased(at Cursor, ch rune) {
	u.finalizeTyping()

	class := ClassOf(ch)
	if d, ok := u.deletion.get(); ok && class.Groupable() && d.CharClass == class &&
		d.At.RowIndex == at.RowIndex && d.At.ColIndex-1 == at.ColIndex {
		d.Text = slices.Insert(d.Text, 0, ch)
		d.At.ColIndex = at.ColIndex
		return
	}
	u.finalizeDeletion()
	u.deletion.set(DeleteText{At: at, Text: []rune{ch}, CharClass: class})
}

// Record commits any open action and then a as its own entry.
func (u *UndoStack) Record(a Action) {
	u.Finalize()
	if g, ok := a.(*Group); ok && g.IsEmpty() {
		return
	}
	u.push(a)
}

// Finalize commits the open typing and deletion actions.
func (u *UndoStack) Finalize() {
	u.finalizeTyping()
	u.finalizeDeletion()
}

func (u *UndoStack) finalizeTyping() {
	t, ok := u.typing.take()
	if !ok || len(t.Text) == 0 {
		return
	}
	u.truncate()
	if top, ok := u.top().(*InsertText); ok && t.CharClass.Groupable() && top.CharClass == t.CharClass &&
		top.At.RowIndex == t.At.RowIndex && top.At.ColIndex+len(top.Text) == t.At.ColIndex {
		top.Text = append(top.Text, t.Text...)
		return
	}
	u.push(&t)
}

func (u *UndoStack) finalizeDeletion() {
	d, ok := u.deletion.take()
	if !ok || len(d.Text) == 0 {
		return
	}
	u.truncate()
	if top, ok := u.top().(*DeleteText); ok && d.CharClass.Groupable() && top.CharClass == d.CharClass &&
		top.At.RowIndex == d.At.RowIndex && top.At.ColIndex == d.At.ColIndex+len(d.Text) {
		top.Text = append(d.Text, top.Text...)
		top.At = d.At
		return
	}
	u.push(&d)
}

func (u *UndoStack) top() Action {
	if u.index == 0 {
		return nil
	}
	return u.stack[u.index-1]
}

// Clear redo buffer
func (u *UndoStack) truncate() {
	if u.index < len(u.stack) {
		clear(u.stack[u.index:])
		u.stack = u.stack[:u.index]
	}
}

func (u *UndoStack) push(a Action) {
	u.truncate()
	u.stack = append(u.stack, a)
	u.index++
	if u.limit > 0 && len(u.stack) > u.limit {
		n := len(u.stack) - u.limit
		u.stack = slices.Delete(u.stack, 0, n)
		u.index -= n
	}
}

// Undo the last entry against ff and return the caret for the edit site.
// ok is false when there is nothing to undo.
func (u *UndoStack) Undo(ff *File) (Cursor, bool) {
	u.Finalize()
	if u.index == 0 {
		return Cursor{}, false
	}
	u.index--
	a := u.stack[u.index]
	caret, ok := a.Undo(ff)
	if !ok {
		start, end := a.span()
		verb.PP("Undo %s %v-%v: document does not match the history", a.Class(), start, end)
	}
	return ff.ClampCursor(caret), true
}

// Redo the next undone entry.
func (u *UndoStack) Redo(ff *File) (Cursor, bool) {
	u.Finalize()
	if u.index >= len(u.stack) {
		return Cursor{}, false
	}
	a := u.stack[u.index]
	u.index++
	caret, ok := a.Redo(ff)
	if !ok {
		start, end := a.span()
		verb.PP("Redo %s %v-%v: document does not match the history", a.Class(), start, end)
	}
	return ff.ClampCursor(caret), true
}

// Check if undo stack is empty. Open actions count as undoable.
func (u *UndoStack) IsUndoEmpty() bool {
	return u.index == 0 && !u.HasPending()
}

// Check if redo stack is empty
func (u *UndoStack) IsRedoEmpty() bool {
	return u.index >= len(u.stack) || u.HasPending()
}

// HasPending reports whether a typing or deletion action is open.
func (u *UndoStack) HasPending() bool {
	return u.typing.ok || u.deletion.ok
}

// Len returns the number of committed undoable entries.
func (u *UndoStack) Len() int {
	return u.index
}

// Peek returns the committed entry that Undo would revert next.
func (u *UndoStack) Peek() (Action, bool) {
	a := u.top()
	return a, a != nil
}

// Reset drops all history including open actions.
func (u *UndoStack) Reset() {
	u.typing.take()
	u.deletion.take()
	clear(u.stack)
	u.stack = u.stack[:0]
	u.index = 0
}
