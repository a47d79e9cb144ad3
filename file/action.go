package file

import (
	"slices"
)

//----------------------------------------------------------------------------
// action
//
// A single entity of undo/redo history. All changes to contents of a File
// recorded in the history are one of the Action variants below.
//----------------------------------------------------------------------------

type ActionClass int

const (
	INSERT ActionClass = iota
	DELETE
	LINE_SPLIT
	LINE_JOIN
	GROUP
)

func (c ActionClass) String() string {
	return [...]string{"insert", "delete", "line split", "line join", "group"}[c]
}

// Action is implemented by InsertText, DeleteText, LineSplit, LineJoin and Group.
// Undo applies the inverse and Redo re-applies the change; both return the
// caret position after the operation.
type Action interface {
	Class() ActionClass
	Undo(ff *File) (Cursor, bool)
	Redo(ff *File) (Cursor, bool)
	// span returns the document range touched, for logging.
	span() (Cursor, Cursor)
}

// InsertText records Text inserted at At.
type InsertText struct {
	At        Cursor
	Text      []rune
	CharClass CharClass
}

func (a *InsertText) Class() ActionClass { return INSERT }

func (a *InsertText) Undo(ff *File) (Cursor, bool) {
	removed := ff.DeleteText(a.At.RowIndex, a.At.ColIndex, len(a.Text))
	return a.At, len(removed) == len(a.Text)
}

func (a *InsertText) Redo(ff *File) (Cursor, bool) {
	return ff.InsertText(a.At.RowIndex, a.At.ColIndex, a.Text)
}

func (a *InsertText) span() (Cursor, Cursor) {
	return a.At, a.end()
}

func (a *InsertText) end() Cursor {
	return Cursor{RowIndex: a.At.RowIndex, ColIndex: a.At.ColIndex + len(a.Text)}
}

// DeleteText records Text removed at At.
type DeleteText struct {
	At        Cursor
	Text      []rune
	CharClass CharClass
}

func (a *DeleteText) Class() ActionClass { return DELETE }

// Undo re-inserts the text and leaves the caret after it.
func (a *DeleteText) Undo(ff *File) (Cursor, bool) {
	return ff.InsertText(a.At.RowIndex, a.At.ColIndex, a.Text)
}

func (a *DeleteText) Redo(ff *File) (Cursor, bool) {
	removed := ff.DeleteText(a.At.RowIndex, a.At.ColIndex, len(a.Text))
	return a.At, len(removed) == len(a.Text)
}

func (a *DeleteText) span() (Cursor, Cursor) {
	return a.At, Cursor{RowIndex: a.At.RowIndex, ColIndex: a.At.ColIndex + len(a.Text)}
}

// LineSplit records a line broken at At. Remainder is the text moved down.
type LineSplit struct {
	At        Cursor
	Remainder []rune
}

func (a *LineSplit) Class() ActionClass { return LINE_SPLIT }

func (a *LineSplit) Undo(ff *File) (Cursor, bool) {
	return ff.MergeLineWithPrevious(a.At.RowIndex + 1)
}

func (a *LineSplit) Redo(ff *File) (Cursor, bool) {
	if _, ok := ff.SplitLine(a.At.RowIndex, a.At.ColIndex); !ok {
		return a.At, false
	}
	return Cursor{RowIndex: a.At.RowIndex + 1}, true
}

func (a *LineSplit) span() (Cursor, Cursor) {
	return a.At, Cursor{RowIndex: a.At.RowIndex + 1}
}

// LineJoin records line At.RowIndex+1 appended onto At.RowIndex.
// At.ColIndex is the join point and Remainder the content of the removed line.
type LineJoin struct {
	At        Cursor
	Remainder []rune
}

func (a *LineJoin) Class() ActionClass { return LINE_JOIN }

// Undo re-splits at the join point, restoring the recorded remainder.
func (a *LineJoin) Undo(ff *File) (Cursor, bool) {
	row, ok := ff.rows.GetRow(a.At.RowIndex)
	if !ok || a.At.ColIndex > len(row) {
		return a.At, false
	}
	ff.rows.SetRow(a.At.RowIndex, row[:a.At.ColIndex:a.At.ColIndex])
	ff.rows.InsertRow(a.At.RowIndex+1, slices.Clone(a.Remainder))
	return a.At, true
}

func (a *LineJoin) Redo(ff *File) (Cursor, bool) {
	return ff.MergeLineWithPrevious(a.At.RowIndex + 1)
}

func (a *LineJoin) span() (Cursor, Cursor) {
	return a.At, Cursor{RowIndex: a.At.RowIndex + 1}
}

//----------------------------------------------------------------------------
// action group
//----------------------------------------------------------------------------

// Group is undone and redone as one step (cut, paste).
// Actions are stored in the order they were applied.
type Group struct {
	Actions []Action
	// Before is the caret before the group was applied, restored on undo.
	Before Cursor
	// After is the caret after the group was applied, restored on redo.
	After Cursor
}

func (g *Group) Class() ActionClass { return GROUP }

func (g *Group) Push(a Action) {
	g.Actions = append(g.Actions, a)
}

func (g *Group) IsEmpty() bool {
	return len(g.Actions) == 0
}

func (g *Group) Undo(ff *File) (Cursor, bool) {
	for i := len(g.Actions) - 1; i >= 0; i-- {
		if _, ok := g.Actions[i].Undo(ff); !ok {
			return g.Before, false
		}
	}
	return g.Before, true
}

func (g *Group) Redo(ff *File) (Cursor, bool) {
	for _, a := range g.Actions {
		if _, ok := a.Redo(ff); !ok {
			return g.After, false
		}
	}
	return g.After, true
}

func (g *Group) span() (Cursor, Cursor) {
	return Order(g.Before, g.After)
}
