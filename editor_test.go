package te

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/ge-editor/tecore/config"
	"github.com/ge-editor/tecore/file"
)

type memClipboard struct {
	text string
}

func (c *memClipboard) ReadAll() (string, error) {
	return c.text, nil
}

func (c *memClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

func newTestEditor(t *testing.T, content string) (*Editor, *memClipboard) {
	t.Helper()
	e := NewEditor(config.Default())
	cb := &memClipboard{}
	e.SetClipboard(cb)
	if content != "" {
		if err := e.Load(strings.NewReader(content)); err != nil {
			t.Fatal(err)
		}
	}
	return e, cb
}

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return strings.Join(lines, "\n")
}

func typeString(e *Editor, s string) {
	for _, ch := range s {
		e.TypeRune(ch)
	}
}

func assertLines(t *testing.T, e *Editor, want ...string) {
	t.Helper()
	if got := e.Strings(); !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func assertCursor(t *testing.T, e *Editor, row, col int) {
	t.Helper()
	if want := (file.Cursor{RowIndex: row, ColIndex: col}); e.Cursor != want {
		t.Errorf("cursor = %v, want %v", e.Cursor, want)
	}
}

func TestTypingUndo(t *testing.T) {
	e, _ := newTestEditor(t, "")

	typeString(e, "cat")
	e.Undo()
	assertLines(t, e, "")
	if e.Message() != "Undo!" {
		t.Errorf("message = %q", e.Message())
	}

	typeString(e, "cat dog")
	for _, want := range []string{"cat ", "cat", ""} {
		e.Undo()
		assertLines(t, e, want)
	}
	e.Undo()
	if e.Message() != "No further undo information" {
		t.Errorf("message = %q", e.Message())
	}

	e.Redo()
	assertLines(t, e, "cat")
	assertCursor(t, e, 0, 3)
}

func TestEnterAndBackspace(t *testing.T) {
	e, _ := newTestEditor(t, "")

	typeString(e, "ab\rcd")
	assertLines(t, e, "ab", "cd")
	assertCursor(t, e, 1, 2)

	typeString(e, "\b\b\b")
	assertLines(t, e, "ab")
	assertCursor(t, e, 0, 2)

	e.Undo()
	assertLines(t, e, "ab", "")
	e.Undo()
	assertLines(t, e, "ab", "cd")
	assertCursor(t, e, 1, 2)

	e.MoveCursorBeginningOfFile()
	e.TypeRune('\b')
	if e.Message() != "Beginning of buffer" {
		t.Errorf("message = %q", e.Message())
	}
}

func TestTabIsAtomic(t *testing.T) {
	e, _ := newTestEditor(t, "")

	typeString(e, "\tx")
	assertLines(t, e, "    x")
	e.Undo()
	assertLines(t, e, "    ")
	e.Undo()
	assertLines(t, e, "")
}

func TestControlRunesIgnored(t *testing.T) {
	e, _ := newTestEditor(t, "")

	typeString(e, "a\x01\x7fb")
	assertLines(t, e, "ab")
}

func TestMoveCursorFinalizesTyping(t *testing.T) {
	e, _ := newTestEditor(t, "")

	typeString(e, "ab")
	e.MoveCursorBackward()
	typeString(e, "x")
	assertLines(t, e, "axb")

	e.Undo()
	assertLines(t, e, "ab")
	assertCursor(t, e, 0, 1)
}

func TestHorizontalMovementWraps(t *testing.T) {
	e, _ := newTestEditor(t, "ab\ncd")

	e.MoveCursorTo(file.Cursor{RowIndex: 0, ColIndex: 2})
	e.MoveCursorForward()
	assertCursor(t, e, 1, 0)
	e.MoveCursorBackward()
	assertCursor(t, e, 0, 2)

	e.MoveCursorEndOfFile()
	e.MoveCursorForward()
	if e.Message() != "End of buffer" {
		t.Errorf("message = %q", e.Message())
	}
}

func TestVerticalMovementKeepsColumn(t *testing.T) {
	e, _ := newTestEditor(t, "abcdef\nab\nabcdef")

	e.MoveCursorTo(file.Cursor{RowIndex: 0, ColIndex: 5})
	e.MoveCursorNextLine()
	assertCursor(t, e, 1, 2)
	e.MoveCursorNextLine()
	assertCursor(t, e, 2, 5)
	e.MoveCursorPrevLine()
	e.MoveCursorPrevLine()
	assertCursor(t, e, 0, 5)
}

func TestAutoScroll(t *testing.T) {
	e, _ := newTestEditor(t, numberedLines(100))
	lines := e.Viewport().LinesPerPage()

	e.MoveCursorToLine(40)
	if got := e.ScrollOffset().Y; got != 39-lines+1 {
		t.Fatalf("scroll Y = %d, want %d", got, 39-lines+1)
	}
	visible := e.VisibleLines()
	if last := visible[len(visible)-1]; last.RowIndex != 39 || last.Text != "line 39" {
		t.Errorf("last visible line = %+v", last)
	}
	if _, y := e.CaretPixel(); y != (lines-1)*e.Viewport().LineHeight {
		t.Errorf("caret y = %d", y)
	}

	e.MoveCursorToLine(1)
	if got := e.ScrollOffset().Y; got != 0 {
		t.Errorf("scroll Y = %d, want 0", got)
	}
}

func TestScrollLines(t *testing.T) {
	e, _ := newTestEditor(t, numberedLines(100))
	lines := e.Viewport().LinesPerPage()

	e.ScrollLines(2)
	if got := e.ScrollOffset().Y; got != 6 {
		t.Errorf("scroll Y = %d, want 6", got)
	}
	e.ScrollLines(-10)
	if got := e.ScrollOffset().Y; got != 0 {
		t.Errorf("scroll Y = %d, want 0", got)
	}
	e.ScrollLines(100)
	if got := e.ScrollOffset().Y; got != 100-lines {
		t.Errorf("scroll Y = %d, want %d", got, 100-lines)
	}
	assertCursor(t, e, 0, 0)
}

func TestPointerSelection(t *testing.T) {
	e, cb := newTestEditor(t, "hello world\nfoo bar")

	e.PointerDown(6, 0, false)
	e.PointerDrag(3, 1)
	e.PointerUp()
	if got := e.SelectionText(); got != "world\nfoo" {
		t.Fatalf("selection = %q", got)
	}
	if rects := e.SelectionRects(); len(rects) != 2 || rects[0].X != 6 || rects[1].Width != 3 {
		t.Errorf("rects = %+v", rects)
	}

	e.Copy()
	if cb.text != "world\nfoo" {
		t.Errorf("clipboard = %q", cb.text)
	}

	e.Cut()
	assertLines(t, e, "hello  bar")
	assertCursor(t, e, 0, 6)
	if e.HasSelection() {
		t.Error("selection kept after cut")
	}

	e.Undo()
	assertLines(t, e, "hello world", "foo bar")
	assertCursor(t, e, 1, 3)

	e.Paste()
	assertLines(t, e, "hello world", "fooworld", "foo bar")
	assertCursor(t, e, 2, 3)
	e.Undo()
	assertLines(t, e, "hello world", "foo bar")
	e.Redo()
	assertLines(t, e, "hello world", "fooworld", "foo bar")
}

func TestPointerDegenerateSelection(t *testing.T) {
	e, _ := newTestEditor(t, "hello world\nfoo bar")

	e.PointerDown(2, 0, false)
	e.PointerUp()
	if e.HasSelection() || len(e.SelectionRects()) != 0 {
		t.Error("degenerate selection is active")
	}

	e.PointerDown(0, 10, false)
	assertCursor(t, e, 1, 7)
}

func TestPasteReplacesSelection(t *testing.T) {
	e, cb := newTestEditor(t, "one two three")
	cb.text = "2\n2"

	e.PointerDown(4, 0, false)
	e.PointerDrag(7, 0)
	e.PointerUp()
	e.Paste()
	assertLines(t, e, "one 2", "2 three")

	e.Undo()
	assertLines(t, e, "one two three")
}

func TestSelectionFollowsEdits(t *testing.T) {
	e, _ := newTestEditor(t, "hello world")

	e.PointerDown(6, 0, false)
	e.PointerDrag(11, 0)
	e.PointerUp()
	e.MoveCursorBeginningOfLine()
	e.TypeRune('X')
	if got := e.SelectionText(); got != "world" {
		t.Errorf("selection = %q", got)
	}
}

func TestSelectAll(t *testing.T) {
	e, _ := newTestEditor(t, "ab\ncd")

	e.SelectAll()
	if got := e.SelectionText(); got != "ab\ncd" {
		t.Errorf("selection = %q", got)
	}
	assertCursor(t, e, 1, 2)
	e.ClearSelection()
	if e.HasSelection() {
		t.Error("selection kept")
	}
}

func TestSearchMode(t *testing.T) {
	e, _ := newTestEditor(t, "abcabc\nxabcx")
	e.MoveCursorTo(file.Cursor{RowIndex: 1, ColIndex: 4})

	e.EnterSearch()
	typeString(e, "abc")
	if !e.IsSearchMode() || e.SearchQuery() != "abc" {
		t.Fatalf("search mode %v, query %q", e.IsSearchMode(), e.SearchQuery())
	}
	assertCursor(t, e, 0, 0)

	wants := []file.Cursor{{RowIndex: 0, ColIndex: 3}, {RowIndex: 1, ColIndex: 1}, {RowIndex: 0, ColIndex: 0}}
	for _, want := range wants {
		e.FindNext()
		if e.Cursor != want {
			t.Errorf("cursor = %v, want %v", e.Cursor, want)
		}
	}
	e.FindPrevious()
	assertCursor(t, e, 1, 1)
	if e.Message() != "Search: abc (3/3)" {
		t.Errorf("message = %q", e.Message())
	}

	rects := e.MatchRects()
	if len(rects) != 3 {
		t.Fatalf("match rects = %+v", rects)
	}
	for i, r := range rects {
		if r.Current != (i == 2) {
			t.Errorf("rect %d current = %v", i, r.Current)
		}
	}
	if rects[1].X != 3 || rects[1].Width != 3 {
		t.Errorf("rect 1 = %+v", rects[1])
	}

	e.TypeRune('\b')
	if e.SearchQuery() != "ab" {
		t.Errorf("query = %q", e.SearchQuery())
	}

	e.ExitSearch()
	assertCursor(t, e, 1, 4)
	if e.IsSearchMode() || e.SearchQuery() != "" || len(e.MatchRects()) != 0 {
		t.Error("search state kept after exit")
	}
}

func TestSearchNotFound(t *testing.T) {
	e, _ := newTestEditor(t, "abc")

	e.EnterSearch()
	if err := e.SetSearchQuery("zzz"); err != nil {
		t.Fatal(err)
	}
	assertCursor(t, e, 0, 0)
	if !strings.Contains(e.Message(), "not found") {
		t.Errorf("message = %q", e.Message())
	}
	e.AcceptSearch()
	if e.IsSearchMode() {
		t.Error("still in search mode")
	}
}

func TestSearchRevealsMatch(t *testing.T) {
	long := strings.Repeat(" ", 200) + "needle"
	e, _ := newTestEditor(t, numberedLines(50)+"\n"+long)

	e.EnterSearch()
	e.SetSearchQuery("needle")
	assertCursor(t, e, 50, 200)

	s, vp := e.ScrollOffset(), e.Viewport()
	if s.X > 200 || s.X+vp.Width < 206 {
		t.Errorf("match not visible, scroll = %+v", s)
	}
	if s.Y > 50 || 50 >= s.Y+vp.LinesPerPage() {
		t.Errorf("line not visible, scroll = %+v", s)
	}
}

func TestSearchFollowsEdits(t *testing.T) {
	e, _ := newTestEditor(t, "abc")

	e.EnterSearch()
	e.SetSearchQuery("abc")
	e.AcceptSearch()
	e.MoveCursorEndOfLine()
	typeString(e, " abc")
	if n := len(e.MatchRects()); n != 2 {
		t.Errorf("matches = %d, want 2", n)
	}
}

func TestTitleAndModified(t *testing.T) {
	e, _ := newTestEditor(t, "")

	if e.Title() != file.DefaultName {
		t.Errorf("title = %q", e.Title())
	}
	e.TypeRune('x')
	if e.Title() != file.DefaultName+" (Modified)" {
		t.Errorf("title = %q", e.Title())
	}
	e.TypeRune('\b')
	if e.IsModified() || e.Title() != file.DefaultName {
		t.Errorf("title = %q", e.Title())
	}
}

func TestStats(t *testing.T) {
	e, _ := newTestEditor(t, "he\u0301llo\nworld")

	e.MoveCursorTo(file.Cursor{RowIndex: 1, ColIndex: 2})
	s := e.Stats()
	if s.Lines != 2 || s.Chars != 11 || s.Graphemes != 10 {
		t.Errorf("stats = %+v", s)
	}
	if got := s.String(); got != "Ln 2, Col 3  |  Lines: 2  |  Chars: 11" {
		t.Errorf("String() = %q", got)
	}
}

func TestLoadSave(t *testing.T) {
	e, _ := newTestEditor(t, "a\r\nb")

	e.MoveCursorEndOfFile()
	e.TypeRune('c')
	var buf bytes.Buffer
	if err := e.Save(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "a\r\nbc" {
		t.Errorf("saved %q", buf.String())
	}
	if e.IsModified() {
		t.Error("modified after save")
	}

	if err := e.Load(strings.NewReader("x\ny")); err != nil {
		t.Fatal(err)
	}
	assertCursor(t, e, 0, 0)
	if s := e.ScrollOffset(); s.X != 0 || s.Y != 0 {
		t.Errorf("scroll = %+v", s)
	}
	e.Undo()
	assertLines(t, e, "x", "y")
}

func TestReadonly(t *testing.T) {
	e, _ := newTestEditor(t, "abc")
	e.SetReadonly(true)

	e.TypeRune('x')
	assertLines(t, e, "abc")
	if !strings.Contains(e.Message(), "read-only") {
		t.Errorf("message = %q", e.Message())
	}
}

func TestPointerDoubleClickSelectsWord(t *testing.T) {
	e, _ := newTestEditor(t, "hello world")

	e.PointerDoubleClick(7, 0)
	if got := e.SelectionText(); got != "world" {
		t.Errorf("selection = %q", got)
	}
	assertCursor(t, e, 0, 11)
}
