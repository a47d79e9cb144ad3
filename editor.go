// Editor is the editing session of one document.
// It owns the caret, the selection, the search index and the scroll state,
// and keeps them consistent with the document after every edit.

package te

import (
	"errors"
	"io"

	"github.com/ge-editor/gecore/verb"

	"github.com/ge-editor/utils"

	"github.com/ge-editor/tecore/buffer"
	"github.com/ge-editor/tecore/config"
	"github.com/ge-editor/tecore/file"
	"github.com/ge-editor/tecore/mark"
	"github.com/ge-editor/tecore/pkg_error"
	"github.com/ge-editor/tecore/search"
	"github.com/ge-editor/tecore/vline"
)

const (
	defaultColumns = 80
	defaultRows    = 25
)

// NewEditor returns a session on an empty, unnamed document.
func NewEditor(cfg config.Config) *Editor {
	if err := cfg.Validate(); err != nil {
		verb.PP("NewEditor: %v, using defaults", err)
		cfg = config.Default()
	}

	e := &Editor{
		cfg:       cfg,
		selection: mark.NewSelection(),
		search: search.New(search.Options{
			CaseSensitive: cfg.Search.CaseSensitive,
			Regexp:        cfg.Search.Regexp,
		}),
		clipboard: SystemClipboard{},
		viewport: vline.Viewport{
			Width:      defaultColumns * cfg.CellWidth,
			Height:     defaultRows * cfg.LineHeight,
			LineHeight: cfg.LineHeight,
			Padding:    cfg.Padding,
			BufferZone: cfg.BufferZone,
		},
	}
	ff := file.NewFile("")
	ff.SetHistoryLimit(cfg.HistoryLimit)
	ff.SetLinefeed(cfg.Linefeed)
	e.vlines = vline.NewVlines(ff, vline.NewCellMeasurer(cfg.CellWidth, cfg.TabSize, cfg.AmbiguousWide))
	e.setBufferSet(buffer.NewBufferSet(ff))
	return e
}

type Editor struct {
	*file.File
	*buffer.Meta

	set      *buffer.BufferSet
	vlines   *vline.Vlines
	viewport vline.Viewport

	selection *mark.Selection
	search    *search.Index
	// searchMode is set between EnterSearch and ExitSearch.
	searchMode bool

	clipboard Clipboard
	cfg       config.Config

	// message is the status line, replaced by every command.
	message string
}

func (e *Editor) setBufferSet(bs *buffer.BufferSet) {
	e.set = bs
	e.File = bs.File
	e.Meta = buffer.NewMeta()
	e.vlines.SetFile(bs.File)
	e.selection.Clear()
	e.search.Rescan(e.File)
	e.searchMode = false
}

// SetClipboard replaces the clipboard used by Copy, Cut and Paste.
func (e *Editor) SetClipboard(c Clipboard) {
	e.clipboard = c
}

func (e *Editor) Config() config.Config {
	return e.cfg
}

// Echo sets the status message.
func (e *Editor) Echo(message string) {
	e.message = message
}

// Message returns the status message of the last command.
func (e *Editor) Message() string {
	return e.message
}

type syncType int

const (
	syncInsert syncType = iota // The first line is e.vlines.Release, the rest are e.vlines.Insert
	syncDelete                 // The first line is e.vlines.Release, the rest are e.vlines.Delete
	syncModify                 // All is e.vlines.Release
)

// Synchronize an edit of start..end with the state derived from the document:
//   - e.vlines
//   - the selection
//   - carets stored in the buffer set
//   - search matches
func (e *Editor) syncEdits(sync syncType, start, end file.Cursor) {
	start, end = file.Order(start, end)

	switch sync {
	case syncInsert:
		e.vlines.Release(start.RowIndex, start.RowIndex) // first line
		if end.RowIndex > start.RowIndex {
			e.vlines.Insert(start.RowIndex+1, end.RowIndex)
		}
		e.selection.AdjustForInsertion(start, end)
		e.set.SyncInsert(start, end)
	case syncDelete:
		e.vlines.Release(start.RowIndex, start.RowIndex) // first line
		if end.RowIndex > start.RowIndex {
			e.vlines.Delete(start.RowIndex+1, end.RowIndex)
		}
		e.selection.AdjustForDeletion(start, end)
		e.set.SyncDelete(start, end)
	case syncModify:
		e.vlines.ReleaseAll()
		e.selection.Clamp(e.File)
	}
	e.search.Rescan(e.File)
}

// moveCursor commits the open undo action and moves the caret to c.
func (e *Editor) moveCursor(c file.Cursor) {
	e.Finalize()
	e.setCursor(c)
	e.PrevCx = -1
}

// setCursor places the caret on c, clamped to the document, and scrolls to it.
func (e *Editor) setCursor(c file.Cursor) {
	e.Cursor = e.ClampCursor(c)
	e.scrollToCursor()
}

func (e *Editor) scrollToCursor() {
	x := e.vlines.GetVline(e.RowIndex).PixelAtColumn(e.ColIndex)
	e.viewport.AutoScroll(&e.Meta.Scroll, e.RowIndex, x)
}

// FocusLost commits the open undo action.
func (e *Editor) FocusLost() {
	e.Finalize()
}

// Resize sets the pixel size of the text area.
func (e *Editor) Resize(width, height int) {
	e.viewport.Width = max(0, width)
	e.viewport.Height = max(0, height)
	e.scrollToCursor()
}

func (e *Editor) Viewport() vline.Viewport {
	return e.viewport
}

// If the file has already been read, use that buffer.
// The returned error may be a status such as pkg_error.ErrorNewFile,
// see buffer.IsStatus.
func (e *Editor) OpenFile(path string) error {
	if e.set != nil && path != "" && e.GetPath() != "" {
		if utils.SameFile(e.GetPath(), path) {
			return nil
		}
	}

	bs, err := buffer.Open(path)
	if err != nil && !buffer.IsStatus(err) {
		e.Echo(err.Error())
		return err
	}
	bs.SetHistoryLimit(e.cfg.HistoryLimit)
	if errors.Is(err, pkg_error.ErrorNewFile) {
		bs.SetLinefeed(e.cfg.Linefeed)
	}
	e.setBufferSet(bs)
	if err != nil {
		e.Echo(err.Error())
	}
	return err
}

// Load replaces the document with the content of r.
// On failure the document, caret and scroll are left as they were.
func (e *Editor) Load(r io.Reader) error {
	e.Finalize()
	if err := e.File.Load(r); err != nil {
		e.Echo(err.Error())
		return err
	}
	e.setBufferSet(e.set)
	return nil
}

// Save writes the document to w.
func (e *Editor) Save(w io.Writer) error {
	e.Finalize()
	if err := e.File.Save(w); err != nil {
		e.Echo(err.Error())
		return err
	}
	return nil
}

// If the file does not exist, a backup error will occur
func (e *Editor) SaveFile() error {
	e.Finalize()

	backupMessage := ""
	if e.cfg.Backup {
		if err := e.Backup(); err != nil {
			backupMessage = " (" + err.Error() + ")"
		}
	}

	err := e.SavePath(e.GetPath())
	if err != nil {
		e.Echo(err.Error() + backupMessage)
		return err
	}
	e.Echo("Wrote " + e.GetPath() + backupMessage)
	return nil
}

// SaveFileAs changes the path of the document and saves it there.
// If an existing file is specified, it will be overwritten.
func (e *Editor) SaveFileAs(path string) error {
	e.ChangePath(path)
	return e.SaveFile()
}
