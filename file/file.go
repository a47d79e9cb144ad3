package file

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ge-editor/gecore/verb"

	"github.com/ge-editor/utils"

	"github.com/ge-editor/tecore/pkg_error"
)

type flags int8
type linefeed int8

const (
	READONLY flags = 1 << iota
)

const (
	LF linefeed = 1 << iota
	CRLF
	CR
)

// DefaultName is shown for a document that has never been saved.
const DefaultName = "New Document"

// File is the document: an ordered list of lines, at least one, plus the
// metadata needed to read it from and write it back to disk.
type File struct {
	rawPath  string
	path     string
	base     string
	dispPath string

	size    int64
	mode    os.FileMode
	modTime time.Time

	rows
	encoding string
	linefeed
	flags // readonly

	// baseline is the content at the last load or save.
	baseline []string

	*UndoStack
}

// Call New() or Load() after invoking this function.
// An empty rawPath is an unnamed document.
func NewFile(rawPath string) *File {
	ff := &File{
		rawPath: rawPath,

		mode:    fs.ModePerm,
		modTime: time.Now(),

		rows:     newRows(),
		encoding: EncodingUTF8,
		linefeed: LF,

		UndoStack: NewUndoStack(0),
	}
	ff.init()
	ff.MarkSaved()
	return ff
}

// Initialize File with File.rawPath
func (ff *File) init() {
	ff.path, ff.base, ff.dispPath = "", "", ""
	ff.size = 0
	ff.mode = fs.ModePerm
	ff.modTime = time.Now()
	if ff.rawPath == "" {
		return
	}

	info, err := os.Stat(ff.rawPath)
	if err == nil && !info.IsDir() {
		ff.size = info.Size()
		ff.mode = info.Mode()
		ff.modTime = info.ModTime()
	}
	ff.path, err = filepath.Abs(ff.rawPath)
	if err != nil {
		ff.path = ff.rawPath
	}

	dir := ""
	dir, ff.base = filepath.Split(ff.path)
	ff.dispPath = ff.base
	dir = utils.LastPartOfPath(dir)
	wd, err := os.Getwd()
	if err == nil {
		if utils.SameFile(wd, dir) {
			ff.dispPath = filepath.Join(dir, ff.dispPath)
		}
	}
}

// SetHistoryLimit replaces the history with an empty one bounded to limit entries.
func (ff *File) SetHistoryLimit(limit int) {
	ff.UndoStack = NewUndoStack(limit)
}

func (ff *File) ChangePath(path string) {
	ff.rawPath = path
	ff.init()
}

// New empties the document to a single blank line.
func (ff *File) New() {
	ff.rows = newRows()
	ff.encoding = EncodingUTF8
	ff.linefeed = LF
	ff.UndoStack.Reset()
	ff.MarkSaved()
}

// SplitLines splits s on LF, CRLF and lone CR. A trailing terminator yields a
// final empty line and the result always has at least one element.
func SplitLines(s string) []string {
	lines, _, _ := splitLines([]byte(s))
	return lines
}

func splitLines(data []byte) ([]string, linefeed, error) {
	scanLines := newScanLines()
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	scanner.Split(scanLines.scanLines)

	lines := make([]string, 0, bytes.Count(data, []byte{'\n'})+1)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, LF, err
	}
	if len(lines) == 0 || scanLines.terminated {
		lines = append(lines, "")
	}
	return lines, scanLines.linefeed(), nil
}

// Load replaces the document with the content of r.
// r is read to the end before anything changes, so on error the document,
// its history and its modified state are untouched.
func (ff *File) Load(r io.Reader) error {
	data, encoding, err := decode(r)
	if err != nil {
		return fmt.Errorf("%w: %w", pkg_error.ErrLoad, err)
	}
	lines, lf, err := splitLines(data)
	if err != nil {
		return fmt.Errorf("%w: %w", pkg_error.ErrLoad, err)
	}

	ff.rows = rowsFromStrings(lines)
	ff.encoding = encoding
	ff.linefeed = lf
	ff.UndoStack.Reset()
	ff.MarkSaved()
	verb.PP("Load %q: %d lines, %s, %s", ff.rawPath, ff.LenRows(), ff.encoding, ff.GetLinefeed())
	return nil
}

// LoadPath loads the file at path and makes it the document's path.
func (ff *File) LoadPath(path string) error {
	fp, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", pkg_error.ErrLoad, err)
	}
	defer fp.Close()

	if err := ff.Load(fp); err != nil {
		return err
	}
	ff.ChangePath(path)
	ff.SetReadonly(ff.mode.Perm()&0200 == 0)
	return nil
}

// Bytes returns the encoded document: lines joined by the detected line feed,
// without a trailing terminator.
func (ff *File) Bytes() ([]byte, error) {
	lf := "\n"
	if ff.linefeed&CRLF > 0 {
		lf = "\r\n"
	} else if ff.linefeed&CR > 0 {
		lf = "\r"
	}
	return encode([]byte(ff.rows.Join(lf)), ff.encoding)
}

// Save writes the document to w and makes the current content the baseline.
// On error the modified state is unchanged.
func (ff *File) Save(w io.Writer) error {
	data, err := ff.Bytes()
	if err != nil {
		return fmt.Errorf("%w: %w", pkg_error.ErrSave, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", pkg_error.ErrSave, err)
	}
	ff.Finalize()
	ff.MarkSaved()
	return nil
}

// SavePath writes the document to path through a temporary file in the same
// directory, so a failed write never truncates an existing file.
func (ff *File) SavePath(path string) error {
	if path == "" {
		return pkg_error.ErrNoPath
	}
	if ff.IsReadonly() && utils.SameFile(path, ff.path) {
		return fmt.Errorf("%w: %s", pkg_error.ErrReadonly, path)
	}
	data, err := ff.Bytes()
	if err != nil {
		return fmt.Errorf("%w: %w", pkg_error.ErrSave, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", pkg_error.ErrSave, err)
	}
	tmpName := tmp.Name()
	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		mode := fs.FileMode(0644)
		if info, serr := os.Stat(path); serr == nil {
			mode = info.Mode().Perm()
		}
		err = os.Chmod(tmpName, mode)
	}
	if err == nil {
		err = os.Rename(tmpName, path)
	}
	if err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", pkg_error.ErrSave, err)
	}

	ff.Finalize()
	ff.MarkSaved()
	if !utils.SameFile(path, ff.path) {
		ff.ChangePath(path)
	} else {
		ff.init()
	}
	verb.PP("Save %q: %d bytes", path, len(data))
	return nil
}

// Undo reverts the last history entry and returns the caret for the edit site.
func (ff *File) Undo() (Cursor, bool) {
	return ff.UndoStack.Undo(ff)
}

// Redo re-applies the last undone entry.
func (ff *File) Redo() (Cursor, bool) {
	return ff.UndoStack.Redo(ff)
}

// would like to consider other formats such as dates.
func (ff *File) Backup() error {
	for i := 1; i < 1_000_000; i++ {
		backup := fmt.Sprintf("%s.~%d~", ff.path, i)
		if !utils.ExistsFile(backup) {
			return utils.CopyFile(ff.path, backup)
		}
	}
	return fmt.Errorf("too many backups")
}

// MarkSaved makes the current content the baseline for IsModified.
func (ff *File) MarkSaved() {
	ff.baseline = ff.rows.Strings()
}

// IsModified reports whether the content differs from the last load or save.
// Typing a character and deleting it again is not a modification.
func (ff *File) IsModified() bool {
	return !ff.rows.equalStrings(ff.baseline)
}

// Setter/Getter

func (ff *File) GetPath() string {
	return ff.path
}

func (ff *File) GetBase() string {
	return ff.base
}

func (ff *File) GetDispPath() string {
	return ff.dispPath
}

// DisplayName is the display path, or DefaultName for an unnamed document.
func (ff *File) DisplayName() string {
	if ff.dispPath == "" {
		return DefaultName
	}
	return ff.dispPath
}

func (ff *File) GetEncoding() string {
	return ff.encoding
}

func (ff *File) GetLinefeed() string {
	if ff.linefeed&LF > 0 {
		return "LF"
	}
	if ff.linefeed&CRLF > 0 {
		return "CRLF"
	}
	return "CR"
}

// SetLinefeed selects the terminator written on save: "LF", "CRLF" or "CR".
func (ff *File) SetLinefeed(s string) {
	switch s {
	case "CRLF":
		ff.linefeed = CRLF
	case "CR":
		ff.linefeed = CR
	default:
		ff.linefeed = LF
	}
}

// Flags

func (ff *File) SetReadonly(b bool) {
	if b {
		ff.flags |= READONLY
	} else {
		ff.flags &= ^READONLY
	}
}

func (ff *File) IsReadonly() bool {
	return ff.flags&READONLY > 0
}
