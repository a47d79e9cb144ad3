// BufferSet
// - Holds the document being edited
// - Stores saved view states, such as the caret and scroll before a search,
//   so they can be restored later.

package buffer

import (
	"errors"
	"io/fs"
	"os"

	"github.com/ge-editor/tecore/file"
	"github.com/ge-editor/tecore/pkg_error"
)

func NewBufferSet(ff *file.File) *BufferSet {
	return &BufferSet{
		File:  ff,
		metas: make([]*Meta, 0, 2),
	}
}

// Open creates the BufferSet for path.
// A missing file gives an empty document and pkg_error.ErrorNewFile, an
// existing one is loaded and gives pkg_error.ErrorLoadedFile. Both are status
// messages, not failures; any other error is.
func Open(path string) (*BufferSet, error) {
	ff := file.NewFile(path)
	bs := NewBufferSet(ff)
	if path == "" {
		return bs, nil
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return bs, pkg_error.ErrorNewFile
	}
	if err != nil {
		return bs, err
	}
	if !info.Mode().IsRegular() {
		return bs, errors.Join(pkg_error.ErrLoad, errors.New(path+" is not a regular file"))
	}
	if err := ff.LoadPath(path); err != nil {
		return bs, err
	}
	return bs, pkg_error.ErrorLoadedFile
}

// IsStatus reports whether err returned by Open is only a status message.
func IsStatus(err error) bool {
	return errors.Is(err, pkg_error.ErrorNewFile) || errors.Is(err, pkg_error.ErrorLoadedFile)
}

type BufferSet struct {
	*file.File
	metas []*Meta
}

func (bs *BufferSet) GetMetas() []*Meta {
	return bs.metas
}

func (bs *BufferSet) PushMeta(m *Meta) {
	bs.metas = append(bs.metas, m.Copy())
}

// PopMeta returns the last pushed meta, or a new one when none is stored.
func (bs *BufferSet) PopMeta() *Meta {
	if len(bs.metas) > 0 {
		lastMeta := bs.metas[len(bs.metas)-1]
		bs.metas = bs.metas[:len(bs.metas)-1]
		return lastMeta
	}
	return NewMeta()
}

// DropMeta discards the last pushed meta.
func (bs *BufferSet) DropMeta() {
	if len(bs.metas) > 0 {
		bs.metas = bs.metas[:len(bs.metas)-1]
	}
}

// SyncInsert keeps stored carets on the same text after an insertion.
func (bs *BufferSet) SyncInsert(start, end file.Cursor) {
	for _, m := range bs.metas {
		m.Cursor.AdjustForInsertion(start, end)
	}
}

// SyncDelete keeps stored carets on the same text after a deletion.
func (bs *BufferSet) SyncDelete(start, end file.Cursor) {
	for _, m := range bs.metas {
		m.Cursor.AdjustForDeletion(start, end)
	}
}
