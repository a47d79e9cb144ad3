// Package search finds every occurrence of a query in a document and keeps
// a current match for next/previous navigation.
package search

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ge-editor/tecore/file"
	"github.com/ge-editor/tecore/pkg_error"
)

// Source is the document content searched.
type Source interface {
	LenRows() int
	Row(rowIndex int) file.Row
}

// Match is one occurrence: Start and End are rune columns on Row, End exclusive.
type Match struct {
	Row   int
	Start int
	End   int
}

func (m Match) StartCursor() file.Cursor {
	return file.Cursor{RowIndex: m.Row, ColIndex: m.Start}
}

func (m Match) EndCursor() file.Cursor {
	return file.Cursor{RowIndex: m.Row, ColIndex: m.End}
}

type Options struct {
	CaseSensitive bool
	Regexp        bool
}

// Index is the list of matches of the current query in document order.
type Index struct {
	opts    Options
	query   string
	re      *regexp.Regexp // nil for a plain case sensitive query
	matches []Match
	current int
	rows    *rowTree
}

func New(opts Options) *Index {
	return &Index{opts: opts, rows: newRowTree()}
}

func (x *Index) Options() Options {
	return x.opts
}

// SetOptions changes the options and rescans when a query is set.
func (x *Index) SetOptions(opts Options, src Source) error {
	x.opts = opts
	return x.SetQuery(x.query, src)
}

func (x *Index) Query() string {
	return x.query
}

// IsActive reports whether a query is set.
func (x *Index) IsActive() bool {
	return x.query != ""
}

// SetQuery replaces the query and scans the whole document. The current match
// is reset to the first one. An empty query clears the index.
func (x *Index) SetQuery(query string, src Source) error {
	x.query = query
	x.re = nil
	x.current = 0
	if query == "" {
		x.reset()
		return nil
	}
	if x.opts.Regexp || !x.opts.CaseSensitive {
		pattern := query
		if !x.opts.Regexp {
			pattern = regexp.QuoteMeta(query)
		}
		if !x.opts.CaseSensitive {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			x.query = ""
			x.reset()
			return fmt.Errorf("%w: %w", pkg_error.ErrInvalidQuery, err)
		}
		x.re = re
	}
	x.scan(src)
	return nil
}

// Rescan searches again for the same query after the document changed.
// The current index is kept, limited to the new match count.
func (x *Index) Rescan(src Source) {
	if x.query == "" {
		return
	}
	current := x.current
	x.scan(src)
	x.current = min(current, max(len(x.matches)-1, 0))
}

func (x *Index) Clear() {
	x.query = ""
	x.re = nil
	x.current = 0
	x.reset()
}

func (x *Index) reset() {
	x.matches = x.matches[:0]
	x.rows.reset()
}

func (x *Index) scan(src Source) {
	x.reset()
	for i := 0; i < src.LenRows(); i++ {
		n := len(x.matches)
		x.matches = x.scanRow(x.matches, i, src.Row(i).String())
		if len(x.matches) > n {
			x.rows.insert(i, x.matches[n:])
		}
	}
}

// scanRow appends the non-overlapping matches in s to ms.
func (x *Index) scanRow(ms []Match, row int, s string) []Match {
	// Byte offsets are converted to rune columns incrementally.
	lastByte, lastCol := 0, 0
	col := func(b int) int {
		lastCol += utf8.RuneCountInString(s[lastByte:b])
		lastByte = b
		return lastCol
	}

	if x.re != nil {
		for _, loc := range x.re.FindAllStringIndex(s, -1) {
			if loc[0] == loc[1] {
				continue // empty matches cannot be navigated to
			}
			start := col(loc[0])
			ms = append(ms, Match{Row: row, Start: start, End: col(loc[1])})
		}
		return ms
	}

	l := utf8.RuneCountInString(x.query)
	index := 0
	for {
		findIndex := strings.Index(s[index:], x.query)
		if findIndex == -1 {
			return ms
		}
		start := col(index + findIndex)
		ms = append(ms, Match{Row: row, Start: start, End: start + l})
		index += findIndex + len(x.query)
	}
}

// Matches returns the matches in document order. The slice must not be modified.
func (x *Index) Matches() []Match {
	return x.matches
}

func (x *Index) Len() int {
	return len(x.matches)
}

// CurrentIndex returns the index of the current match, -1 when there is none.
func (x *Index) CurrentIndex() int {
	if len(x.matches) == 0 {
		return -1
	}
	return x.current
}

func (x *Index) Current() (Match, bool) {
	if len(x.matches) == 0 {
		return Match{}, false
	}
	return x.matches[x.current], true
}

// Select makes match i current.
func (x *Index) Select(i int) (Match, bool) {
	if i < 0 || i >= len(x.matches) {
		return Match{}, false
	}
	x.current = i
	return x.matches[i], true
}

// Next advances to the following match, wrapping to the first after the last.
// Without matches the document is scanned again and the first match returned.
func (x *Index) Next(src Source) (Match, bool) {
	if len(x.matches) == 0 {
		return x.first(src)
	}
	x.current = (x.current + 1) % len(x.matches)
	return x.matches[x.current], true
}

// Previous moves to the preceding match, wrapping to the last before the first.
func (x *Index) Previous(src Source) (Match, bool) {
	if len(x.matches) == 0 {
		return x.first(src)
	}
	x.current = (x.current - 1 + len(x.matches)) % len(x.matches)
	return x.matches[x.current], true
}

func (x *Index) first(src Source) (Match, bool) {
	if x.query == "" {
		return Match{}, false
	}
	x.scan(src)
	x.current = 0
	return x.Current()
}

// IndexAtOrAfter returns the first match not before c, wrapping to 0.
func (x *Index) IndexAtOrAfter(c file.Cursor) int {
	for i, m := range x.matches {
		if !m.StartCursor().Less(c) {
			return i
		}
	}
	return 0
}

// InRows returns the matches on rows first to last, in document order.
func (x *Index) InRows(first, last int) []Match {
	return x.rows.find(first, last)
}
