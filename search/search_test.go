package search

import (
	"errors"
	"slices"
	"strings"
	"testing"

	lorem "github.com/drhodes/golorem"

	"github.com/ge-editor/tecore/file"
	"github.com/ge-editor/tecore/pkg_error"
)

type lines []string

func (l lines) LenRows() int             { return len(l) }
func (l lines) Row(rowIndex int) file.Row { return file.Row(l[rowIndex]) }

func TestSetQuery(t *testing.T) {
	tests := []struct {
		name  string
		doc   lines
		query string
		opts  Options
		want  []Match
	}{
		{"example", lines{"abcabc", "xabc"}, "abc", Options{CaseSensitive: true},
			[]Match{{0, 0, 3}, {0, 3, 6}, {1, 1, 4}}},
		{"non overlapping", lines{"aaaa"}, "aa", Options{CaseSensitive: true},
			[]Match{{0, 0, 2}, {0, 2, 4}}},
		{"case sensitive", lines{"Abc abc"}, "abc", Options{CaseSensitive: true},
			[]Match{{0, 4, 7}}},
		{"case insensitive", lines{"Abc abc"}, "ABC", Options{},
			[]Match{{0, 0, 3}, {0, 4, 7}}},
		{"rune columns", lines{"日本語の本"}, "本", Options{CaseSensitive: true},
			[]Match{{0, 1, 2}, {0, 4, 5}}},
		{"regexp", lines{"a1 b22 c333"}, `[0-9]+`, Options{CaseSensitive: true, Regexp: true},
			[]Match{{0, 1, 2}, {0, 4, 6}, {0, 8, 11}}},
		{"metacharacters literal", lines{"a.b axb"}, "a.b", Options{},
			[]Match{{0, 0, 3}}},
		{"no match", lines{"hello"}, "xyz", Options{CaseSensitive: true}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := New(tt.opts)
			if err := x.SetQuery(tt.query, tt.doc); err != nil {
				t.Fatal(err)
			}
			if got := x.Matches(); !slices.Equal(got, tt.want) {
				t.Errorf("matches = %v, want %v", got, tt.want)
			}
			if len(tt.want) > 0 && x.CurrentIndex() != 0 {
				t.Errorf("current = %d, want 0", x.CurrentIndex())
			}
		})
	}
}

func TestEmptyQueryClears(t *testing.T) {
	x := New(Options{CaseSensitive: true})
	doc := lines{"abc"}
	x.SetQuery("b", doc)
	x.SetQuery("", doc)
	if x.Len() != 0 || x.IsActive() || x.CurrentIndex() != -1 {
		t.Errorf("len %d, active %v, current %d", x.Len(), x.IsActive(), x.CurrentIndex())
	}
	if _, ok := x.Next(doc); ok {
		t.Error("Next without query reported a match")
	}
}

func TestInvalidRegexp(t *testing.T) {
	x := New(Options{Regexp: true})
	err := x.SetQuery("(", lines{"("})
	if !errors.Is(err, pkg_error.ErrInvalidQuery) {
		t.Fatalf("err = %v", err)
	}
	if x.IsActive() {
		t.Error("invalid query left the index active")
	}
}

func TestNextPreviousWrap(t *testing.T) {
	doc := lines{"abcabc", "xabc"}
	x := New(Options{CaseSensitive: true})
	x.SetQuery("abc", doc)

	wantNext := []Match{{0, 3, 6}, {1, 1, 4}, {0, 0, 3}}
	for _, want := range wantNext {
		if got, _ := x.Next(doc); got != want {
			t.Errorf("Next = %v, want %v", got, want)
		}
	}
	if got, _ := x.Previous(doc); got != (Match{1, 1, 4}) {
		t.Errorf("Previous from first = %v, want last", got)
	}
}

func TestNextRescansWhenEmpty(t *testing.T) {
	doc := lines{"none"}
	x := New(Options{CaseSensitive: true})
	x.SetQuery("abc", doc)
	if x.Len() != 0 {
		t.Fatal("unexpected match")
	}
	doc = lines{"here abc"}
	m, ok := x.Next(doc)
	if !ok || m != (Match{0, 5, 8}) {
		t.Errorf("Next = %v, %v", m, ok)
	}
}

func TestRescanKeepsCurrent(t *testing.T) {
	x := New(Options{CaseSensitive: true})
	x.SetQuery("a", lines{"aaa"})
	x.Select(2)
	x.Rescan(lines{"aa"})
	if x.CurrentIndex() != 1 {
		t.Errorf("current = %d, want 1", x.CurrentIndex())
	}
	x.Rescan(lines{"b"})
	if x.CurrentIndex() != -1 {
		t.Errorf("current = %d, want -1", x.CurrentIndex())
	}
}

func TestInRows(t *testing.T) {
	doc := lines{"ab ab", "", "ab", "x", "ab"}
	x := New(Options{CaseSensitive: true})
	x.SetQuery("ab", doc)

	got := x.InRows(0, 2)
	want := []Match{{0, 0, 2}, {0, 3, 5}, {2, 0, 2}}
	if !slices.Equal(got, want) {
		t.Errorf("InRows(0, 2) = %v, want %v", got, want)
	}
	if got := x.InRows(3, 3); len(got) != 0 {
		t.Errorf("InRows(3, 3) = %v", got)
	}
	x.Clear()
	if got := x.InRows(0, 4); len(got) != 0 {
		t.Errorf("InRows after Clear = %v", got)
	}
}

func TestIndexAtOrAfter(t *testing.T) {
	x := New(Options{CaseSensitive: true})
	x.SetQuery("a", lines{"a a", "a"})
	tests := []struct {
		c    file.Cursor
		want int
	}{
		{file.Cursor{RowIndex: 0, ColIndex: 0}, 0},
		{file.Cursor{RowIndex: 0, ColIndex: 1}, 1},
		{file.Cursor{RowIndex: 1, ColIndex: 0}, 2},
		{file.Cursor{RowIndex: 1, ColIndex: 1}, 0},
	}
	for _, tt := range tests {
		if got := x.IndexAtOrAfter(tt.c); got != tt.want {
			t.Errorf("IndexAtOrAfter(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

// Every match found in generated text is an occurrence of the query.
func TestMatchesAreOccurrences(t *testing.T) {
	var doc lines
	for range 50 {
		doc = append(doc, lorem.Sentence(5, 15))
	}
	x := New(Options{CaseSensitive: true})
	x.SetQuery("e", doc)
	count := 0
	for _, line := range doc {
		count += strings.Count(line, "e")
	}
	if x.Len() != count {
		t.Errorf("Len = %d, want %d", x.Len(), count)
	}
	for _, m := range x.Matches() {
		if got := string([]rune(doc[m.Row])[m.Start:m.End]); got != "e" {
			t.Fatalf("match %v covers %q", m, got)
		}
	}
}

func BenchmarkSetQuery(b *testing.B) {
	var doc lines
	for range 2000 {
		doc = append(doc, lorem.Sentence(8, 20))
	}
	x := New(Options{CaseSensitive: true})
	b.ResetTimer()
	for range b.N {
		x.SetQuery("et", doc)
	}
}
