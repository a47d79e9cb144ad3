package file

import (
	"unicode"
)

// Row is the content of one line without its line terminator.
type Row []rune

func (m Row) Ch(index int) rune {
	return m[index]
}

// Return length of the Row
func (m Row) LenCh() int {
	return len(m)
}

func (m Row) String() string {
	return string(m)
}

// Return the indented string at the beginning of the line
func (m Row) BeginningSpaces() (runes []rune) {
	for _, ch := range m {
		if ch == ' ' || ch == '\t' {
			runes = append(runes, ch)
			continue
		}
		return
	}
	return
}

// clampCol returns colIndex limited to 0..LenCh.
func (m Row) clampCol(colIndex int) int {
	if colIndex < 0 {
		return 0
	}
	if colIndex > len(m) {
		return len(m)
	}
	return colIndex
}

// CharClass drives typing coalescing: runs of the same class are one undo step.
type CharClass int8

const (
	// ClassAtomic marks edits that never coalesce (tab, paste, line breaks).
	ClassAtomic CharClass = iota
	ClassWord
	ClassSpace
	ClassPunct
)

func (c CharClass) String() string {
	switch c {
	case ClassWord:
		return "word"
	case ClassSpace:
		return "space"
	case ClassPunct:
		return "punct"
	}
	return "atomic"
}

// Groupable reports whether consecutive edits of this class may merge.
func (c CharClass) Groupable() bool {
	return c == ClassWord || c == ClassSpace
}

func ClassOf(ch rune) CharClass {
	switch {
	case ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch) || unicode.IsMark(ch):
		return ClassWord
	case unicode.IsSpace(ch):
		return ClassSpace
	}
	return ClassPunct
}

// ClassOfRunes returns the common class of rs, or ClassAtomic when mixed.
func ClassOfRunes(rs []rune) CharClass {
	if len(rs) == 0 {
		return ClassAtomic
	}
	c := ClassOf(rs[0])
	for _, ch := range rs[1:] {
		if ClassOf(ch) != c {
			return ClassAtomic
		}
	}
	return c
}
