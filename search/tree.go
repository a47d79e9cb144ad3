package search

import (
	"cmp"
	"slices"

	"github.com/rdleal/intervalst/interval"
)

// rowTree indexes matches by row for drawing the visible part of the document.
type rowTree struct {
	lookup *interval.MultiValueSearchTree[Match, int]
	empty  bool
}

func newRowTree() *rowTree {
	t := &rowTree{}
	t.reset()
	return t
}

func (t *rowTree) reset() {
	t.lookup = interval.NewMultiValueSearchTreeWithOptions[Match, int](cmp.Compare[int], interval.TreeWithIntervalPoint())
	t.empty = true
}

func (t *rowTree) insert(row int, ms []Match) {
	t.lookup.Insert(row, row, slices.Clone(ms)...)
	t.empty = false
}

func (t *rowTree) find(first, last int) []Match {
	if t.empty || first > last {
		return nil
	}
	var found []Match
	for row := max(first, 0); row <= last; row++ {
		if ms, ok := t.lookup.AnyIntersection(row, row); ok {
			found = append(found, ms...)
		}
	}
	slices.SortFunc(found, func(a, b Match) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Start, b.Start)
	})
	return found
}
