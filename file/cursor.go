package file

// Cursor is a logical position in the document.
// ColIndex counts runes, not bytes or cells.
type Cursor struct {
	RowIndex int
	ColIndex int
}

func (c Cursor) Equals(other Cursor) bool {
	return c.RowIndex == other.RowIndex && c.ColIndex == other.ColIndex
}

// Compare returns -1, 0 or +1 in document order.
func (c Cursor) Compare(other Cursor) int {
	switch {
	case c.RowIndex < other.RowIndex:
		return -1
	case c.RowIndex > other.RowIndex:
		return 1
	case c.ColIndex < other.ColIndex:
		return -1
	case c.ColIndex > other.ColIndex:
		return 1
	}
	return 0
}

func (c Cursor) Less(other Cursor) bool {
	return c.Compare(other) < 0
}

// Order returns a and b sorted so that the first is not after the second.
func Order(a, b Cursor) (Cursor, Cursor) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

// AdjustForDeletion moves the cursor to stay on the same text after the span
// deleteStart..deleteEnd has been removed.
func (c *Cursor) AdjustForDeletion(deleteStart, deleteEnd Cursor) {
	if c.RowIndex < deleteStart.RowIndex {
		return
	}

	if c.RowIndex == deleteStart.RowIndex && c.ColIndex <= deleteStart.ColIndex {
		return
	}

	// After the deleted span
	if c.RowIndex > deleteEnd.RowIndex || (c.RowIndex == deleteEnd.RowIndex && c.ColIndex >= deleteEnd.ColIndex) {
		if c.RowIndex == deleteEnd.RowIndex {
			c.ColIndex = deleteStart.ColIndex + c.ColIndex - deleteEnd.ColIndex
		}
		c.RowIndex -= deleteEnd.RowIndex - deleteStart.RowIndex
		return
	}

	// Inside the deleted span
	*c = deleteStart
}

// AdjustForInsertion moves the cursor to stay on the same text after
// insertStart..insertEnd has been inserted.
func (c *Cursor) AdjustForInsertion(insertStart, insertEnd Cursor) {
	if c.RowIndex < insertStart.RowIndex {
		return
	}

	rowOffset := insertEnd.RowIndex - insertStart.RowIndex

	if c.RowIndex == insertStart.RowIndex {
		if c.ColIndex >= insertStart.ColIndex {
			if rowOffset == 0 {
				c.ColIndex += insertEnd.ColIndex - insertStart.ColIndex
			} else {
				c.ColIndex = c.ColIndex - insertStart.ColIndex + insertEnd.ColIndex
				c.RowIndex += rowOffset
			}
		}
		return
	}

	c.RowIndex += rowOffset
}
