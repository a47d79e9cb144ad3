package vline

// Scroll is the view offset: X in pixels, Y in lines.
type Scroll struct {
	X int
	Y int
}

// Viewport is the geometry of the text area and the auto-scroll policy.
type Viewport struct {
	Width      int // pixels
	Height     int // pixels
	LineHeight int // pixels
	// Padding is the horizontal margin, in pixels, kept between the caret and the edges.
	Padding int
	// BufferZone is the number of lines kept above the caret when scrolling up.
	BufferZone int
}

// LinesPerPage returns the number of whole lines that fit, at least 1.
func (v Viewport) LinesPerPage() int {
	if v.LineHeight <= 0 {
		return 1
	}
	return max(1, v.Height/v.LineHeight)
}

// LineAtPixelY returns the document row at y pixels from the top of the view.
// The result is not limited to the document, callers clamp it.
func (v Viewport) LineAtPixelY(y, scrollY int) int {
	if v.LineHeight <= 0 || y < 0 {
		return max(0, scrollY)
	}
	return max(0, y/v.LineHeight+scrollY)
}

// AutoScroll changes s so the caret at caretLine, caretX (pixels from the
// start of the line) is visible.
func (v Viewport) AutoScroll(s *Scroll, caretLine, caretX int) {
	if caretX <= s.X+v.Padding {
		s.X = max(0, caretX-v.Padding)
	} else if caretX > s.X+v.Width-v.Padding {
		s.X = caretX - v.Width + v.Padding
	}

	lines := v.LinesPerPage()
	if caretLine < s.Y+v.BufferZone {
		s.Y = max(0, caretLine-v.BufferZone)
	} else if caretLine >= s.Y+lines {
		s.Y = caretLine - lines + 1
	}
}

// Reveal scrolls to a span on line from startX to endX: the line is centred
// vertically, the end is brought into view, and the start is never hidden.
func (v Viewport) Reveal(s *Scroll, line, startX, endX, lineCount int) {
	lines := v.LinesPerPage()
	s.Y = max(0, min(line-lines/2, lineCount-lines))

	if endX > s.X+v.Width {
		s.X = endX - v.Width + v.Padding
	}
	if startX < s.X {
		s.X = max(0, startX-v.Padding)
	}
	s.X = max(0, s.X)
}

// ClampScroll limits s to the scrollable range of the content.
func (v Viewport) ClampScroll(s *Scroll, lineCount, contentWidth int) {
	s.Y = max(0, min(s.Y, lineCount-v.LinesPerPage()))
	s.X = max(0, min(s.X, contentWidth-v.Width))
}

// VisibleRows returns the first and last document rows inside the view, or
// -1, -1 when the view shows no row.
func (v Viewport) VisibleRows(s Scroll, lineCount int) (int, int) {
	first, last := max(0, s.Y), min(lineCount-1, s.Y+v.LinesPerPage()-1)
	if first > last {
		return -1, -1
	}
	return first, last
}
