// derived from bufio/scan.go

package file

import (
	"bytes"

	"github.com/ge-editor/utils"
)

func newScanLines() *scanLines_ {
	return &scanLines_{}
}

type scanLines_ struct {
	countLF, countCRLF, countCR int
	// terminated is true when the last token returned ended with a line feed.
	terminated bool
}

// scanLines is a split function for a Scanner that returns each line of
// text, stripped of its end-of-line marker. The returned line may be empty.
// The end-of-line marker is LF, CRLF or a lone CR; each kind is counted so the
// dominant one can be written back on save.
func (sl *scanLines_) scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			sl.countLF++
			sl.terminated = true
			return i + 1, data[:i], nil
		}
		// data[i] == '\r'
		if i+1 < len(data) {
			sl.terminated = true
			if data[i+1] == '\n' {
				sl.countCRLF++
				return i + 2, data[:i], nil
			}
			sl.countCR++
			return i + 1, data[:i], nil
		}
		if atEOF {
			sl.countCR++
			sl.terminated = true
			return i + 1, data[:i], nil
		}
		// Need the next byte to tell CR from CRLF.
		return 0, nil, nil
	}
	// If we're at EOF, we have a final, non-terminated line. Return it.
	if atEOF {
		sl.terminated = false
		return len(data), data, nil
	}
	// Request more data.
	return 0, nil, nil
}

// linefeed returns the most frequent line terminator, LF when there is none.
func (sl *scanLines_) linefeed() linefeed {
	if sl.countLF+sl.countCRLF+sl.countCR == 0 {
		return LF
	}
	return []linefeed{LF, CRLF, CR}[utils.MaxValueIndex([]int{sl.countLF, sl.countCRLF, sl.countCR})]
}
