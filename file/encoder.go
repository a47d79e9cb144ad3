package file

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dimchansky/utfbom"
	"golang.org/x/text/encoding/unicode"

	"github.com/ge-editor/tecore/pkg_error"
)

// Encodings a File can be read from and written back to.
const (
	EncodingUTF8    = "UTF-8"
	EncodingUTF8BOM = "UTF-8 BOM"
	EncodingUTF16LE = "UTF-16LE"
	EncodingUTF16BE = "UTF-16BE"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decode reads r to the end and returns its content as UTF-8 along with the
// encoding detected from the byte order mark.
func decode(r io.Reader) ([]byte, string, error) {
	rd, enc := utfbom.Skip(r)
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, "", err
	}

	switch enc {
	case utfbom.Unknown:
		return data, EncodingUTF8, nil
	case utfbom.UTF8:
		return data, EncodingUTF8BOM, nil
	case utfbom.UTF16LittleEndian:
		data, err = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(data)
		return data, EncodingUTF16LE, err
	case utfbom.UTF16BigEndian:
		data, err = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(data)
		return data, EncodingUTF16BE, err
	}
	return nil, "", fmt.Errorf("%w: %v", pkg_error.ErrUnsupportedEncoding, enc)
}

// encode converts UTF-8 data to encoding, writing a byte order mark when the
// encoding carries one.
func encode(data []byte, encoding string) ([]byte, error) {
	switch encoding {
	case EncodingUTF8, "":
		return data, nil
	case EncodingUTF8BOM:
		return append(bytes.Clone(utf8BOM), data...), nil
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes(data)
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes(data)
	}
	return nil, fmt.Errorf("%w: %s", pkg_error.ErrUnsupportedEncoding, encoding)
}
