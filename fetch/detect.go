package fetch

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/h2non/filetype"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

var markupType = filetype.NewType("html", "text/html")

func init() {
	filetype.AddMatcher(markupType, isMarkup)
}

func isMarkup(buf []byte) bool {
	buf = bytes.TrimLeft(bytes.TrimPrefix(buf, utf8BOM), " \t\r\n")
	return len(buf) > 0 && buf[0] == '<'
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// isArchiveFile checks zip signature of the file at path.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

// checkPayload refuses sources recognized as images, archives, fonts and
// other binary formats.
func checkPayload(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return fmt.Errorf("unable to detect payload type: %w", err)
	}
	if kind == filetype.Unknown || kind == markupType {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrBinaryPayload, kind.MIME.Value)
}

// decode converts raw bytes to text. Charset comes from content type, BOM or
// meta prescan; when none of those is conclusive fallback is used.
func decode(data []byte, contentType string, fallback encoding.Encoding) (string, string, error) {
	enc, name, certain := charset.DetermineEncoding(data, contentType)
	if !certain && name != "utf-8" && fallback != nil {
		enc, name = fallback, "fallback"
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", name, fmt.Errorf("unable to decode source as %s: %w", name, err)
	}
	return string(bytes.TrimPrefix(out, utf8BOM)), name, nil
}
