// Package source loads documents for the tokenizer: it gates paths on the
// markdown extension, reads files or stdin and decodes legacy encodings to
// UTF-8.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const MarkdownExtension = ".md"

var (
	ErrNotMarkdown         = errors.New("expected a markdown file")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)

// Encodings lists the accepted source encodings.
var Encodings = []string{"utf8", "cp437", "cp850", "iso-8859-1"}

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func IsMarkdownFile(path string) bool {
	return strings.HasSuffix(path, MarkdownExtension)
}

// ValidatePath rejects paths without the .md suffix.
func ValidatePath(path string) error {
	if !IsMarkdownFile(path) {
		return fmt.Errorf("%w, instead got %s", ErrNotMarkdown, path)
	}
	return nil
}

func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

func decoderFor(sourceEncoding string) (*encoding.Decoder, error) {
	switch sourceEncoding {
	case "cp437":
		return charmap.CodePage437.NewDecoder(), nil
	case "cp850":
		return charmap.CodePage850.NewDecoder(), nil
	case "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, sourceEncoding)
	}
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// An empty encoding is treated as "utf8". The UTF-8 BOM is stripped.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == "" || sourceEncoding == "utf8" {
		return stripUTF8BOM(data), nil
	}

	decoder, err := decoderFor(sourceEncoding)
	if err != nil {
		return nil, err
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return stripUTF8BOM(utf8Data), nil
}

// Read decodes everything from r into a UTF-8 document.
func Read(r io.Reader, sourceEncoding string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}

	utf8Data, err := ConvertToUTF8(data, sourceEncoding)
	if err != nil {
		return "", err
	}
	return string(utf8Data), nil
}

// ReadFile loads path as a UTF-8 document.
func ReadFile(path, sourceEncoding string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error reading file: %w", err)
	}
	defer f.Close()

	return Read(f, sourceEncoding)
}
