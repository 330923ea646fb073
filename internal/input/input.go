package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// DefaultMaxSize is the default input size cap.
// 5MB is far beyond any hand-written HTML exercise while preventing
// memory exhaustion from an accidental binary or log file.
const DefaultMaxSize = 5 * 1024 * 1024

var (
	// ErrEmpty is returned when the input is blank or whitespace only.
	ErrEmpty = errors.New("input is empty")

	// ErrTooLarge is returned when the input exceeds the size cap.
	ErrTooLarge = errors.New("input exceeds maximum size")
)

// Reader reads and normalizes analysis inputs.
type Reader struct {
	// maxSize is the input size cap in bytes, applied before decoding.
	maxSize int64
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithMaxSize sets the input size cap in bytes.
// Values below one are ignored.
func WithMaxSize(n int64) ReaderOption {
	return func(r *Reader) {
		if n > 0 {
			r.maxSize = n
		}
	}
}

// NewReader creates a Reader with the default size cap.
func NewReader(opts ...ReaderOption) *Reader {
	r := &Reader{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadFile reads and normalizes the document at path.
func (r *Reader) ReadFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return "", fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	text, err := r.Read(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// Read reads and normalizes a document from src.
// It returns ErrTooLarge when the raw input exceeds the size cap and
// ErrEmpty when the decoded text is blank or whitespace only.
func (r *Reader) Read(src io.Reader) (string, error) {
	// Read one extra byte so truncation is detectable.
	raw, err := io.ReadAll(io.LimitReader(src, r.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if int64(len(raw)) > r.maxSize {
		return "", fmt.Errorf("%w (%d bytes allowed)", ErrTooLarge, r.maxSize)
	}

	text, err := decode(raw)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmpty
	}
	return text, nil
}

// decode converts raw bytes to UTF-8 text.
// The charset is sniffed from a BOM, a meta tag, or byte statistics in
// the first kilobyte, matching browser behavior for local files.
func decode(raw []byte) (string, error) {
	enc, _, _ := charset.DetermineEncoding(raw, "")
	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode input: %w", err)
	}
	return string(decoded), nil
}
