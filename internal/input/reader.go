package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadOptions controls raw input collection.
type ReadOptions struct {
	// MaxBytes caps the raw buffer; 0 means unlimited.
	MaxBytes int
}

// Open opens a named input file.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return f, nil
}

// Scanner wraps r so it can push back a byte. Readers that already implement
// io.ByteScanner are returned unchanged.
func Scanner(r io.Reader) io.ByteScanner {
	if bs, ok := r.(io.ByteScanner); ok {
		return bs
	}
	return bufio.NewReader(r)
}

// ReadRaw collects the raw text of a dataset. Leading whitespace is skipped,
// then bytes are buffered until end of input or the first ASCII letter. The
// letter is unread so a later read sees it. ErrNoInput is returned when
// nothing but whitespace precedes that point or when the first
// non-whitespace byte is a letter.
func ReadRaw(r io.ByteScanner, opt ReadOptions) ([]byte, error) {
	var c byte
	var err error
	for {
		c, err = r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrNoInput
			}
			return nil, fmt.Errorf("read input: %w", err)
		}
		if !isSpace(c) {
			break
		}
	}
	if isAlpha(c) {
		_ = r.UnreadByte()
		return nil, ErrNoInput
	}

	buf := NewBuffer(opt.MaxBytes)
	for {
		if err := buf.WriteByte(c); err != nil {
			return nil, err
		}
		c, err = r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return buf.Bytes(), nil
			}
			return nil, fmt.Errorf("read input: %w", err)
		}
		if isAlpha(c) {
			_ = r.UnreadByte()
			return buf.Bytes(), nil
		}
	}
}

// isSpace matches the C locale whitespace set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
