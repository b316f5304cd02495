package input

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

// ErrNoInput indicates the stream held no numeric content before end of
// input or the first alphabetic character.
var ErrNoInput = errors.New("no input")

// ErrInputTooLarge indicates the raw buffer would have to grow past its limit.
var ErrInputTooLarge = errors.New("input exceeds buffer limit")

// LimitError carries the limit that was hit. It matches ErrInputTooLarge.
type LimitError struct {
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s of %s", ErrInputTooLarge.Error(), humanize.IBytes(uint64(e.Limit)))
}

func (e *LimitError) Is(target error) bool { return target == ErrInputTooLarge }

// OpenError indicates the named input could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open input: %v", e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }
