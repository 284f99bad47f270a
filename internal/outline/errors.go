package outline

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedNumber is returned when a numeric field holds anything but digits.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrMalformedTime is returned for a time stamp that is short or non-numeric.
	ErrMalformedTime = errors.New("malformed time")
	// ErrMalformedDate is returned for a date with a short field or a bad separator.
	ErrMalformedDate = errors.New("malformed date")
	// ErrMalformedCheckbox is returned when the input does not start with [], [ ], [x] or [X].
	ErrMalformedCheckbox = errors.New("malformed checkbox")
	// ErrMissingTitleDelimiter means the block never contains ";;".
	ErrMissingTitleDelimiter = errors.New("missing ';;' title delimiter")
	// ErrEmptyTitle means the title was blank once trimmed.
	ErrEmptyTitle = errors.New("empty title")
	// ErrInvalidText is returned when the title or body is not valid UTF-8.
	ErrInvalidText = errors.New("invalid UTF-8 text")
)

// BlockError reports why a single block failed to parse.
type BlockError struct {
	Index int
	Depth int
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d (depth %d): %v", e.Index+1, e.Depth, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}
