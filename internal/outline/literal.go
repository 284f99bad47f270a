package outline

import (
	"fmt"
	"strconv"
)

// parseInteger converts a span made only of ASCII digits.
func parseInteger(span []byte) (uint32, error) {
	if len(span) == 0 {
		return 0, ErrMalformedNumber
	}
	for _, c := range span {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, span)
		}
	}
	n, err := strconv.ParseUint(string(span), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, span)
	}
	return uint32(n), nil
}

// fixedInteger reads exactly width bytes as a number.
func fixedInteger(input []byte, width int) (uint32, []byte, error) {
	if len(input) < width {
		return 0, input, ErrMalformedNumber
	}
	n, err := parseInteger(input[:width])
	if err != nil {
		return 0, input, err
	}
	return n, input[width:], nil
}

// ParseTime reads HH:MM or HHMM from the start of input and returns the
// remaining bytes.
func ParseTime(input []byte) (Time, []byte, error) {
	hours, rest, err := fixedInteger(input, 2)
	if err != nil {
		return Time{}, input, fmt.Errorf("%w: hours: %v", ErrMalformedTime, err)
	}
	if len(rest) > 0 && rest[0] == ':' {
		rest = rest[1:]
	}
	minutes, rest, err := fixedInteger(rest, 2)
	if err != nil {
		return Time{}, input, fmt.Errorf("%w: minutes: %v", ErrMalformedTime, err)
	}
	return Time{Hours: uint8(hours), Minutes: uint8(minutes)}, rest, nil
}

// ParseDateTime reads YYYY-MM-DD (either separator may be '/') with an
// optional tHH:MM suffix. A t/T that is not followed by a valid time is left
// in the remainder.
func ParseDateTime(input []byte) (DateTime, []byte, error) {
	year, rest, err := fixedInteger(input, 4)
	if err != nil {
		return DateTime{}, input, fmt.Errorf("%w: year: %v", ErrMalformedDate, err)
	}
	if rest, err = dateSeparator(rest); err != nil {
		return DateTime{}, input, err
	}
	month, rest, err := fixedInteger(rest, 2)
	if err != nil {
		return DateTime{}, input, fmt.Errorf("%w: month: %v", ErrMalformedDate, err)
	}
	if rest, err = dateSeparator(rest); err != nil {
		return DateTime{}, input, err
	}
	day, rest, err := fixedInteger(rest, 2)
	if err != nil {
		return DateTime{}, input, fmt.Errorf("%w: day: %v", ErrMalformedDate, err)
	}

	dt := DateTime{Year: year, Month: uint8(month), Day: uint8(day)}
	if len(rest) > 0 && (rest[0] == 't' || rest[0] == 'T') {
		if t, after, err := ParseTime(rest[1:]); err == nil {
			dt.Time = &t
			rest = after
		}
	}
	return dt, rest, nil
}

func dateSeparator(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return input, fmt.Errorf("%w: missing separator", ErrMalformedDate)
	}
	if input[0] != '-' && input[0] != '/' {
		return input, fmt.Errorf("%w: unexpected separator %q", ErrMalformedDate, input[0])
	}
	return input[1:], nil
}

// ParseCheckbox reads [], [ ], [x] or [X]. Only x and X mean checked.
func ParseCheckbox(input []byte) (bool, []byte, error) {
	if len(input) < 2 || input[0] != '[' {
		return false, input, ErrMalformedCheckbox
	}
	if input[1] == ']' {
		return false, input[2:], nil
	}
	if len(input) < 3 || input[2] != ']' {
		return false, input, ErrMalformedCheckbox
	}
	switch input[1] {
	case ' ':
		return false, input[3:], nil
	case 'x', 'X':
		return true, input[3:], nil
	default:
		return false, input, ErrMalformedCheckbox
	}
}
