package outline

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// ErrUnencodable is returned when an entry cannot be written out and read back
// unchanged.
var ErrUnencodable = errors.New("entry cannot be encoded")

// Format renders entry in the form ParseEntry accepts. Children are ignored.
func Format(entry Entry) (string, error) {
	if err := checkEncodable(entry); err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.Grow(32 + len(entry.Title))
	if entry.Todo != nil {
		if *entry.Todo {
			builder.WriteString("[x] ")
		} else {
			builder.WriteString("[ ] ")
		}
	}
	builder.WriteString(strings.Trim(entry.Title, blank))
	builder.WriteString(" ;;")
	if dt := entry.DateTime; dt != nil {
		builder.WriteString(" :")
		builder.WriteString(FormatDateTime(*dt))
		builder.WriteByte(':')
	}
	if entry.Body != nil {
		if body := strings.Trim(*entry.Body, blank); body != "" {
			builder.WriteByte('\n')
			builder.WriteString(body)
		}
	}
	return builder.String(), nil
}

// FormatItem renders item as a complete block, depth markers included.
func FormatItem(item Item) (string, error) {
	if item.Depth < 1 {
		return "", fmt.Errorf("%w: depth %d", ErrUnencodable, item.Depth)
	}
	text, err := Format(item.Entry)
	if err != nil {
		return "", err
	}
	return strings.Repeat(string(depthMarker), item.Depth) + text, nil
}

// FormatDateTime renders dt as YYYY-MM-DD with an optional THH:MM suffix.
func FormatDateTime(dt DateTime) string {
	s := fmt.Sprintf("%04d-%02d-%02d", dt.Year, dt.Month, dt.Day)
	if dt.Time != nil {
		s += fmt.Sprintf("T%02d:%02d", dt.Time.Hours, dt.Time.Minutes)
	}
	return s
}

func checkEncodable(entry Entry) error {
	title := []byte(strings.Trim(entry.Title, blank))
	switch {
	case len(title) == 0:
		return fmt.Errorf("%w: %v", ErrUnencodable, ErrEmptyTitle)
	case bytes.Contains(title, titleDelimiter):
		return fmt.Errorf("%w: title contains %q", ErrUnencodable, titleDelimiter)
	case bytes.Contains(title, blockSeparator):
		return fmt.Errorf("%w: title contains a block marker", ErrUnencodable)
	}
	if entry.Todo == nil {
		if _, _, err := ParseCheckbox(title); err == nil {
			return fmt.Errorf("%w: title starts with a checkbox", ErrUnencodable)
		}
		// Written straight after the depth markers, so it would add to them.
		if bytes.HasPrefix(title, depthMarker) {
			return fmt.Errorf("%w: title starts with a depth marker", ErrUnencodable)
		}
	}

	if dt := entry.DateTime; dt != nil {
		if dt.Year > 9999 || dt.Month > 99 || dt.Day > 99 {
			return fmt.Errorf("%w: date out of range", ErrUnencodable)
		}
		if dt.Time != nil && (dt.Time.Hours > 99 || dt.Time.Minutes > 99) {
			return fmt.Errorf("%w: time out of range", ErrUnencodable)
		}
	}

	if entry.Body != nil {
		body := []byte(strings.Trim(*entry.Body, blank))
		if bytes.Contains(body, blockSeparator) || bytes.HasPrefix(body, depthMarker) {
			return fmt.Errorf("%w: body contains a block marker", ErrUnencodable)
		}
		if entry.DateTime == nil {
			if _, _, ok := parseStamp(body); ok {
				return fmt.Errorf("%w: body starts with a date stamp", ErrUnencodable)
			}
		}
	}
	return nil
}
