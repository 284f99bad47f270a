package outline

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

var titleDelimiter = []byte(";;")

const blank = " \t\r\n"

func skipSpace(input []byte) []byte {
	return bytes.TrimLeft(input, blank)
}

func trimSpace(input []byte) []byte {
	return bytes.Trim(input, blank)
}

// ParseEntry parses the text of one block:
//
//	[x] Title text ;; :2024-01-31T09:30:
//	free-form body
//
// The checkbox, date stamp and body are optional; the ";;" is not.
func ParseEntry(raw []byte) (Entry, error) {
	rest := skipSpace(raw)

	var entry Entry
	if checked, after, err := ParseCheckbox(rest); err == nil {
		entry.Todo = Bool(checked)
		rest = skipSpace(after)
	}

	idx := bytes.Index(rest, titleDelimiter)
	if idx < 0 {
		return Entry{}, ErrMissingTitleDelimiter
	}
	title := trimSpace(rest[:idx])
	if len(title) == 0 {
		return Entry{}, ErrEmptyTitle
	}
	if !utf8.Valid(title) {
		return Entry{}, fmt.Errorf("%w: title", ErrInvalidText)
	}
	entry.Title = string(title)
	rest = skipSpace(rest[idx+len(titleDelimiter):])

	if dt, after, ok := parseStamp(rest); ok {
		entry.DateTime = &dt
		rest = after
	}

	body := trimSpace(rest)
	if len(body) > 0 {
		if !utf8.Valid(body) {
			return Entry{}, fmt.Errorf("%w: body", ErrInvalidText)
		}
		entry.Body = String(string(body))
	}

	entry.Children = []Entry{}
	return entry, nil
}

// parseStamp reads ":<datetime>:" with optional blanks inside the colons. On
// any failure the input is left untouched.
func parseStamp(input []byte) (DateTime, []byte, bool) {
	if len(input) == 0 || input[0] != ':' {
		return DateTime{}, input, false
	}
	dt, rest, err := ParseDateTime(skipSpace(input[1:]))
	if err != nil {
		return DateTime{}, input, false
	}
	rest = skipSpace(rest)
	if len(rest) == 0 || rest[0] != ':' {
		return DateTime{}, input, false
	}
	return dt, rest[1:], true
}
