package ui

import (
	"fmt"
	"strings"

	"github.com/faizmokh/dashdo/internal/outline"
)

// entryInput is one line typed into the add/edit prompt:
//
//	Call the dairy @2024-05-06T09:30 !todo
//
// "@" introduces a date stamp and "!todo", "!done" or "!none" sets the
// checkbox. Every other word belongs to the title.
type entryInput struct {
	title    string
	date     *outline.DateTime
	todo     *bool
	todoSeen bool
}

func parseInputLine(input string) (entryInput, error) {
	var (
		parsed entryInput
		words  []string
	)
	for _, field := range strings.Fields(input) {
		switch {
		case len(field) > 1 && field[0] == '@':
			dt, rest, err := outline.ParseDateTime([]byte(field[1:]))
			if err != nil || len(rest) > 0 {
				return entryInput{}, fmt.Errorf("invalid date %q (expected @YYYY-MM-DD or @YYYY-MM-DDTHH:MM)", field[1:])
			}
			parsed.date = &dt
		case len(field) > 1 && field[0] == '!':
			switch strings.ToLower(field[1:]) {
			case "todo":
				parsed.todo = outline.Bool(false)
			case "done":
				parsed.todo = outline.Bool(true)
			case "none":
				parsed.todo = nil
			default:
				return entryInput{}, fmt.Errorf("invalid status %q (expected !todo, !done or !none)", field)
			}
			parsed.todoSeen = true
		default:
			words = append(words, field)
		}
	}
	parsed.title = strings.Join(words, " ")
	return parsed, nil
}

// entryToInput renders the editable fields of entry in the prompt syntax.
func entryToInput(entry outline.Entry) string {
	parts := []string{entry.Title}
	if entry.DateTime != nil {
		parts = append(parts, "@"+outline.FormatDateTime(*entry.DateTime))
	}
	switch {
	case entry.Todo == nil:
	case *entry.Todo:
		parts = append(parts, "!done")
	default:
		parts = append(parts, "!todo")
	}
	return strings.Join(parts, " ")
}
