package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/faizmokh/dashdo/internal/outline"
)

func parseIndex(value string) (int, error) {
	index, err := strconv.Atoi(value)
	if err != nil || index <= 0 {
		return 0, fmt.Errorf("index must be a positive integer")
	}
	return index, nil
}

// parseDateFlag accepts anything the outline date stamp accepts, e.g.
// 2024-03-01, 2024/03/01 or 2024-03-01T09:30.
func parseDateFlag(value string) (*outline.DateTime, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	dt, rest, err := outline.ParseDateTime([]byte(value))
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("parse date: unexpected %q after date", rest)
	}
	return &dt, nil
}

// parseStatusFlag maps todo|done|none to a checkbox state. An empty value
// keeps current.
func parseStatusFlag(value string, current *bool) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return current, nil
	case "todo":
		return outline.Bool(false), nil
	case "done":
		return outline.Bool(true), nil
	case "none":
		return nil, nil
	default:
		return current, fmt.Errorf("invalid status %q (expected todo|done|none)", value)
	}
}

func joinTitle(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func plural(count int, singular, many string) string {
	if count == 1 {
		return singular
	}
	return many
}
