package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/faizmokh/dashdo/internal/nest"
	"github.com/faizmokh/dashdo/internal/outline"
	"github.com/faizmokh/dashdo/internal/style"
)

func writeBody(out io.Writer, body *string, indent string) {
	if body == nil {
		return
	}
	for _, line := range strings.Split(*body, "\n") {
		fmt.Fprintf(out, "%s%s\n", indent, style.Body.Render(line))
	}
}

// printTree prints entries nested by depth, numbered in file order so the
// numbers match the indexes toggle, edit and delete take.
func printTree(out io.Writer, items []outline.Item) {
	index := 0
	nest.Walk(nest.Build(items), func(level int, entry outline.Entry) bool {
		index++
		indent := strings.Repeat("  ", level)
		fmt.Fprintf(out, "%3d. %s%s\n", index, indent, style.Entry(entry))
		writeBody(out, entry.Body, "     "+indent+"  ")
		return true
	})
}

func printFlat(out io.Writer, items []outline.Item) {
	for i, item := range items {
		fmt.Fprintf(out, "%3d. (%d) %s\n", i+1, item.Depth, style.Entry(item.Entry))
		writeBody(out, item.Entry.Body, "         ")
	}
}

func printFailures(out io.Writer, failures []outline.Failure) {
	for _, f := range failures {
		fmt.Fprintln(out, style.Error.Render(f.Err.Error()))
	}
}

func printJSON(out io.Writer, items []outline.Item, flat bool) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if flat {
		if items == nil {
			items = []outline.Item{}
		}
		return enc.Encode(items)
	}
	return enc.Encode(nest.Build(items))
}
