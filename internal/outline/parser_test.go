package outline

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseEndToEnd(t *testing.T) {
	input := "--[x] Buy milk ;; :2023-06-01T09:30: \n--Write report ;;\n details here"

	got := Parse([]byte(input))
	want := []Item{
		{Depth: 1, Entry: Entry{
			Todo:     Bool(true),
			Title:    "Buy milk",
			DateTime: &DateTime{Year: 2023, Month: 6, Day: 1, Time: &Time{Hours: 9, Minutes: 30}},
			Children: []Entry{},
		}},
		{Depth: 1, Entry: Entry{
			Title:    "Write report",
			Body:     String("details here"),
			Children: []Entry{},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNestedTask(t *testing.T) {
	got := Parse([]byte("----Nested task ;;"))
	want := []Item{{Depth: 2, Entry: Entry{Title: "Nested task", Children: []Entry{}}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDropsMalformedBlocks(t *testing.T) {
	if got := Parse([]byte("--Bad entry without delimiter")); len(got) != 0 {
		t.Fatalf("Parse() = %#v, want empty", got)
	}

	got := Parse([]byte("--ok ;;\n--no delimiter here\n----also ok ;;"))
	if len(got) != 2 || got[0].Entry.Title != "ok" || got[1].Entry.Title != "also ok" || got[1].Depth != 2 {
		t.Fatalf("Parse() = %#v", got)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n\t\n"} {
		if got := Parse([]byte(in)); len(got) != 0 {
			t.Fatalf("Parse(%q) = %#v, want empty", in, got)
		}
	}
}

func TestAnalyzeReportsFailures(t *testing.T) {
	input := "My list\n\n--one ;;\n--two without delimiter\n----;; empty title\n--three ;;"

	res := Analyze([]byte(input))

	if string(res.Preamble) != "My list" {
		t.Fatalf("Preamble = %q, want %q", res.Preamble, "My list")
	}
	if len(res.Blocks) != 4 {
		t.Fatalf("Blocks = %d, want 4", len(res.Blocks))
	}
	if diff := cmp.Diff([]int{0, 3}, res.Origins); diff != "" {
		t.Fatalf("Origins mismatch (-want +got):\n%s", diff)
	}
	if len(res.Items) != 2 || res.Items[1].Entry.Title != "three" {
		t.Fatalf("Items = %#v", res.Items)
	}
	if len(res.Failures) != 2 {
		t.Fatalf("Failures = %d, want 2", len(res.Failures))
	}

	first := res.Failures[0]
	if first.Block != 1 || first.Depth != 1 || !errors.Is(first.Err, ErrMissingTitleDelimiter) {
		t.Fatalf("first failure = %+v", first)
	}
	var blockErr *BlockError
	if !errors.As(first.Err, &blockErr) || blockErr.Index != 1 {
		t.Fatalf("first failure is not a *BlockError: %v", first.Err)
	}
	if got := first.Err.Error(); got != "block 2 (depth 1): missing ';;' title delimiter" {
		t.Fatalf("Error() = %q", got)
	}

	second := res.Failures[1]
	if second.Block != 2 || second.Depth != 2 || !errors.Is(second.Err, ErrEmptyTitle) {
		t.Fatalf("second failure = %+v", second)
	}
}

func TestAnalyzeBlankPreambleIsNil(t *testing.T) {
	res := Analyze([]byte("  \n--a ;;"))
	if res.Preamble != nil {
		t.Fatalf("Preamble = %q, want nil", res.Preamble)
	}
	if len(res.Items) != 1 {
		t.Fatalf("Items = %d, want 1", len(res.Items))
	}
}
