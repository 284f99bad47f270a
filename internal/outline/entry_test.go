package outline

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseEntry(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Entry
	}{
		{
			name: "title only",
			in:   "Nested task ;;",
			want: Entry{Title: "Nested task"},
		},
		{
			name: "checked with stamp",
			in:   "[x] Buy milk ;; :2023-06-01T09:30: \n",
			want: Entry{
				Todo:     Bool(true),
				Title:    "Buy milk",
				DateTime: &DateTime{Year: 2023, Month: 6, Day: 1, Time: &Time{Hours: 9, Minutes: 30}},
			},
		},
		{
			name: "empty box and body",
			in:   "  []Write report;;\n details here\n",
			want: Entry{Todo: Bool(false), Title: "Write report", Body: String("details here")},
		},
		{
			name: "blank inside stamp colons",
			in:   "[ ] Pay rent ;; : 2024/02-29 :\nbank transfer",
			want: Entry{
				Todo:     Bool(false),
				Title:    "Pay rent",
				DateTime: &DateTime{Year: 2024, Month: 2, Day: 29},
				Body:     String("bank transfer"),
			},
		},
		{
			name: "malformed box joins title",
			in:   "[a] Odd ;;",
			want: Entry{Title: "[a] Odd"},
		},
		{
			name: "bad stamp stays in body",
			in:   "Plan ;; :2023-6-01: notes",
			want: Entry{Title: "Plan", Body: String(":2023-6-01: notes")},
		},
		{
			name: "unclosed stamp stays in body",
			in:   "Plan ;; :2023-06-01T10:00 notes",
			want: Entry{Title: "Plan", Body: String(":2023-06-01T10:00 notes")},
		},
		{
			name: "first delimiter wins",
			in:   "a ;; b ;; c",
			want: Entry{Title: "a", Body: String("b ;; c")},
		},
		{
			name: "multi-line body keeps inner layout",
			in:   "Trip ;;\n  pack bags\n  book taxi\n\n",
			want: Entry{Title: "Trip", Body: String("pack bags\n  book taxi")},
		},
		{
			name: "whitespace-only body is absent",
			in:   "Quiet ;; \t \r\n ",
			want: Entry{Title: "Quiet"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseEntry([]byte(tc.in))
			if err != nil {
				t.Fatalf("ParseEntry(%q) error = %v", tc.in, err)
			}
			tc.want.Children = []Entry{}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("ParseEntry(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestParseEntryErrors(t *testing.T) {
	cases := map[string]error{
		"Bad entry without delimiter": ErrMissingTitleDelimiter,
		"[x] still no delimiter ;":    ErrMissingTitleDelimiter,
		"":                            ErrMissingTitleDelimiter,
		"   ;; body":                  ErrEmptyTitle,
		"[x];;":                       ErrEmptyTitle,
		"caf\xe9 ;;":                  ErrInvalidText,
		"title ;; \xff\xfe":           ErrInvalidText,
	}
	for in, want := range cases {
		if _, err := ParseEntry([]byte(in)); !errors.Is(err, want) {
			t.Fatalf("ParseEntry(%q) error = %v, want %v", in, err, want)
		}
	}
}

func TestParseEntryChildrenAlwaysEmpty(t *testing.T) {
	got, err := ParseEntry([]byte("x ;;"))
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}
	if got.Children == nil || len(got.Children) != 0 {
		t.Fatalf("Children = %#v, want empty non-nil", got.Children)
	}
}
