package outline

// Time is an HH:MM stamp exactly as written; values are not range checked.
type Time struct {
	Hours   uint8 `json:"hours"`
	Minutes uint8 `json:"minutes"`
}

// DateTime is the date stamp attached to an entry. Time is set only when the
// date was followed by a t/T separator and a complete time.
type DateTime struct {
	Year  uint32 `json:"year"`
	Month uint8  `json:"month"`
	Day   uint8  `json:"day"`
	Time  *Time  `json:"time,omitempty"`
}

// Entry is a single outline item.
type Entry struct {
	// Todo is nil when the entry has no checkbox at all.
	Todo     *bool     `json:"todo,omitempty"`
	Title    string    `json:"title"`
	DateTime *DateTime `json:"datetime,omitempty"`
	Body     *string   `json:"body,omitempty"`
	// Children is never populated by the parser; see package nest.
	Children []Entry `json:"children"`
}

// Checked reports whether the entry carries a ticked checkbox.
func (e Entry) Checked() bool {
	return e.Todo != nil && *e.Todo
}

// Block is a depth-tagged span of raw input, before grammar parsing.
type Block struct {
	Depth int
	Raw   []byte
}

// Item pairs a parsed entry with the depth of the block it came from.
type Item struct {
	Depth int   `json:"depth"`
	Entry Entry `json:"entry"`
}

// Failure records a block the entry grammar rejected.
type Failure struct {
	Block int
	Depth int
	Err   error
}

// Result is the full outcome of Analyze.
type Result struct {
	// Preamble holds trimmed text found before the first depth marker.
	Preamble []byte
	Blocks   []Block
	Items    []Item
	// Origins maps Items[i] to its index in Blocks.
	Origins  []int
	Failures []Failure
}

// Bool returns a pointer to v, handy for building entries.
func Bool(v bool) *bool {
	return &v
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}
