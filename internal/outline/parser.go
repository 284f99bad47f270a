// Package outline parses dash-outline todo lists.
//
// A document is a sequence of blocks. Each block opens with one or more "--"
// markers (the count is the nesting depth) followed by an entry:
//
//	--[x] Buy milk ;; :2023-06-01T09:30:
//	----Call the dairy ;;
//	 ask about oat milk
//
// The parser yields a flat list of (depth, entry) pairs; turning depths into a
// tree is left to package nest.
package outline

// Parse runs the full pipeline over data. Blocks that fail the entry grammar
// are dropped without notice; call Analyze to see them.
func Parse(data []byte) []Item {
	return Analyze(data).Items
}

// Analyze runs the full pipeline over data and reports every block that was
// rejected alongside the entries that parsed.
func Analyze(data []byte) Result {
	preamble, blocks := SplitDocument(data)

	res := Result{Blocks: blocks}
	if p := trimSpace(preamble); len(p) > 0 {
		res.Preamble = p
	}

	for i, b := range blocks {
		entry, err := ParseEntry(b.Raw)
		if err != nil {
			res.Failures = append(res.Failures, Failure{
				Block: i,
				Depth: b.Depth,
				Err:   &BlockError{Index: i, Depth: b.Depth, Err: err},
			})
			continue
		}
		res.Items = append(res.Items, Item{Depth: b.Depth, Entry: entry})
		res.Origins = append(res.Origins, i)
	}
	return res
}
