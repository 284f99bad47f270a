package outline

import "bytes"

var (
	depthMarker    = []byte("--")
	blockSeparator = []byte("\n--")
)

// countMarkers returns how many back-to-back "--" tokens open input.
func countMarkers(input []byte) int {
	n := 0
	for bytes.HasPrefix(input[n*len(depthMarker):], depthMarker) {
		n++
	}
	return n
}

// Split divides input into blocks. Text ahead of the first depth marker is
// discarded; use SplitDocument to keep it.
func Split(input []byte) []Block {
	_, blocks := SplitDocument(input)
	return blocks
}

// SplitDocument divides input into blocks and also returns, untouched, any
// leading text that precedes the first depth marker. The preamble is nil when
// input opens with a marker.
func SplitDocument(input []byte) ([]byte, []Block) {
	rest := input
	var preamble []byte
	if countMarkers(rest) == 0 {
		idx := bytes.Index(rest, blockSeparator)
		if idx < 0 {
			return rest, nil
		}
		preamble, rest = rest[:idx], rest[idx+1:]
	}

	var blocks []Block
	for len(rest) > 0 {
		depth := countMarkers(rest)
		rest = rest[depth*len(depthMarker):]

		idx := bytes.Index(rest, blockSeparator)
		if idx < 0 {
			blocks = append(blocks, Block{Depth: depth, Raw: rest})
			break
		}
		blocks = append(blocks, Block{Depth: depth, Raw: rest[:idx]})
		rest = rest[idx+1:]
	}
	return preamble, blocks
}

// Join is the inverse of SplitDocument: it writes the preamble followed by
// each block's markers and raw text, newline separated.
func Join(preamble []byte, blocks []Block) []byte {
	var buf bytes.Buffer
	buf.Write(preamble)
	for i, b := range blocks {
		if i > 0 || preamble != nil {
			buf.WriteByte('\n')
		}
		buf.Write(bytes.Repeat(depthMarker, b.Depth))
		buf.Write(b.Raw)
	}
	return buf.Bytes()
}
