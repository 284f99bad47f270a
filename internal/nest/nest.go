// Package nest assembles the flat (depth, entry) list produced by the outline
// parser into a tree.
package nest

import "github.com/faizmokh/dashdo/internal/outline"

type node struct {
	depth    int
	entry    outline.Entry
	children []*node
}

// Build nests items by depth. Each item becomes a child of the closest
// preceding item with a smaller depth; items with no such ancestor are roots.
// Depth jumps (1 then 3) attach to the nearest shallower item.
func Build(items []outline.Item) []outline.Entry {
	var (
		roots []*node
		stack []*node
	)
	for _, item := range items {
		n := &node{depth: item.Depth, entry: item.Entry}
		for len(stack) > 0 && stack[len(stack)-1].depth >= item.Depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, n)
		} else {
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, n)
		}
		stack = append(stack, n)
	}
	return materialize(roots)
}

func materialize(nodes []*node) []outline.Entry {
	out := make([]outline.Entry, 0, len(nodes))
	for _, n := range nodes {
		e := n.entry
		e.Children = materialize(n.children)
		out = append(out, e)
	}
	return out
}

// Flatten walks roots depth first and returns items with depths starting at 1.
// Children are cleared on the returned entries.
func Flatten(roots []outline.Entry) []outline.Item {
	var items []outline.Item
	var walk func(entries []outline.Entry, depth int)
	walk = func(entries []outline.Entry, depth int) {
		for _, e := range entries {
			children := e.Children
			e.Children = []outline.Entry{}
			items = append(items, outline.Item{Depth: depth, Entry: e})
			walk(children, depth+1)
		}
	}
	walk(roots, 1)
	return items
}

// Walk calls fn for every entry in pre-order with its zero-based level.
// Returning false stops the walk.
func Walk(roots []outline.Entry, fn func(level int, entry outline.Entry) bool) {
	var walk func(entries []outline.Entry, level int) bool
	walk = func(entries []outline.Entry, level int) bool {
		for _, e := range entries {
			if !fn(level, e) || !walk(e.Children, level+1) {
				return false
			}
		}
		return true
	}
	walk(roots, 0)
}
