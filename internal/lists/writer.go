package lists

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/faizmokh/dashdo/internal/ctxlog"
	"github.com/faizmokh/dashdo/internal/files"
	"github.com/faizmokh/dashdo/internal/outline"
)

// Writer handles append, toggle, edit, and delete operations on list files.
// Blocks that are not targeted, malformed ones included, are written back
// byte for byte.
type Writer struct {
	manager *files.Manager
	reader  *Reader
}

// NewWriter wires the dependencies required to manipulate list files. reader
// may be nil; when set, its cache is invalidated after every write.
func NewWriter(manager *files.Manager, reader *Reader) *Writer {
	return &Writer{manager: manager, reader: reader}
}

// Append adds a new entry at the end of the list, creating the file if needed.
func (w *Writer) Append(ctx context.Context, name string, item outline.Item) error {
	if w == nil || w.manager == nil {
		return fmt.Errorf("writer not initialized with file manager")
	}

	text, err := outline.FormatItem(item)
	if err != nil {
		return err
	}

	data, err := w.manager.Read(name)
	if err != nil && !errors.Is(err, files.ErrListNotFound) {
		return err
	}

	buf := bytes.NewBuffer(data)
	if buf.Len() > 0 && !bytes.HasSuffix(data, []byte("\n")) {
		buf.WriteByte('\n')
	}
	buf.WriteString(text)
	buf.WriteByte('\n')

	if err := w.write(name, buf.Bytes()); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("entry appended",
		zap.String("list", name),
		zap.Int("depth", item.Depth),
		zap.String("title", item.Entry.Title),
	)
	return nil
}

// Insert adds item after the entry at index (1-based) and every block nested
// below it, so an entry at the same depth becomes the next sibling and a
// deeper one becomes the last child. It returns the new entry's index.
func (w *Writer) Insert(ctx context.Context, name string, index int, item outline.Item) (int, error) {
	if w == nil || w.manager == nil {
		return 0, fmt.Errorf("writer not initialized with file manager")
	}
	if item.Depth < 1 {
		return 0, fmt.Errorf("%w: depth %d", outline.ErrUnencodable, item.Depth)
	}
	text, err := outline.Format(item.Entry)
	if err != nil {
		return 0, err
	}

	data, err := w.manager.Read(name)
	if err != nil {
		return 0, err
	}
	preamble, _ := outline.SplitDocument(data)
	result := outline.Analyze(data)
	if index < 1 || index > len(result.Items) {
		return 0, ErrInvalidIndex
	}

	target := result.Origins[index-1]
	at := target + 1
	for at < len(result.Blocks) && result.Blocks[at].Depth > result.Blocks[target].Depth {
		at++
	}

	inserted := outline.Block{Depth: item.Depth, Raw: []byte(text)}
	blocks := make([]outline.Block, 0, len(result.Blocks)+1)
	blocks = append(blocks, result.Blocks[:at]...)
	if at == len(result.Blocks) {
		// The file's trailing newline belongs after the new last block.
		last := blocks[at-1]
		tail := trailingBlank(last.Raw)
		blocks[at-1] = outline.Block{Depth: last.Depth, Raw: last.Raw[:len(last.Raw)-len(tail)]}
		inserted.Raw = append(inserted.Raw, tail...)
	}
	blocks = append(blocks, inserted)
	blocks = append(blocks, result.Blocks[at:]...)

	position := 1
	for _, origin := range result.Origins {
		if origin < at {
			position++
		}
	}

	out := outline.Join(preamble, blocks)
	if bytes.HasSuffix(data, []byte("\n")) && !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	if err := w.write(name, out); err != nil {
		return 0, err
	}
	ctxlog.FromContext(ctx).Info("entry inserted",
		zap.String("list", name),
		zap.Int("after", index),
		zap.Int("index", position),
		zap.Int("depth", item.Depth),
	)
	return position, nil
}

// Toggle flips the checkbox of the entry at index (1-based). Entries without a
// checkbox gain a ticked one.
func (w *Writer) Toggle(ctx context.Context, name string, index int) (outline.Item, error) {
	var updated outline.Item
	err := w.rewrite(name, index, func(item outline.Item) (*outline.Item, error) {
		item.Entry.Todo = outline.Bool(!item.Entry.Checked())
		updated = item
		return &item, nil
	})
	if err != nil {
		return outline.Item{}, err
	}
	ctxlog.FromContext(ctx).Info("entry toggled",
		zap.String("list", name),
		zap.Int("index", index),
		zap.Bool("checked", updated.Entry.Checked()),
	)
	return updated, nil
}

// Edit replaces the entry at index (1-based), keeping its depth.
func (w *Writer) Edit(ctx context.Context, name string, index int, entry outline.Entry) error {
	err := w.rewrite(name, index, func(item outline.Item) (*outline.Item, error) {
		item.Entry = entry
		return &item, nil
	})
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("entry edited", zap.String("list", name), zap.Int("index", index))
	return nil
}

// Delete removes the entry at index (1-based) from the list. Nested entries
// below it are left in place.
func (w *Writer) Delete(ctx context.Context, name string, index int) (outline.Item, error) {
	var deleted outline.Item
	err := w.rewrite(name, index, func(item outline.Item) (*outline.Item, error) {
		deleted = item
		return nil, nil
	})
	if err != nil {
		return outline.Item{}, err
	}
	ctxlog.FromContext(ctx).Info("entry deleted",
		zap.String("list", name),
		zap.Int("index", index),
		zap.String("title", deleted.Entry.Title),
	)
	return deleted, nil
}

// rewrite loads the list, hands the indexed item to fn and writes the file
// back with that one block replaced (or dropped when fn returns nil).
func (w *Writer) rewrite(name string, index int, fn func(outline.Item) (*outline.Item, error)) error {
	if w == nil || w.manager == nil {
		return fmt.Errorf("writer not initialized with file manager")
	}

	data, err := w.manager.Read(name)
	if err != nil {
		return err
	}

	preamble, _ := outline.SplitDocument(data)
	result := outline.Analyze(data)
	if index < 1 || index > len(result.Items) {
		return ErrInvalidIndex
	}

	target := result.Origins[index-1]
	replacement, err := fn(result.Items[index-1])
	if err != nil {
		return err
	}

	blocks := make([]outline.Block, 0, len(result.Blocks))
	for i, b := range result.Blocks {
		if i != target {
			blocks = append(blocks, b)
			continue
		}
		if replacement == nil {
			continue
		}
		text, err := outline.Format(replacement.Entry)
		if err != nil {
			return err
		}
		raw := append([]byte(text), trailingBlank(b.Raw)...)
		blocks = append(blocks, outline.Block{Depth: replacement.Depth, Raw: raw})
	}

	out := outline.Join(preamble, blocks)
	if len(out) > 0 && bytes.HasSuffix(data, []byte("\n")) && !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	return w.write(name, out)
}

func (w *Writer) write(name string, data []byte) error {
	if err := w.manager.WriteAtomic(name, data); err != nil {
		return err
	}
	w.reader.Invalidate(name)
	return nil
}

func trailingBlank(raw []byte) []byte {
	return raw[len(bytes.TrimRight(raw, " \t\r\n")):]
}
