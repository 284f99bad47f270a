// Package lists loads and edits dash-outline list files stored by files.Manager.
package lists

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/faizmokh/dashdo/internal/ctxlog"
	"github.com/faizmokh/dashdo/internal/files"
	"github.com/faizmokh/dashdo/internal/outline"
)

// Document is a parsed list file. Result is shared with the reader's cache and
// must be treated as read-only.
type Document struct {
	Name   string
	Path   string
	Result outline.Result
}

// Items returns the entries that parsed, in file order.
func (d Document) Items() []outline.Item {
	return d.Result.Items
}

type cachedResult struct {
	size    int64
	modTime time.Time
	result  outline.Result
}

// Reader loads lists from disk and keeps recently parsed results in memory.
type Reader struct {
	manager *files.Manager
	cache   *expirable.LRU[string, cachedResult]
}

// NewReader wires a reader using the shared files.Manager. A cacheSize of zero
// or less disables caching.
func NewReader(manager *files.Manager, cacheSize int, ttl time.Duration) *Reader {
	r := &Reader{manager: manager}
	if cacheSize > 0 {
		r.cache = expirable.NewLRU[string, cachedResult](cacheSize, nil, ttl)
	}
	return r
}

// Load returns the parsed document for the named list.
func (r *Reader) Load(ctx context.Context, name string) (Document, error) {
	if r == nil || r.manager == nil {
		return Document{}, errors.New("reader not initialized with file manager")
	}
	logger := ctxlog.FromContext(ctx).With(zap.String("list", name))

	path, info, err := r.manager.Stat(name)
	if err != nil {
		return Document{}, err
	}

	if r.cache != nil {
		if cached, ok := r.cache.Get(path); ok && cached.size == info.Size() && cached.modTime.Equal(info.ModTime()) {
			logger.Debug("list cache hit")
			return Document{Name: name, Path: path, Result: cached.result}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}

	result := outline.Analyze(data)
	for _, f := range result.Failures {
		logger.Debug("skipping malformed block",
			zap.Int("block", f.Block+1),
			zap.Int("depth", f.Depth),
			zap.Error(f.Err),
		)
	}
	logger.Debug("list parsed",
		zap.Int("blocks", len(result.Blocks)),
		zap.Int("items", len(result.Items)),
	)

	if r.cache != nil {
		r.cache.Add(path, cachedResult{size: info.Size(), modTime: info.ModTime(), result: result})
	}
	return Document{Name: name, Path: path, Result: result}, nil
}

// Invalidate drops any cached parse of the named list.
func (r *Reader) Invalidate(name string) {
	if r == nil || r.cache == nil || r.manager == nil {
		return
	}
	if path, err := r.manager.ListPath(name); err == nil {
		r.cache.Remove(path)
	}
}

// LoadAll loads every stored list. Lists that vanish between listing and
// loading are skipped.
func (r *Reader) LoadAll(ctx context.Context) ([]Document, error) {
	if r == nil || r.manager == nil {
		return nil, errors.New("reader not initialized with file manager")
	}
	names, err := r.manager.Lists()
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(names))
	for _, name := range names {
		doc, err := r.Load(ctx, name)
		if err != nil {
			if errors.Is(err, files.ErrListNotFound) {
				continue
			}
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
