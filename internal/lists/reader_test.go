package lists

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faizmokh/dashdo/internal/files"
)

func newTestManager(t *testing.T) *files.Manager {
	t.Helper()
	mgr, err := files.NewManager(t.TempDir(), files.DefaultExtension)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return mgr
}

func writeList(t *testing.T, mgr *files.Manager, name, content string) string {
	t.Helper()
	path, err := mgr.EnsureListFile(name)
	if err != nil {
		t.Fatalf("EnsureListFile: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestReaderLoadReturnsItems(t *testing.T) {
	mgr := newTestManager(t)
	reader := NewReader(mgr, 8, time.Minute)
	path := writeList(t, mgr, "inbox", "--[x] Ship ;; :2024-01-02:\n----Write notes ;;\nbody\n--broken\n")

	doc, err := reader.Load(context.Background(), "inbox")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Name != "inbox" || doc.Path != path {
		t.Fatalf("doc = %q at %q, want inbox at %q", doc.Name, doc.Path, path)
	}
	items := doc.Items()
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if !items[0].Entry.Checked() {
		t.Fatalf("first entry should be checked")
	}
	if items[1].Depth != 2 || items[1].Entry.Title != "Write notes" {
		t.Fatalf("second item = %+v, want depth 2 'Write notes'", items[1])
	}
	if len(doc.Result.Failures) != 1 {
		t.Fatalf("failures = %d, want 1", len(doc.Result.Failures))
	}
}

func TestReaderLoadMissingReturnsError(t *testing.T) {
	mgr := newTestManager(t)
	reader := NewReader(mgr, 8, time.Minute)

	_, err := reader.Load(context.Background(), "nowhere")
	if !errors.Is(err, files.ErrListNotFound) {
		t.Fatalf("Load error = %v, want ErrListNotFound", err)
	}
}

func TestReaderLoadNoticesExternalChanges(t *testing.T) {
	mgr := newTestManager(t)
	reader := NewReader(mgr, 8, time.Minute)
	path := writeList(t, mgr, "inbox", "--one ;;\n")

	if _, err := reader.Load(context.Background(), "inbox"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := os.WriteFile(path, []byte("--one ;;\n--two ;;\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doc, err := reader.Load(context.Background(), "inbox")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Items()) != 2 {
		t.Fatalf("items = %d, want 2 after external edit", len(doc.Items()))
	}
}

func TestReaderWithoutCache(t *testing.T) {
	mgr := newTestManager(t)
	reader := NewReader(mgr, 0, 0)
	writeList(t, mgr, "inbox", "--one ;;\n")

	for i := 0; i < 2; i++ {
		doc, err := reader.Load(context.Background(), "inbox")
		if err != nil {
			t.Fatalf("Load #%d: %v", i, err)
		}
		if len(doc.Items()) != 1 {
			t.Fatalf("Load #%d items = %d, want 1", i, len(doc.Items()))
		}
	}
	reader.Invalidate("inbox")

	var nilReader *Reader
	nilReader.Invalidate("inbox")
	if _, err := nilReader.Load(context.Background(), "inbox"); err == nil {
		t.Fatalf("expected error from nil reader")
	}
}

func TestReaderLoadAll(t *testing.T) {
	mgr := newTestManager(t)
	reader := NewReader(mgr, 8, time.Minute)
	writeList(t, mgr, "work", "--Review ;;\n")
	writeList(t, mgr, "home", "--Laundry ;;\n--Dishes ;;\n")
	if err := os.WriteFile(filepath.Join(mgr.BasePath(), "notes.txt"), []byte("--ignored ;;\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	docs, err := reader.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("docs = %d, want 2", len(docs))
	}
	if docs[0].Name != "home" || len(docs[0].Items()) != 2 {
		t.Fatalf("docs[0] = %s with %d items, want home with 2", docs[0].Name, len(docs[0].Items()))
	}
	if docs[1].Name != "work" {
		t.Fatalf("docs[1] = %s, want work", docs[1].Name)
	}
}
