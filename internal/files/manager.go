package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	// DefaultExtension is appended to list names to form file names.
	DefaultExtension = ".todo"
)

var (
	// ErrListNotFound is returned when the named list has no file on disk.
	ErrListNotFound = errors.New("list not found")
	// ErrInvalidName is returned for list names that are empty or contain a path separator.
	ErrInvalidName = errors.New("invalid list name")
)

// Manager centralizes where lists live on disk and how files are named.
type Manager struct {
	basePath  string
	extension string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.dashdo. An empty extension means DefaultExtension.
func NewManager(basePath, extension string) (*Manager, error) {
	basePath, err := ResolveBasePath(basePath)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}
	if extension == "" {
		extension = DefaultExtension
	}

	return &Manager{basePath: abs, extension: extension}, nil
}

// BasePath returns the root directory storing all list files.
func (m *Manager) BasePath() string {
	return m.basePath
}

// ListPath resolves the absolute path to the file backing the named list.
// The file may not exist yet.
func (m *Manager) ListPath(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(m.basePath, name+m.extension), nil
}

// EnsureListFile guarantees the base directory and the list file exist and
// returns the absolute path to the file.
func (m *Manager) EnsureListFile(name string) (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	path, err := m.ListPath(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, filePermissions)
	if err != nil {
		return "", fmt.Errorf("open list file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close list file: %w", err)
	}
	return path, nil
}

// Stat returns file info for the named list, or ErrListNotFound.
func (m *Manager) Stat(name string) (string, os.FileInfo, error) {
	path, err := m.ListPath(name)
	if err != nil {
		return "", nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return path, nil, fmt.Errorf("%w: %s", ErrListNotFound, name)
		}
		return path, nil, err
	}
	return path, info, nil
}

// Read returns the contents of the named list.
func (m *Manager) Read(name string) ([]byte, error) {
	path, _, err := m.Stat(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// Lists returns the names of every stored list, sorted.
func (m *Manager) Lists() ([]string, error) {
	dirEntries, err := os.ReadDir(m.basePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), m.extension) {
			continue
		}
		if name := strings.TrimSuffix(de.Name(), m.extension); name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// WriteAtomic replaces the named list with data via a temp file and rename,
// keeping the existing file mode.
func (m *Manager) WriteAtomic(name string, data []byte) error {
	path, err := m.EnsureListFile(name)
	if err != nil {
		return err
	}

	temp, err := os.CreateTemp(filepath.Dir(path), "dashdo-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err == nil {
		if err := os.Chmod(temp.Name(), info.Mode()); err != nil {
			return err
		}
	}

	return os.Rename(temp.Name(), path)
}
