package fs

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/vvka-141/fsh/pkg/fsh"
)

// memEntry is a single node in the in-memory tree.
type memEntry struct {
	isDir   bool
	content []byte
	created time.Time
	denied  bool
}

// MemoryFilesystem implements fsh.Filesystem over an in-memory tree keyed by
// cleaned slash-separated paths. It exists so dispatcher and CLI tests can
// run without touching the real disk. Not safe for concurrent use, which
// matches the single-threaded shell it stands in for.
type MemoryFilesystem struct {
	entries map[string]*memEntry
	workDir string
	clock   func() time.Time
}

// NewMemoryFilesystem creates an empty in-memory filesystem whose working
// directory is the root "/".
func NewMemoryFilesystem() *MemoryFilesystem {
	m := &MemoryFilesystem{
		entries: make(map[string]*memEntry),
		workDir: "/",
		clock:   time.Now,
	}
	m.entries["/"] = &memEntry{isDir: true, created: m.clock()}
	return m
}

// AddFile places a file with the given content into the tree, creating any
// missing parent directories. Intended for test setup.
func (m *MemoryFilesystem) AddFile(p, content string) {
	target := m.resolve(p)
	m.ensureParents(target)
	m.entries[target] = &memEntry{content: []byte(content), created: m.clock()}
}

// AddDir places an empty directory into the tree, creating any missing
// parents. Intended for test setup.
func (m *MemoryFilesystem) AddDir(p string) {
	target := m.resolve(p)
	m.ensureParents(target)
	m.entries[target] = &memEntry{isDir: true, created: m.clock()}
}

// DenyAccess marks the directory at p as unreadable, making enumeration of
// it fail the way a permission-denied directory does on a real filesystem.
func (m *MemoryFilesystem) DenyAccess(p string) {
	if entry, ok := m.entries[m.resolve(p)]; ok {
		entry.denied = true
	}
}

// ReadFile returns the content of the file at p. Intended for test
// assertions.
func (m *MemoryFilesystem) ReadFile(p string) ([]byte, error) {
	entry, ok := m.entries[m.resolve(p)]
	if !ok || entry.isDir {
		return nil, fmt.Errorf("%s: %w", p, fsh.ErrNotFound)
	}
	return entry.content, nil
}

func (m *MemoryFilesystem) resolve(p string) string {
	p = path.Clean(strings.ReplaceAll(p, "\\", "/"))
	if !path.IsAbs(p) {
		p = path.Join(m.workDir, p)
	}
	return p
}

func (m *MemoryFilesystem) ensureParents(target string) {
	for dir := path.Dir(target); ; dir = path.Dir(dir) {
		if _, ok := m.entries[dir]; !ok {
			m.entries[dir] = &memEntry{isDir: true, created: m.clock()}
		}
		if dir == "/" {
			break
		}
	}
}

// childNames returns the immediate children of dir, sorted for deterministic
// test output.
func (m *MemoryFilesystem) childNames(dir string) []string {
	prefix := dir
	if prefix != "/" {
		prefix += "/"
	}
	seen := make(map[string]bool)
	var names []string
	for p := range m.entries {
		if p == dir || !strings.HasPrefix(p, prefix) {
			continue
		}
		name := strings.SplitN(strings.TrimPrefix(p, prefix), "/", 2)[0]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (m *MemoryFilesystem) CurrentDirectory() string {
	return m.workDir
}

func (m *MemoryFilesystem) ChangeDirectory(p string) error {
	target := m.resolve(p)
	entry, ok := m.entries[target]
	if !ok || !entry.isDir {
		return fmt.Errorf("not a directory: %s: %w", target, fsh.ErrNotFound)
	}
	m.workDir = target
	return nil
}

func (m *MemoryFilesystem) Exists(p string) bool {
	_, ok := m.entries[m.resolve(p)]
	return ok
}

func (m *MemoryFilesystem) Stat(p string) (fsh.Item, error) {
	target := m.resolve(p)
	entry, ok := m.entries[target]
	if !ok {
		return nil, fmt.Errorf("%s: %w", target, fsh.ErrNotFound)
	}
	return m.newMemItem(target, entry), nil
}

func (m *MemoryFilesystem) ListItems(p string) ([]fsh.Item, error) {
	target := m.resolve(p)
	entry, ok := m.entries[target]
	if !ok || !entry.isDir {
		return nil, fmt.Errorf("not a directory: %s: %w", target, fsh.ErrNotFound)
	}
	if entry.denied {
		return nil, fmt.Errorf("failed to read directory %s: %w", target, fsh.ErrPermission)
	}

	var files, dirs []fsh.Item
	for _, name := range m.childNames(target) {
		childPath := path.Join(target, name)
		child := m.entries[childPath]
		item := m.newMemItem(childPath, child)
		if child.isDir {
			dirs = append(dirs, item)
		} else {
			files = append(files, item)
		}
	}
	return append(files, dirs...), nil
}

func (m *MemoryFilesystem) newMemItem(p string, entry *memEntry) fsh.Item {
	size := m.fileSize
	if entry.isDir {
		size = m.treeSize
	}
	return newItem(path.Base(p), p, entry.created, entry.isDir, size)
}

func (m *MemoryFilesystem) fileSize(p string) (int64, error) {
	entry, ok := m.entries[p]
	if !ok {
		return 0, fmt.Errorf("%s: %w", p, fsh.ErrNotFound)
	}
	return int64(len(entry.content)), nil
}

func (m *MemoryFilesystem) treeSize(p string) (int64, error) {
	entry, ok := m.entries[p]
	if !ok {
		return 0, fmt.Errorf("%s: %w", p, fsh.ErrNotFound)
	}
	if entry.denied {
		return 0, fmt.Errorf("failed to read directory %s: %w", p, fsh.ErrPermission)
	}

	var total int64
	for _, name := range m.childNames(p) {
		childPath := path.Join(p, name)
		child := m.entries[childPath]
		if child.isDir {
			n, err := m.treeSize(childPath)
			if err != nil {
				return 0, err
			}
			total += n
			continue
		}
		total += int64(len(child.content))
	}
	return total, nil
}

func (m *MemoryFilesystem) CreateDirectory(p string) error {
	target := m.resolve(p)
	if entry, ok := m.entries[target]; ok {
		if entry.isDir {
			return nil
		}
		return fmt.Errorf("not a directory: %s: %w", target, fsh.ErrAlreadyExists)
	}
	m.ensureParents(target)
	m.entries[target] = &memEntry{isDir: true, created: m.clock()}
	return nil
}

func (m *MemoryFilesystem) CreateFile(p string) error {
	target := m.resolve(p)
	if entry, ok := m.entries[target]; ok && entry.isDir {
		return fmt.Errorf("is a directory: %s: %w", target, fsh.ErrAlreadyExists)
	}
	m.ensureParents(target)
	m.entries[target] = &memEntry{content: nil, created: m.clock()}
	return nil
}

func (m *MemoryFilesystem) Delete(p string) error {
	target := m.resolve(p)
	entry, ok := m.entries[target]
	if !ok {
		return fmt.Errorf("%s: %w", target, fsh.ErrNotFound)
	}
	delete(m.entries, target)
	if entry.isDir {
		prefix := target + "/"
		for p := range m.entries {
			if strings.HasPrefix(p, prefix) {
				delete(m.entries, p)
			}
		}
	}
	return nil
}

func (m *MemoryFilesystem) Copy(source, destination string, overwrite bool) error {
	src := m.resolve(source)
	dst := m.resolve(destination)

	entry, ok := m.entries[src]
	if !ok {
		return fmt.Errorf("%s: %w", src, fsh.ErrNotFound)
	}
	if entry.isDir {
		return m.copyTree(src, dst, overwrite)
	}
	return m.copyFile(src, dst, overwrite)
}

func (m *MemoryFilesystem) copyTree(src, dst string, overwrite bool) error {
	if err := m.CreateDirectory(dst); err != nil {
		return err
	}
	for _, name := range m.childNames(src) {
		srcChild := path.Join(src, name)
		dstChild := path.Join(dst, name)
		if m.entries[srcChild].isDir {
			if err := m.copyTree(srcChild, dstChild, overwrite); err != nil {
				return err
			}
			continue
		}
		if err := m.copyFile(srcChild, dstChild, overwrite); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryFilesystem) copyFile(src, dst string, overwrite bool) error {
	if _, ok := m.entries[dst]; ok && !overwrite {
		return fmt.Errorf("%s: %w", dst, fsh.ErrAlreadyExists)
	}
	m.ensureParents(dst)
	content := append([]byte(nil), m.entries[src].content...)
	m.entries[dst] = &memEntry{content: content, created: m.clock()}
	return nil
}

func (m *MemoryFilesystem) Move(source, destination string) error {
	src := m.resolve(source)
	dst := m.resolve(destination)

	if _, ok := m.entries[src]; !ok {
		return fmt.Errorf("%s: %w", src, fsh.ErrNotFound)
	}
	// Same contract as the OS implementation: an existing destination file
	// is replaced without a flag.
	if entry, ok := m.entries[dst]; ok && !entry.isDir {
		delete(m.entries, dst)
	}
	if err := m.Copy(src, dst, true); err != nil {
		return err
	}
	return m.Delete(src)
}

// Verify MemoryFilesystem implements the Filesystem interface at compile time
var _ fsh.Filesystem = (*MemoryFilesystem)(nil)
