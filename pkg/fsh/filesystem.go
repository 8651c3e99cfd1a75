package fsh

import "time"

// Item is a single named entry in the filesystem, either a file or a
// directory. Items are short-lived value objects: name, path and creation
// time are snapshots taken at construction, while Size re-queries the
// backing filesystem on every call.
type Item interface {
	// Name returns the final component of the item's path.
	Name() string

	// Path returns the path the item was constructed with. It is never
	// recomputed after construction.
	Path() string

	// CreationTime returns the creation timestamp recorded when the item
	// was constructed. On platforms without a birth time this is the
	// modification time.
	CreationTime() time.Time

	// IsDir reports whether the item is a directory.
	IsDir() bool

	// Size returns the item's size in bytes. For a file this is the byte
	// length of its content. For a directory it is the sum of the sizes of
	// every file nested at any depth beneath it, computed by a full
	// traversal on each call. If any part of that traversal is denied,
	// Size returns SizeUnknown for the whole directory rather than a
	// partial sum. No error is ever surfaced from this accessor.
	Size() int64

	// String returns the item's name.
	String() string
}

// Filesystem is the capability set the shell depends on. It is satisfied by
// an OS-backed implementation and by an in-memory implementation used in
// tests; the dispatcher is injected with one and never touches os.* calls
// directly.
//
// The only state an implementation carries is its working directory: every
// relative path is resolved against it, and it changes only through
// ChangeDirectory.
type Filesystem interface {
	// ListItems returns the immediate children of the directory at path,
	// regular files first, then subdirectories, each group in whatever
	// order the underlying enumeration yields. It fails with ErrNotFound
	// if path does not resolve to a directory.
	ListItems(path string) ([]Item, error)

	// Stat returns an Item describing the file or directory at path,
	// failing with ErrNotFound if nothing exists there.
	Stat(path string) (Item, error)

	// Delete removes the file at path, or the directory at path together
	// with everything beneath it. Callers check existence first; Delete on
	// a missing path surfaces the underlying not-found failure.
	Delete(path string) error

	// Copy copies source to destination. A directory is copied
	// recursively, merging into an existing destination directory instead
	// of failing. A file copy fails with ErrAlreadyExists when destination
	// exists and overwrite is false. Symlink cycles are not detected.
	Copy(source, destination string, overwrite bool) error

	// Move relocates a file or directory, overwriting an existing
	// destination file without requiring a flag. Rename is attempted
	// first; across volumes a copy-and-delete fallback is used.
	Move(source, destination string) error

	// Exists reports whether path resolves to a file or a directory.
	Exists(path string) bool

	// CurrentDirectory returns the working directory all relative paths
	// resolve against.
	CurrentDirectory() string

	// ChangeDirectory sets the working directory. It fails with
	// ErrNotFound if path is not an existing directory, leaving the
	// working directory unchanged.
	ChangeDirectory(path string) error

	// CreateDirectory creates the directory at path along with any missing
	// parents. It is idempotent: an already existing directory is not an
	// error.
	CreateDirectory(path string) error

	// CreateFile creates an empty file at path, truncating any existing
	// content, and releases the handle before returning.
	CreateFile(path string) error
}
