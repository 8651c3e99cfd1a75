package fs

import (
	"time"

	"github.com/vvka-141/fsh/pkg/fsh"
)

// sizer computes the current size of the entry at a path. Implementations
// return an error only to signal that the size could not be determined; the
// item accessor converts that into the fsh.SizeUnknown sentinel.
type sizer func(path string) (int64, error)

// itemBase carries the capability set shared by both item variants: name,
// path and creation time are fixed at construction.
type itemBase struct {
	name    string
	path    string
	created time.Time
}

func (b itemBase) Name() string            { return b.name }
func (b itemBase) Path() string            { return b.path }
func (b itemBase) CreationTime() time.Time { return b.created }
func (b itemBase) String() string          { return b.name }

// fileItem is the file variant. Size re-queries the backing filesystem on
// every call rather than caching the construction-time value.
type fileItem struct {
	itemBase
	size sizer
}

func (f fileItem) IsDir() bool { return false }

func (f fileItem) Size() int64 {
	n, err := f.size(f.path)
	if err != nil {
		return fsh.SizeUnknown
	}
	return n
}

// dirItem is the directory variant. Size triggers a full recursive traversal
// on every call; a denied subtree collapses the whole result to the sentinel
// instead of producing a partial sum.
type dirItem struct {
	itemBase
	size sizer
}

func (d dirItem) IsDir() bool { return true }

func (d dirItem) Size() int64 {
	n, err := d.size(d.path)
	if err != nil {
		return fsh.SizeUnknown
	}
	return n
}

// newItem builds the appropriate variant for an entry whose existence has
// already been established by the caller.
func newItem(name, path string, created time.Time, isDir bool, size sizer) fsh.Item {
	base := itemBase{name: name, path: path, created: created}
	if isDir {
		return dirItem{itemBase: base, size: size}
	}
	return fileItem{itemBase: base, size: size}
}
