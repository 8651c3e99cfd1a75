package fs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/vvka-141/fsh/pkg/fsh"
)

// OSFilesystem implements fsh.Filesystem on top of real OS calls. Each
// instance holds its own working directory, initialized once at construction
// and mutated only by ChangeDirectory; the process-wide working directory is
// never touched after startup.
type OSFilesystem struct {
	workDir string
}

// NewOSFilesystem creates an OS-backed filesystem rooted at the process
// working directory.
func NewOSFilesystem() (*OSFilesystem, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	return NewOSFilesystemAt(wd)
}

// NewOSFilesystemAt creates an OS-backed filesystem with its working
// directory set to dir, which must be an existing directory.
func NewOSFilesystemAt(dir string) (*OSFilesystem, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", abs, fsh.ClassifyOSError(err))
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s: %w", abs, fsh.ErrNotFound)
	}
	return &OSFilesystem{workDir: abs}, nil
}

// resolve turns a user-supplied path into an absolute one, interpreting
// relative paths against the instance working directory.
func (f *OSFilesystem) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(f.workDir, path)
}

func (f *OSFilesystem) CurrentDirectory() string {
	return f.workDir
}

func (f *OSFilesystem) ChangeDirectory(path string) error {
	target := f.resolve(path)
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to access %s: %w", target, fsh.ClassifyOSError(err))
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s: %w", target, fsh.ErrNotFound)
	}
	f.workDir = target
	return nil
}

func (f *OSFilesystem) Exists(path string) bool {
	_, err := os.Stat(f.resolve(path))
	return err == nil
}

func (f *OSFilesystem) Stat(path string) (fsh.Item, error) {
	target := f.resolve(path)
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", target, fsh.ClassifyOSError(err))
	}
	return f.newOSItem(target, info), nil
}

func (f *OSFilesystem) ListItems(path string) ([]fsh.Item, error) {
	target := f.resolve(path)
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", target, fsh.ClassifyOSError(err))
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s: %w", target, fsh.ErrNotFound)
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", target, fsh.ClassifyOSError(err))
	}

	// Files first, then subdirectories, each group in enumeration order.
	items := make([]fsh.Item, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if item, err := f.entryItem(target, entry); err == nil {
			items = append(items, item)
		}
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if item, err := f.entryItem(target, entry); err == nil {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *OSFilesystem) entryItem(dir string, entry os.DirEntry) (fsh.Item, error) {
	info, err := entry.Info()
	if err != nil {
		return nil, err
	}
	return f.newOSItem(filepath.Join(dir, entry.Name()), info), nil
}

func (f *OSFilesystem) newOSItem(path string, info fs.FileInfo) fsh.Item {
	size := f.fileSize
	if info.IsDir() {
		size = f.treeSize
	}
	return newItem(info.Name(), path, info.ModTime(), info.IsDir(), size)
}

// fileSize re-queries the OS for the current byte length of a file.
func (f *OSFilesystem) fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// treeSize sums the sizes of every file nested under path. Any failure
// inside the walk aborts the whole computation; the caller renders that as
// the size-unknown sentinel rather than a partial sum.
func (f *OSFilesystem) treeSize(path string) (int64, error) {
	var total int64
	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (f *OSFilesystem) CreateDirectory(path string) error {
	target := f.resolve(path)
	if err := os.MkdirAll(target, fsh.DefaultDirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", target, fsh.ClassifyOSError(err))
	}
	return nil
}

func (f *OSFilesystem) CreateFile(path string) error {
	target := f.resolve(path)
	file, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", target, fsh.ClassifyOSError(err))
	}
	return file.Close()
}

func (f *OSFilesystem) Delete(path string) error {
	target := f.resolve(path)
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to access %s: %w", target, fsh.ClassifyOSError(err))
	}
	if info.IsDir() {
		err = os.RemoveAll(target)
	} else {
		err = os.Remove(target)
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", target, fsh.ClassifyOSError(err))
	}
	return nil
}

func (f *OSFilesystem) Copy(source, destination string, overwrite bool) error {
	src := f.resolve(source)
	dst := f.resolve(destination)

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to access %s: %w", src, fsh.ClassifyOSError(err))
	}
	if info.IsDir() {
		return f.copyTree(src, dst, overwrite)
	}
	return f.copyFile(src, dst, info.Mode(), overwrite)
}

// copyTree performs a pre-order, depth-first copy of the directory at src
// into dst, creating dst if absent and merging into it if it already exists.
// Symlink cycles are not detected.
func (f *OSFilesystem) copyTree(src, dst string, overwrite bool) error {
	if err := os.MkdirAll(dst, fsh.DefaultDirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dst, fsh.ClassifyOSError(err))
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", src, fsh.ClassifyOSError(err))
	}

	for _, entry := range entries {
		srcChild := filepath.Join(src, entry.Name())
		dstChild := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := f.copyTree(srcChild, dstChild, overwrite); err != nil {
				return err
			}
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("failed to access %s: %w", srcChild, fsh.ClassifyOSError(err))
		}
		if err := f.copyFile(srcChild, dstChild, info.Mode(), overwrite); err != nil {
			return err
		}
	}
	return nil
}

func (f *OSFilesystem) copyFile(src, dst string, mode fs.FileMode, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("%s: %w", dst, fsh.ErrAlreadyExists)
		}
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, fsh.ClassifyOSError(err))
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, fsh.ClassifyOSError(err))
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}

func (f *OSFilesystem) Move(source, destination string) error {
	src := f.resolve(source)
	dst := f.resolve(destination)

	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("failed to access %s: %w", src, fsh.ClassifyOSError(err))
	}

	// An existing destination file is always replaced, no flag required.
	if info, err := os.Stat(dst); err == nil && !info.IsDir() {
		if err := os.Remove(dst); err != nil {
			return fmt.Errorf("failed to replace %s: %w", dst, fsh.ClassifyOSError(err))
		}
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	// Rename failed, most likely a cross-volume move. Stage a full copy
	// under a unique temporary name next to the destination, swap it into
	// place, then drop the source.
	tmp := dst + ".fsh-" + uuid.NewString()
	if err := f.Copy(src, tmp, true); err != nil {
		os.RemoveAll(tmp)
		return err
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.RemoveAll(tmp)
		return fmt.Errorf("failed to move %s to %s: %w", src, dst, fsh.ClassifyOSError(err))
	}
	if err := os.RemoveAll(src); err != nil {
		return fmt.Errorf("failed to remove %s after move: %w", src, fsh.ClassifyOSError(err))
	}
	return nil
}

// Verify OSFilesystem implements the Filesystem interface at compile time
var _ fsh.Filesystem = (*OSFilesystem)(nil)
