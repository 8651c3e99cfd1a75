package fs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fsh/pkg/fsh"
)

func TestMemoryFilesystem_ListItems_FilesThenDirectories(t *testing.T) {
	mfs := NewMemoryFilesystem()
	mfs.AddDir("/alpha")
	mfs.AddFile("/zeta.txt", "z")
	mfs.AddFile("/beta.txt", "b")

	items, err := mfs.ListItems("/")
	require.NoError(t, err)
	require.Len(t, items, 3)

	require.Equal(t, "beta.txt", items[0].Name())
	require.Equal(t, "zeta.txt", items[1].Name())
	require.Equal(t, "alpha", items[2].Name())
	require.True(t, items[2].IsDir())
}

func TestMemoryFilesystem_ListItems_EmptyDirectory(t *testing.T) {
	mfs := NewMemoryFilesystem()
	mfs.AddDir("/empty")

	items, err := mfs.ListItems("/empty")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestMemoryFilesystem_ListItems_NotADirectory(t *testing.T) {
	mfs := NewMemoryFilesystem()
	mfs.AddFile("/f.txt", "x")

	_, err := mfs.ListItems("/f.txt")
	require.ErrorIs(t, err, fsh.ErrNotFound)

	_, err = mfs.ListItems("/missing")
	require.ErrorIs(t, err, fsh.ErrNotFound)
}

func TestMemoryFilesystem_DirectorySize(t *testing.T) {
	mfs := NewMemoryFilesystem()
	mfs.AddFile("/tree/a.txt", "0123456789")
	mfs.AddFile("/tree/sub/b.txt", "01234567890123456789")

	item, err := mfs.Stat("/tree")
	require.NoError(t, err)
	require.True(t, item.IsDir())
	require.EqualValues(t, 30, item.Size())
}

func TestMemoryFilesystem_DirectorySize_DeniedSubtreeYieldsSentinel(t *testing.T) {
	mfs := NewMemoryFilesystem()
	mfs.AddFile("/tree/readable.txt", "data")
	mfs.AddFile("/tree/locked/hidden.txt", "secret")
	mfs.DenyAccess("/tree/locked")

	item, err := mfs.Stat("/tree")
	require.NoError(t, err)
	require.Equal(t, fsh.SizeUnknown, item.Size(),
		"a denied subtree must collapse the whole size, not yield a partial sum")
}

func TestMemoryFilesystem_DeniedDirectoryCannotBeListed(t *testing.T) {
	mfs := NewMemoryFilesystem()
	mfs.AddDir("/locked")
	mfs.DenyAccess("/locked")

	_, err := mfs.ListItems("/locked")
	require.ErrorIs(t, err, fsh.ErrPermission)
}

func TestMemoryFilesystem_CreateDirectory_Idempotent(t *testing.T) {
	mfs := NewMemoryFilesystem()

	require.NoError(t, mfs.CreateDirectory("/a/b/c"))
	require.NoError(t, mfs.CreateDirectory("/a/b/c"))
	require.True(t, mfs.Exists("/a/b"))
}

func TestMemoryFilesystem_CreateFile_Truncates(t *testing.T) {
	mfs := NewMemoryFilesystem()
	mfs.AddFile("/f.txt", "existing content")

	require.NoError(t, mfs.CreateFile("/f.txt"))

	item, err := mfs.Stat("/f.txt")
	require.NoError(t, err)
	require.EqualValues(t, 0, item.Size())
}

func TestMemoryFilesystem_Delete_Recursive(t *testing.T) {
	mfs := NewMemoryFilesystem()
	mfs.AddFile("/tree/sub/f.txt", "x")

	require.NoError(t, mfs.Delete("/tree"))
	require.False(t, mfs.Exists("/tree"))
	require.False(t, mfs.Exists("/tree/sub/f.txt"))
}

func TestMemoryFilesystem_Copy_OverwritePolicy(t *testing.T) {
	mfs := NewMemoryFilesystem()
	mfs.AddFile("/src.txt", "source")
	mfs.AddFile("/dst.txt", "destination")

	err := mfs.Copy("/src.txt", "/dst.txt", false)
	require.ErrorIs(t, err, fsh.ErrAlreadyExists)

	require.NoError(t, mfs.Copy("/src.txt", "/dst.txt", true))
	content, err := mfs.ReadFile("/dst.txt")
	require.NoError(t, err)
	require.Equal(t, "source", string(content))
}

func TestMemoryFilesystem_Copy_TreeMerge(t *testing.T) {
	mfs := NewMemoryFilesystem()
	mfs.AddFile("/src/new.txt", "new")
	mfs.AddFile("/src/nested/deep.txt", "deep")
	mfs.AddFile("/dst/old.txt", "old")

	require.NoError(t, mfs.Copy("/src", "/dst", false))
	require.True(t, mfs.Exists("/dst/old.txt"))
	require.True(t, mfs.Exists("/dst/new.txt"))
	require.True(t, mfs.Exists("/dst/nested/deep.txt"))
}

func TestMemoryFilesystem_Copy_IndependentOfSource(t *testing.T) {
	mfs := NewMemoryFilesystem()
	mfs.AddFile("/src/f.txt", "original")

	require.NoError(t, mfs.Copy("/src", "/dst", false))

	// Changing the source afterwards must not affect the copy.
	mfs.AddFile("/src/f.txt", "changed")
	content, err := mfs.ReadFile("/dst/f.txt")
	require.NoError(t, err)
	require.Equal(t, "original", string(content))
}

func TestMemoryFilesystem_Move_ReplacesExistingFile(t *testing.T) {
	mfs := NewMemoryFilesystem()
	mfs.AddFile("/src.txt", "source")
	mfs.AddFile("/dst.txt", "destination")

	require.NoError(t, mfs.Move("/src.txt", "/dst.txt"))
	require.False(t, mfs.Exists("/src.txt"))

	content, err := mfs.ReadFile("/dst.txt")
	require.NoError(t, err)
	require.Equal(t, "source", string(content))
}

func TestMemoryFilesystem_ChangeDirectory_RelativeResolution(t *testing.T) {
	mfs := NewMemoryFilesystem()
	mfs.AddDir("/a/b")

	require.NoError(t, mfs.ChangeDirectory("a"))
	require.Equal(t, "/a", mfs.CurrentDirectory())
	require.NoError(t, mfs.ChangeDirectory("b"))
	require.Equal(t, "/a/b", mfs.CurrentDirectory())
	require.NoError(t, mfs.ChangeDirectory(".."))
	require.Equal(t, "/a", mfs.CurrentDirectory())
}

func TestMemoryFilesystem_ChangeDirectory_NotFoundLeavesStateUnchanged(t *testing.T) {
	mfs := NewMemoryFilesystem()

	err := mfs.ChangeDirectory("/missing")
	require.ErrorIs(t, err, fsh.ErrNotFound)
	require.Equal(t, "/", mfs.CurrentDirectory())
}
