package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fsh/internal/fs"
	"github.com/vvka-141/fsh/internal/logging"
	"github.com/vvka-141/fsh/internal/tui/components"
)

// recordingLauncher captures editor launches instead of spawning processes.
type recordingLauncher struct {
	opened []string
	err    error
}

func (l *recordingLauncher) Open(path string) error {
	if l.err != nil {
		return l.err
	}
	l.opened = append(l.opened, path)
	return nil
}

func newTestShell(t *testing.T, input string) (*Shell, *fs.MemoryFilesystem, *recordingLauncher, *bytes.Buffer) {
	t.Helper()
	mfs := fs.NewMemoryFilesystem()
	launcher := &recordingLauncher{}
	out := &bytes.Buffer{}
	sh := New(Options{
		Filesystem: mfs,
		Logger:     logging.NewNullLogger(),
		Launcher:   launcher,
		Input:      strings.NewReader(input),
		Output:     out,
		NoColor:    true,
	})
	return sh, mfs, launcher, out
}

func TestShell_Scenario_MkdirCdPwd(t *testing.T) {
	sh, _, _, out := newTestShell(t, "mkdir foo\ncd foo\npwd\nexit\n")

	require.NoError(t, sh.Run(context.Background()))
	require.Contains(t, out.String(), "/foo\n")
}

func TestShell_Scenario_TouchThenList(t *testing.T) {
	sh, _, _, out := newTestShell(t, "touch a.txt\nls\nexit\n")

	require.NoError(t, sh.Run(context.Background()))

	output := out.String()
	require.Contains(t, output, "FILE")
	require.Contains(t, output, "a.txt")
	require.Contains(t, output, "0 bytes")
}

func TestShell_List_EmptyDirectory(t *testing.T) {
	sh, _, _, out := newTestShell(t, "")

	require.False(t, sh.Execute("ls"))
	require.Contains(t, out.String(), "(empty)")
}

func TestShell_List_DirAlias(t *testing.T) {
	sh, mfs, _, out := newTestShell(t, "")
	mfs.AddDir("/docs")

	require.False(t, sh.Execute("dir"))

	output := out.String()
	require.Contains(t, output, "DIR")
	require.Contains(t, output, "docs")
	require.Contains(t, output, "<DIR>")
}

func TestShell_UnknownCommand_KeepsLoopAlive(t *testing.T) {
	sh, _, _, out := newTestShell(t, "frobnicate\npwd\nexit\n")

	require.NoError(t, sh.Run(context.Background()))

	output := out.String()
	require.Contains(t, output, "unknown command: frobnicate")
	require.Contains(t, output, "/\n", "loop should keep running after an unknown command")
}

func TestShell_CommandCaseInsensitive(t *testing.T) {
	sh, mfs, _, _ := newTestShell(t, "")

	require.False(t, sh.Execute("MKDIR Foo"))
	require.True(t, mfs.Exists("/Foo"), "command token is case-insensitive, arguments are not")
}

func TestShell_Cd_MissingArgUsage(t *testing.T) {
	// Not interactive: a bare cd prints usage instead of opening a picker.
	sh, _, _, out := newTestShell(t, "")

	require.False(t, sh.Execute("cd"))
	require.Contains(t, out.String(), "usage: cd <path>")
}

func TestShell_Cd_NotFoundSuggests(t *testing.T) {
	sh, mfs, _, out := newTestShell(t, "")
	mfs.AddDir("/docs")
	mfs.AddFile("/doctrine.txt", "x")

	require.False(t, sh.Execute("cd doc"))

	output := out.String()
	require.Contains(t, output, "did you mean: docs?")
	require.NotContains(t, output, "doctrine", "cd suggestions are directories only")
	require.Equal(t, "/", mfs.CurrentDirectory())
}

func TestShell_BareCd_InteractivePicker(t *testing.T) {
	sh, mfs, _, _ := newTestShell(t, "")
	mfs.AddDir("/projects")
	sh.interactive = true
	sh.pickDir = func(title string, dirs []components.DirEntry) (string, error) {
		require.Len(t, dirs, 1)
		require.Equal(t, "projects", dirs[0].Name)
		return "projects", nil
	}

	require.False(t, sh.Execute("cd"))
	require.Equal(t, "/projects", mfs.CurrentDirectory())
}

func TestShell_Delete_NonexistentPathReported(t *testing.T) {
	sh, _, _, out := newTestShell(t, "")

	require.False(t, sh.Execute("rm ghost"))
	require.Contains(t, out.String(), "no such file or directory")
}

func TestShell_Delete_Tree(t *testing.T) {
	sh, mfs, _, _ := newTestShell(t, "")
	mfs.AddFile("/tree/sub/f.txt", "x")

	require.False(t, sh.Execute("del tree"))
	require.False(t, mfs.Exists("/tree"))
}

func TestShell_Copy_ForceFlag(t *testing.T) {
	sh, mfs, _, out := newTestShell(t, "")
	mfs.AddFile("/src.txt", "source")
	mfs.AddFile("/dst.txt", "destination")

	require.False(t, sh.Execute("cp src.txt dst.txt"))
	require.Contains(t, out.String(), "use -f to overwrite")

	require.False(t, sh.Execute("cp src.txt dst.txt -f"))
	content, err := mfs.ReadFile("/dst.txt")
	require.NoError(t, err)
	require.Equal(t, "source", string(content))
}

func TestShell_Move_OverwritesWithoutFlag(t *testing.T) {
	sh, mfs, _, _ := newTestShell(t, "")
	mfs.AddFile("/src.txt", "source")
	mfs.AddFile("/dst.txt", "destination")

	require.False(t, sh.Execute("mv src.txt dst.txt"))

	content, err := mfs.ReadFile("/dst.txt")
	require.NoError(t, err)
	require.Equal(t, "source", string(content))
	require.False(t, mfs.Exists("/src.txt"))
}

func TestShell_Edit_LaunchesEditor(t *testing.T) {
	sh, mfs, launcher, _ := newTestShell(t, "")
	mfs.AddFile("/notes.txt", "hello")

	require.False(t, sh.Execute("edit notes.txt"))
	require.Equal(t, []string{"/notes.txt"}, launcher.opened)
}

func TestShell_Edit_ArgCount(t *testing.T) {
	sh, _, launcher, out := newTestShell(t, "")

	require.False(t, sh.Execute("edit"))
	require.False(t, sh.Execute("edit a.txt b.txt"))
	require.Contains(t, out.String(), "usage: edit <name>")
	require.Empty(t, launcher.opened)
}

func TestShell_Edit_DirectoryRefused(t *testing.T) {
	sh, mfs, launcher, out := newTestShell(t, "")
	mfs.AddDir("/docs")

	require.False(t, sh.Execute("edit docs"))
	require.Contains(t, out.String(), "is a directory")
	require.Empty(t, launcher.opened)
}

func TestShell_Exit(t *testing.T) {
	sh, _, _, _ := newTestShell(t, "")
	require.True(t, sh.Execute("exit"))
}

func TestShell_EmptyLineIgnored(t *testing.T) {
	sh, _, _, out := newTestShell(t, "")
	require.False(t, sh.Execute("   "))
	require.Empty(t, out.String())
}

func TestShell_Help(t *testing.T) {
	sh, _, _, out := newTestShell(t, "")

	require.False(t, sh.Execute("help"))
	for _, cmd := range []string{"ls", "cd", "pwd", "mkdir", "touch", "del", "cp", "mv", "edit", "clear", "exit"} {
		require.Contains(t, out.String(), cmd)
	}
}

func TestShell_EndOfInputEndsSession(t *testing.T) {
	sh, _, _, _ := newTestShell(t, "pwd\n")
	require.NoError(t, sh.Run(context.Background()))
}
