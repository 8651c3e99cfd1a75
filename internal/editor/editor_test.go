package editor

import (
	"os"
	"testing"
)

func TestResolveCommand_ExplicitWins(t *testing.T) {
	t.Setenv("FSH_EDITOR", "nano")
	t.Setenv("EDITOR", "vi")

	if got := ResolveCommand("code"); got != "code" {
		t.Errorf("ResolveCommand(explicit) = %q, want %q", got, "code")
	}
}

func TestResolveCommand_EnvPrecedence(t *testing.T) {
	t.Setenv("FSH_EDITOR", "nano")
	t.Setenv("VISUAL", "gvim")
	t.Setenv("EDITOR", "vi")

	if got := ResolveCommand(""); got != "nano" {
		t.Errorf("ResolveCommand() = %q, want FSH_EDITOR to win", got)
	}
}

func TestResolveCommand_FallsThroughToEditor(t *testing.T) {
	t.Setenv("FSH_EDITOR", "")
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "vi")
	os.Unsetenv("FSH_EDITOR")
	os.Unsetenv("VISUAL")

	if got := ResolveCommand(""); got != "vi" {
		t.Errorf("ResolveCommand() = %q, want %q", got, "vi")
	}
}

func TestResolveCommand_EmptyMeansOSDefault(t *testing.T) {
	for _, key := range []string{"FSH_EDITOR", "VISUAL", "EDITOR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	if got := ResolveCommand(""); got != "" {
		t.Errorf("ResolveCommand() = %q, want empty for OS default", got)
	}
}

func TestCommandLine_SplitsArguments(t *testing.T) {
	l := NewOSLauncher("code --reuse-window")

	name, args := l.commandLine("/tmp/f.txt")
	if name != "code" {
		t.Errorf("command = %q, want %q", name, "code")
	}
	if len(args) != 2 || args[0] != "--reuse-window" || args[1] != "/tmp/f.txt" {
		t.Errorf("args = %v, want [--reuse-window /tmp/f.txt]", args)
	}
}

func TestCommandLine_DefaultAssociation(t *testing.T) {
	l := NewOSLauncher("")

	name, args := l.commandLine("/tmp/f.txt")
	if name == "" {
		t.Fatal("commandLine() returned empty command for OS default")
	}
	if args[len(args)-1] != "/tmp/f.txt" {
		t.Errorf("args = %v, want path as final argument", args)
	}
}
