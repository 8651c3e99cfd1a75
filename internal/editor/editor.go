// Package editor launches an external program on a file. The launch is
// fire-and-forget: the spawned program's exit status is never observed and
// its lifetime is not tracked.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Launcher opens a file in an external program. The shell is injected with a
// Launcher so tests can observe launches without spawning processes.
type Launcher interface {
	// Open starts the external program on path and returns as soon as the
	// process has been started.
	Open(path string) error
}

// OSLauncher implements Launcher by spawning a process. When Command is
// empty, the platform's default file association is used.
type OSLauncher struct {
	// Command is the editor command to run, split on whitespace so it can
	// carry arguments ("code --wait" style, though waiting never happens
	// on our side).
	Command string
}

// NewOSLauncher creates a launcher using the given editor command. Resolve
// the command with ResolveCommand before constructing one from user input.
func NewOSLauncher(command string) *OSLauncher {
	return &OSLauncher{Command: command}
}

// ResolveCommand picks the editor command from, in order: the explicit
// value (flag or config file), the FSH_EDITOR, VISUAL and EDITOR
// environment variables, and finally empty, which means the OS default
// association.
func ResolveCommand(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, key := range []string{"FSH_EDITOR", "VISUAL", "EDITOR"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func (l *OSLauncher) Open(path string) error {
	name, args := l.commandLine(path)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	// Reap the child in the background so it never turns into a zombie;
	// the exit status itself is of no interest.
	go func() { _ = cmd.Wait() }()
	return nil
}

func (l *OSLauncher) commandLine(path string) (string, []string) {
	if l.Command != "" {
		parts := strings.Fields(l.Command)
		return parts[0], append(parts[1:], path)
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	default:
		return "xdg-open", []string{path}
	}
}
