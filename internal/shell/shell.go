// Package shell implements the interactive read-execute-print loop. The
// dispatcher is injected with a Filesystem, a Logger and an editor Launcher,
// so the whole command surface can be exercised in tests against the
// in-memory filesystem without spawning processes or touching the disk.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/fsh/internal/editor"
	"github.com/vvka-141/fsh/internal/tui"
	"github.com/vvka-141/fsh/internal/tui/components"
	"github.com/vvka-141/fsh/pkg/fsh"
)

const maxSuggestions = 3

// Options configures a Shell. Filesystem is required; everything else has a
// usable zero-value default.
type Options struct {
	Filesystem  fsh.Filesystem
	Logger      fsh.Logger
	Launcher    editor.Launcher
	Input       io.Reader
	Output      io.Writer
	Interactive bool
	NoColor     bool
}

// Shell is the command dispatcher: one synchronous loop, one top-level error
// handler. Every command failure is reported and the loop continues; only
// the exit command or exhausted input ends a session.
type Shell struct {
	fs          fsh.Filesystem
	log         fsh.Logger
	launcher    editor.Launcher
	in          *bufio.Scanner
	out         io.Writer
	interactive bool
	color       bool
	dirSuggest  *components.PathSuggester
	anySuggest  *components.PathSuggester

	// pickDir is swapped out in tests to avoid running a real TUI.
	pickDir func(title string, dirs []components.DirEntry) (string, error)
}

// New creates a Shell from the given options.
func New(opts Options) *Shell {
	s := &Shell{
		fs:          opts.Filesystem,
		log:         opts.Logger,
		launcher:    opts.Launcher,
		in:          bufio.NewScanner(opts.Input),
		out:         opts.Output,
		interactive: opts.Interactive,
		color:       !opts.NoColor,
		dirSuggest:  components.NewPathSuggester(opts.Filesystem, true),
		anySuggest:  components.NewPathSuggester(opts.Filesystem, false),
		pickDir:     runDirPicker,
	}
	return s
}

// Run executes the read-execute-print loop until the exit command, end of
// input, or context cancellation.
func (s *Shell) Run(ctx context.Context) error {
	s.printf("%s", s.style(tui.MutedStyle, "fsh — type 'help' for commands\n"))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printf("%s> ", s.style(tui.PromptStyle, s.fs.CurrentDirectory()))
		if !s.in.Scan() {
			s.printf("\n")
			return s.in.Err()
		}

		if s.Execute(s.in.Text()) {
			return nil
		}
	}
}

// Execute runs a single input line and reports whether the session should
// end. It never returns an error: command failures are printed and the loop
// is expected to continue.
func (s *Shell) Execute(line string) (quit bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false
	}

	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]
	s.log.Verbose("dispatching %q with %d arg(s)", cmd, len(args))

	var err error
	switch cmd {
	case "ls", "dir":
		err = s.runList()
	case "cd":
		err = s.runChangeDir(args)
	case "pwd":
		s.printf("%s\n", s.fs.CurrentDirectory())
	case "mkdir":
		err = s.runMakeDir(args)
	case "touch":
		err = s.runTouch(args)
	case "del", "rm":
		err = s.runDelete(args)
	case "cp":
		err = s.runCopy(args)
	case "mv":
		err = s.runMove(args)
	case "edit":
		err = s.runEdit(args)
	case "clear":
		// ANSI clear screen + cursor home.
		s.printf("\x1b[2J\x1b[H")
	case "help":
		s.printHelp()
	case "exit":
		return true
	default:
		s.printf("%s\n", s.style(tui.ErrorStyle, fmt.Sprintf("unknown command: %s (type 'help' for a list)", cmd)))
	}

	if err != nil {
		s.log.Verbose("command %q failed: %v", cmd, err)
		s.printf("%s\n", s.style(tui.ErrorStyle, tui.SymbolCross+" "+err.Error()))
	}
	return false
}

func (s *Shell) runList() error {
	items, err := s.fs.ListItems(s.fs.CurrentDirectory())
	if err != nil {
		return err
	}
	s.renderListing(items)
	return nil
}

func (s *Shell) runChangeDir(args []string) error {
	switch len(args) {
	case 0:
		if !s.interactive {
			return errors.New("usage: cd <path>")
		}
		return s.runPickDir()
	case 1:
		if err := s.fs.ChangeDirectory(args[0]); err != nil {
			s.printSuggestions(s.dirSuggest, args[0])
			return err
		}
		return nil
	default:
		return errors.New("usage: cd <path>")
	}
}

// runPickDir handles a bare `cd` at a terminal: offer the subdirectories of
// the current directory in a picker.
func (s *Shell) runPickDir() error {
	items, err := s.fs.ListItems(s.fs.CurrentDirectory())
	if err != nil {
		return err
	}

	var dirs []components.DirEntry
	for _, item := range items {
		if !item.IsDir() {
			continue
		}
		dirs = append(dirs, components.DirEntry{
			Name:    item.Name(),
			Created: item.CreationTime().Format(fsh.TimeLayout),
		})
	}

	choice, err := s.pickDir("Change directory", dirs)
	if err != nil {
		return err
	}
	if choice == "" {
		return nil
	}
	return s.fs.ChangeDirectory(choice)
}

func (s *Shell) runMakeDir(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: mkdir <name>")
	}
	return s.fs.CreateDirectory(args[0])
}

func (s *Shell) runTouch(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: touch <name>")
	}
	return s.fs.CreateFile(args[0])
}

func (s *Shell) runDelete(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: del <path>")
	}
	// Existence is checked here so Delete keeps its caller-checked
	// precondition.
	if !s.fs.Exists(args[0]) {
		return fmt.Errorf("%s: %w", args[0], fsh.ErrNotFound)
	}
	return s.fs.Delete(args[0])
}

func (s *Shell) runCopy(args []string) error {
	overwrite := false
	paths := args[:0:0]
	for _, arg := range args {
		if arg == "-f" || arg == "--force" {
			overwrite = true
			continue
		}
		paths = append(paths, arg)
	}
	if len(paths) != 2 {
		return errors.New("usage: cp <source> <destination> [-f]")
	}
	if err := s.fs.Copy(paths[0], paths[1], overwrite); err != nil {
		if errors.Is(err, fsh.ErrAlreadyExists) {
			return fmt.Errorf("%w (use -f to overwrite)", err)
		}
		return err
	}
	return nil
}

func (s *Shell) runMove(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: mv <source> <destination>")
	}
	return s.fs.Move(args[0], args[1])
}

func (s *Shell) runEdit(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: edit <name>")
	}
	item, err := s.fs.Stat(args[0])
	if err != nil {
		s.printSuggestions(s.anySuggest, args[0])
		return err
	}
	if item.IsDir() {
		return fmt.Errorf("is a directory: %s", item.Path())
	}
	if err := s.launcher.Open(item.Path()); err != nil {
		return err
	}
	s.printf("%s\n", s.style(tui.SuccessStyle, tui.SymbolCheck+" opened "+item.Name()))
	return nil
}

func (s *Shell) printSuggestions(suggester *components.PathSuggester, input string) {
	matches := suggester.Suggest(input, maxSuggestions)
	if len(matches) == 0 {
		return
	}
	s.printf("%s\n", s.style(tui.MutedStyle, "did you mean: "+strings.Join(matches, ", ")+"?"))
}

func (s *Shell) printHelp() {
	s.printf("%s", helpText)
}

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// style applies a lipgloss style unless color output is disabled.
func (s *Shell) style(style interface{ Render(...string) string }, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}

func runDirPicker(title string, dirs []components.DirEntry) (string, error) {
	program := tea.NewProgram(components.NewDirPicker(title, dirs))
	model, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run directory picker: %w", err)
	}
	picker, ok := model.(components.DirPicker)
	if !ok || picker.Cancelled() {
		return "", nil
	}
	return picker.Choice(), nil
}

const helpText = `Commands:
  ls, dir              list the current directory
  cd <path>            change the current directory (bare cd opens a picker)
  pwd                  print the current directory
  mkdir <name>         create a directory (parents included)
  touch <name>         create or truncate an empty file
  del <path>, rm       delete a file or a whole directory tree
  cp <src> <dst> [-f]  copy a file or directory tree (-f overwrites files)
  mv <src> <dst>       move or rename (replaces an existing file)
  edit <name>          open a file in the external editor
  clear                clear the screen
  help                 show this summary
  exit                 leave the shell
`
