// Package cli wires the cobra command surface: the root command starts the
// interactive shell, and version reports build information.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsh/internal/config"
	"github.com/vvka-141/fsh/internal/editor"
	"github.com/vvka-141/fsh/internal/fs"
	"github.com/vvka-141/fsh/internal/logging"
	"github.com/vvka-141/fsh/internal/shell"
	"github.com/vvka-141/fsh/internal/tui"
)

const asciiLogo = ` __       _
/ _| ___ | |__
| |_ / __|| '_ \
|  _|\__ \| | | |
|_|  |___/|_| |_|`

var rootCmd = &cobra.Command{
	Use:   "fsh",
	Short: "Interactive filesystem shell",
	Long: asciiLogo + `

fsh is an interactive shell for browsing and manipulating the local
filesystem: list directories, move around, create and delete files and
directories, copy and move trees, and hand files to your editor.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Start directory not found
  12 - Start directory not accessible`,
	SilenceUsage: true,
	RunE:         runShell,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringP("dir", "d", "", "Directory to start the shell in")
	rootCmd.Flags().String("editor", "", "Editor command used by the edit command")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable styled output")
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	verbose := getBoolFlag(cmd, "verbose") || cfg.Verbose
	noColor := getBoolFlag(cmd, "no-color") || cfg.NoColor

	startDir := cfg.StartDir
	if flagDir, _ := cmd.Flags().GetString("dir"); flagDir != "" {
		startDir = flagDir
	}

	editorCmd, _ := cmd.Flags().GetString("editor")
	if editorCmd == "" {
		editorCmd = cfg.Editor
	}

	logger := logging.NewConsoleLogger(verbose)

	var filesystem *fs.OSFilesystem
	var err error
	if startDir != "" {
		filesystem, err = fs.NewOSFilesystemAt(startDir)
	} else {
		filesystem, err = fs.NewOSFilesystem()
	}
	if err != nil {
		return err
	}

	logger.Verbose("starting in %s", filesystem.CurrentDirectory())

	sh := shell.New(shell.Options{
		Filesystem:  filesystem,
		Logger:      logger,
		Launcher:    editor.NewOSLauncher(editor.ResolveCommand(editorCmd)),
		Input:       os.Stdin,
		Output:      os.Stdout,
		Interactive: tui.IsInteractive(),
		NoColor:     noColor,
	})
	return sh.Run(cmd.Context())
}

// loadConfig merges fsh.yaml and FSH_* environment variables from the
// user's home directory. A missing or unreadable home is treated the same
// as an absent config.
func loadConfig() *config.Config {
	cfg := &config.Config{}

	home, err := os.UserHomeDir()
	if err == nil {
		if err := config.LoadEnvFile(home); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", config.EnvFileName, err)
		}
		loaded, err := config.Load(home)
		switch {
		case err == nil:
			cfg = loaded
		case !errors.Is(err, config.ErrConfigNotFound):
			fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", config.ConfigFileName, err)
		}
	}

	config.ApplyEnv(cfg)
	return cfg
}

// getBoolFlag safely retrieves a boolean flag value
func getBoolFlag(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get %s flag: %v\n", name, err)
		return false
	}
	return value
}
