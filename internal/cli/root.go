package cli

import (
	"fmt"
	"os"

	"EncodingConverter/internal/log"

	"github.com/spf13/cobra"
)

// Version is set by main.go
var Version = "dev"

// Global flags
var (
	flagDebug   bool
	flagLogFile string

	closeLog func() error
)

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "encconv",
	Short: "Convert text files between character encodings",
	Long: `encconv rewrites text files from their detected character encoding into a
chosen target encoding. It can process a single file or walk a folder
recursively, filtering file names with a glob mask, and can keep a
<name>_backup copy of every original.

Run without arguments to open the graphical interface.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagLogFile != "" {
			level := log.LevelInfo
			if flagDebug {
				level = log.LevelDebug
			}
			closeFn, err := log.EnableFileLogging(flagLogFile, level)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			closeLog = closeFn
		} else if flagDebug {
			log.EnableDebugLogging()
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLogFile()
	},
}

// closeLogFile closes the --log-file opened for this invocation, if any.
func closeLogFile() error {
	if closeLog == nil {
		return nil
	}
	err := closeLog()
	closeLog = nil
	return err
}

// subcommands that select CLI mode
var cliArgs = map[string]bool{
	"convert":   true,
	"encodings": true,
	"help":      true,
	"--help":    true,
	"-h":        true,
	"version":   true,
	"--version": true,
	"-v":        true,
}

// IsCLIInvocation reports whether args (without the program name) select
// CLI mode rather than the GUI.
func IsCLIInvocation(args []string) bool {
	return len(args) > 0 && cliArgs[args[0]]
}

// Execute runs the CLI application.
// Returns true if CLI mode was activated, false if GUI should run instead.
func Execute(version string) bool {
	Version = version
	rootCmd.Version = version

	if !IsCLIInvocation(os.Args[1:]) {
		return false
	}

	if err := execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	return true
}

// execute runs the command tree with args. Cobra skips the post-run hooks
// when a command fails, so the log file is closed here as well.
func execute(args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if cerr := closeLogFile(); err == nil {
		err = cerr
	}
	return err
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("encconv {{.Version}}\n")

	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug details (to stderr, or to --log-file)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append structured logs to this file")
}
