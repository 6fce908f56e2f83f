package cli

import (
	"fmt"

	"EncodingConverter/internal/app"
	"EncodingConverter/internal/charset"
	"EncodingConverter/internal/errors"
	"EncodingConverter/internal/util"

	"github.com/spf13/cobra"
)

func init() {
	// Silence Cobra's default error/usage printing - we handle it ourselves
	convertCmd.SilenceErrors = true
	convertCmd.SilenceUsage = true
}

var convertCmd = &cobra.Command{
	Use:   "convert PATH",
	Short: "Re-encode a file or a folder tree",
	Long: `Detect the character encoding of each file and rewrite it in the target
encoding. Files whose encoding cannot be detected are left unchanged and
reported as skipped.

The first failure stops the run. Files already converted stay converted.

Examples:
  # Convert one file to the default target (IBM866)
  encconv convert notes.txt

  # Convert every .txt below a folder to windows-1251, keeping backups
  encconv convert ./docs --folder --mask "*.txt" --to windows-1251 --backup

  # Show a per-file report
  encconv convert ./docs -r -m "*.csv" -t UTF-8 --report`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

// Convert flags
var (
	convFolder          bool
	convMask            string
	convTo              string
	convBackup          bool
	convOverwriteBackup bool
	convVerifyBackup    bool
	convLossy           bool
	convReport          bool
	convQuiet           bool
)

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVarP(&convFolder, "folder", "r", false, "Treat PATH as a folder and walk it recursively")
	convertCmd.Flags().StringVarP(&convMask, "mask", "m", "", "File name glob for folder mode (* and ?), case-insensitive")
	convertCmd.Flags().StringVarP(&convTo, "to", "t", charset.DefaultTarget, "Target encoding (see 'encconv encodings')")

	convertCmd.Flags().BoolVarP(&convBackup, "backup", "b", false, "Write <name>_backup next to each file before rewriting it")
	convertCmd.Flags().BoolVar(&convOverwriteBackup, "overwrite-backup", false, "Replace existing backups instead of stopping")
	convertCmd.Flags().BoolVar(&convVerifyBackup, "verify-backup", false, "Re-read each backup and compare BLAKE2b digests")
	convertCmd.Flags().BoolVar(&convLossy, "lossy", false, "Substitute characters the target cannot represent")

	convertCmd.Flags().BoolVar(&convReport, "report", false, "Print a per-file table when done")
	convertCmd.Flags().BoolVarP(&convQuiet, "quiet", "q", false, "Only print errors")
}

func runConvert(cmd *cobra.Command, args []string) error {
	reporter := NewReporter(cmd.ErrOrStderr(), convQuiet)

	if len(args) != 1 || args[0] == "" {
		err := fmt.Errorf("exactly one PATH is required")
		reporter.PrintError("%v", err)
		return err
	}
	if charset.Supported().Canonical(convTo) == "" {
		err := fmt.Errorf("%w: %q (run 'encconv encodings' for the list)", errors.ErrUnsupportedEncoding, convTo)
		reporter.PrintError("%v", err)
		return err
	}
	if convMask != "" && !convFolder {
		reporter.PrintSuccess("Note: --mask only applies with --folder and is ignored")
	}
	if (convOverwriteBackup || convVerifyBackup) && !convBackup {
		reporter.PrintSuccess("Note: --overwrite-backup and --verify-backup need --backup")
	}

	state := app.NewState()
	state.RootPath = args[0]
	state.Folder = convFolder
	state.Mask = convMask
	state.TargetEncoding = convTo
	state.Backup = convBackup
	state.OverwriteBackup = convOverwriteBackup
	state.VerifyBackup = convVerifyBackup
	state.Lossy = convLossy

	req, err := app.BuildRequest(state)
	if err != nil {
		reporter.PrintError("%v", err)
		return err
	}

	res := app.NewRunner(nil, reporter).Run(req)
	reporter.Finish()

	if convReport && len(res.Outcomes) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), renderOutcomes(res))
	}

	if res.Err != nil {
		reporter.PrintError("%v", res.Err)
		return res.Err
	}
	reporter.PrintSuccess("%s (%s)", res.Summary(), util.Timeify(res.Duration))
	return nil
}
