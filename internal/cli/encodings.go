package cli

import (
	"fmt"

	"EncodingConverter/internal/charset"

	"github.com/spf13/cobra"
)

var encodingsCmd = &cobra.Command{
	Use:   "encodings",
	Short: "List the supported target encodings",
	Args:  cobra.NoArgs,
	RunE:  runEncodings,
}

var encFilter string

func init() {
	rootCmd.AddCommand(encodingsCmd)
	encodingsCmd.SilenceUsage = true
	encodingsCmd.Flags().StringVarP(&encFilter, "filter", "f", "", "Only list names containing this text (case-insensitive)")
}

func runEncodings(cmd *cobra.Command, args []string) error {
	names := charset.Supported().Filter(encFilter)
	if len(names) == 0 {
		return fmt.Errorf("no encoding matches %q", encFilter)
	}

	rows := make([][]string, 0, len(names))
	for _, n := range names {
		note := ""
		if n == charset.DefaultTarget {
			note = "default"
		}
		rows = append(rows, []string{n, note})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Encoding", ""}, rows, nil))
	return nil
}
