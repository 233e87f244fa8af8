package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/crosscheckhq/crosscheck/internal/cmd/output"
	"github.com/crosscheckhq/crosscheck/pkg/tables"
)

// headersCmd dumps the header row of one or more CSV sheets.
var headersCmd = &cobra.Command{
	Use:   "headers <file.csv>...",
	Short: "Print the header columns of CSV sheets",
	Long: `Print the header row of each given CSV file, one position per line.

Useful for building a column whitelist or a synonym group before running a
comparison.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHeaders,
}

func init() {
	rootCmd.AddCommand(headersCmd)
}

func runHeaders(_ *cobra.Command, args []string) error {
	format, err := output.ParseFormat(globalFlags.Output)
	if err != nil {
		return err
	}
	if format == "" {
		format = output.DetectFormat("")
	}
	formatter := output.NewFormatter(format)

	for _, path := range args {
		t, err := tables.LoadFile(path)
		if err != nil {
			return err
		}

		data := output.Data{
			Headers:         []string{"#", "Sheet", "Column"},
			ColumnAlignment: []output.Align{output.AlignRight, output.AlignLeft, output.AlignLeft},
		}
		for pos, name := range t.Header() {
			data.Rows = append(data.Rows, []string{strconv.Itoa(pos), t.Name, name})
		}

		if err := formatter.Format(os.Stdout, data); err != nil {
			return err
		}
	}
	return nil
}
