package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crosscheckhq/crosscheck/internal/cmd/output"
	"github.com/crosscheckhq/crosscheck/pkg/logging"
	"github.com/crosscheckhq/crosscheck/pkg/reconcile"
	"github.com/crosscheckhq/crosscheck/pkg/settings"
	"github.com/crosscheckhq/crosscheck/pkg/tables"
)

// defaultResultsFilename is the pattern for the differences report path.
const defaultResultsFilename = "%s_comparison_%s.csv"

// suspiciousFilename is the pattern for the suspicious report path.
const suspiciousFilename = "%s_suspicious_%s.csv"

// suspiciousEchoLimit caps how many suspicious records are echoed to the
// log for immediate review; larger lists only go to the CSV file.
const suspiciousEchoLimit = 50

var (
	originalFile string
	outputPath   string
	printHeaders bool
)

// compareCmd reconciles two derivative sheets against their original.
var compareCmd = &cobra.Command{
	Use:   "compare <a.csv> <b.csv>",
	Short: "Compare two sheets derived from the same original",
	Long: `Compare two CSV sheets row by row and write a differences report.

Both positional arguments are results of independent analyses of the file
passed as --original-file. Row N of the first sheet is always compared to
row N of the second; rows are never matched or reordered. Rows where the
PMCID, PMID and DOI identifiers all disagree are written to a separate
suspicious-rows report instead of being diffed.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&originalFile, "original-file", "",
		"Path to the original CSV file that both sheets are derived from")
	compareCmd.Flags().StringVarP(&outputPath, "output-path", "o", "",
		"Path for the differences report CSV; it will be overwritten "+
			"(default "+fmt.Sprintf(defaultResultsFilename, "FirstSheet.csv", "SecondSheet.csv")+")")
	compareCmd.Flags().BoolVar(&printHeaders, "print-headers", false,
		"Dump the headers of the two sheets and the original after whitelist processing")
	_ = compareCmd.MarkFlagRequired("original-file")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, args []string) error {
	logger := logging.Default()

	a, err := tables.LoadFile(args[0])
	if err != nil {
		return err
	}
	b, err := tables.LoadFile(args[1])
	if err != nil {
		return err
	}
	original, err := tables.LoadFile(originalFile)
	if err != nil {
		return err
	}

	runSettings, err := settings.Load(".", original.Name)
	if err != nil {
		return err
	}

	if runSettings.HasWhitelist() {
		logger.Info().
			Strs("whitelist", runSettings.WhitelistColumns).
			Msg("Whitelist found, deleting all columns not in whitelist")
		if err := a.Whitelist(runSettings.WhitelistColumns, logger); err != nil {
			return err
		}
		if err := b.Whitelist(runSettings.WhitelistColumns, logger); err != nil {
			return err
		}
	} else {
		logger.Info().Msg("No column whitelist found")
	}

	if printHeaders {
		for _, t := range []*tables.Table{a, b, original} {
			logger.Info().
				Str("sheet", t.Name).
				Str("header", `"`+strings.Join(t.Header(), `","`)+`"`).
				Msg("Sheet header")
		}
	}

	keys, err := reconcile.ResolveKeys(a)
	if err != nil {
		return err
	}
	originalKeys, err := reconcile.ResolveKeys(original)
	if err != nil {
		return err
	}

	reconciler := reconcile.New(keys,
		reconcile.WithSynonyms(runSettings.ExpectedHeaderDifferences),
		reconcile.WithLogger(logger),
	)

	result, err := reconciler.Run(a, b)
	if err != nil {
		return err
	}

	reporter := reconcile.NewReporter(a, b, original, originalKeys)

	resultsPath := outputPath
	if resultsPath == "" {
		resultsPath = fmt.Sprintf(defaultResultsFilename, a.Name, b.Name)
	}
	if err := tables.SaveFile(resultsPath, reporter.Differences(result)); err != nil {
		return err
	}
	logger.Info().Str("path", resultsPath).Msg("Saved results")

	if len(result.Suspicious) > 0 {
		if len(result.Suspicious) < suspiciousEchoLimit {
			logger.Info().Msg("These records are suspicious: all identifiers on the same row did not match across the two sheets, so a (potentially) different article was on the same row")
			for _, s := range result.Suspicious {
				logger.Info().
					Int("row", s.Row).
					Str("a_pmcid", s.APMCID).Str("b_pmcid", s.BPMCID).
					Str("a_pmid", s.APMID).Str("b_pmid", s.BPMID).
					Str("a_doi", s.ADOI).Str("b_doi", s.BDOI).
					Str("a_title", s.ATitle).Str("b_title", s.BTitle).
					Msg("Suspicious record")
			}
		}

		suspiciousPath := fmt.Sprintf(suspiciousFilename, a.Name, b.Name)
		if err := tables.SaveFile(suspiciousPath, reporter.Suspicious(result)); err != nil {
			return err
		}
		logger.Info().Str("path", suspiciousPath).Msg("Saved suspicious records")
	}

	logger.Info().Str("sheet", original.Name).Int("rows", original.NumRows()).Msg("Original sheet row count")
	logger.Info().Str("sheet", a.Name).Int("rows", a.NumRows()).Msg("Sheet row count")
	logger.Info().Str("sheet", b.Name).Int("rows", b.NumRows()).Msg("Sheet row count")
	logger.Info().
		Int("suspicious_rows", len(result.Suspicious)).
		Int("processed_rows", result.Processed).
		Msg("Rows processed for differences; suspicious rows were skipped because all their identifiers differed")

	// Render the run summary to stdout when an output format was requested.
	if globalFlags.Output != "" {
		format, err := output.ParseFormat(globalFlags.Output)
		if err != nil {
			return err
		}
		return output.NewFormatter(format).Format(os.Stdout, result.Summary())
	}

	return nil
}
