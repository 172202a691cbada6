package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [path]",
	Short: "Parse a local file into chunks",
	Long: `Parse a local file and print its text.

The format is chosen from the MIME type (detected from the file name and
content unless --mime is given) and the file extension. Files that match no
known format are read as plain text.

Examples:
  docparse parse report.pdf
  docparse parse export.bin --mime text/csv --name sales.csv
  docparse parse deck.pptx --chunks --chunk-size 1000 --overlap 100
  docparse parse notes.docx --json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var (
	parseMIME     string
	parseName     string
	parseSourceID string
	parseOutput   outputFlags
)

func init() {
	parseCmd.Flags().StringVar(&parseMIME, "mime", "", "Declared MIME type (overrides detection)")
	parseCmd.Flags().StringVar(&parseName, "name", "", "File name used for classification and output")
	parseCmd.Flags().StringVar(&parseSourceID, "source-id", "", "Opaque identifier echoed in the result")
	addOutputFlags(parseCmd, &parseOutput)
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if fileFetcher == nil {
		return errors.New("file fetcher not configured")
	}

	raw, err := fileFetcher.Fetch(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	if parseMIME != "" {
		raw.MIMEType = parseMIME
	}
	if parseName != "" {
		raw.FileName = parseName
	}
	if parseSourceID != "" {
		raw.SourceID = parseSourceID
	}

	return parseAndPrint(cmd, raw, &parseOutput)
}
