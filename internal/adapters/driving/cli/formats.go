package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported document formats",
	Long: `List the format rules in the order they are tried.

The first rule whose MIME types or extensions match a file wins. Files that
match no rule are read as plain text.`,
	Args: cobra.NoArgs,
	RunE: runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, _ []string) error {
	if formatCatalog == nil {
		return errors.New("format catalog not configured")
	}

	out := cmd.OutOrStdout()
	st := newOutputStyles(out)

	for _, rule := range formatCatalog.Rules() {
		fmt.Fprintf(out, "%s  %s\n", st.Title(string(rule.Kind)), rule.Kind.Description())
		fmt.Fprintf(out, "  %s %s\n", st.Label("MIME types:"), joinOrNone(rule.MIMETypes))
		fmt.Fprintf(out, "  %s %s\n", st.Label("Extensions:"), joinOrNone(rule.Extensions))
	}
	fmt.Fprintf(out, "%s  %s\n", st.Title(string(domain.FormatFallback)), domain.FormatFallback.Description())
	fmt.Fprintln(out, "  "+st.Muted("anything else, read as plain text"))
	return nil
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
