// Package cli provides the cobra command tree for the docparse binary.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-docparse/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// ParserOptions tune the parser built for one command invocation.
type ParserOptions struct {
	ChunkSize   int
	Overlap     int
	StripMarkup bool
}

// ParserFactory builds a parser for the given options.
// It returns domain.ErrInvalidChunkConfig for an unusable chunk size or overlap.
type ParserFactory func(opts ParserOptions) (driving.DocumentParser, error)

// DriveFactory builds a Google Drive fetcher from an access token.
// An empty token means the factory should look it up itself.
type DriveFactory func(ctx context.Context, accessToken string) (driven.FileFetcher, error)

// Services bundles the dependencies the commands use.
type Services struct {
	NewParser ParserFactory
	Formats   driving.FormatCatalog
	Settings  driving.SettingsService
	Files     driven.FileFetcher
	NewDrive  DriveFactory
}

// Bootstrap builds Services once flags are parsed.
type Bootstrap func(configDir string) (Services, error)

var (
	parserFactory   ParserFactory
	formatCatalog   driving.FormatCatalog
	settingsService driving.SettingsService
	fileFetcher     driven.FileFetcher
	driveFactory    DriveFactory
	bootstrap       Bootstrap
)

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "docparse",
	Short: "Turn documents into retrieval-ready text chunks",
	Long: `docparse extracts the text of PDF, Word, spreadsheet, presentation and
plain-text files and splits it into overlapping chunks for retrieval.

Files can be read from the local filesystem or from Google Drive, and the
parser can be exposed to AI assistants as an MCP server.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default ~/.docparse)")
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	parserFactory = s.NewParser
	formatCatalog = s.Formats
	settingsService = s.Settings
	fileFetcher = s.Files
	driveFactory = s.NewDrive
}

// SetBootstrap registers the function that builds services after flag parsing.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil {
		return nil
	}

	s, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(s)
	return nil
}

// effectiveSettings returns stored settings, or the defaults when no
// settings service is configured.
func effectiveSettings() (*domain.Settings, error) {
	if settingsService == nil {
		s := domain.DefaultSettings()
		return &s, nil
	}
	return settingsService.Get()
}

var errParserNotConfigured = errors.New("parser not configured")
