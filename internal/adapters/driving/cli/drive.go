package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var driveCmd = &cobra.Command{
	Use:   "drive [file-id]",
	Short: "Parse a Google Drive file",
	Long: `Download a Google Drive file and print its text.

Google Docs and Slides are exported as plain text, Sheets as CSV and
Drawings as PDF. Other files are downloaded as stored.

The OAuth access token is read from --access-token or, when the flag is
empty, from the GOOGLE_OAUTH_ACCESS_TOKEN environment variable. It needs
the https://www.googleapis.com/auth/drive.readonly scope.`,
	Args: cobra.ExactArgs(1),
	RunE: runDrive,
}

var (
	driveAccessToken string
	driveOutput      outputFlags
)

func init() {
	driveCmd.Flags().StringVar(&driveAccessToken, "access-token", "", "Google OAuth access token")
	addOutputFlags(driveCmd, &driveOutput)
	rootCmd.AddCommand(driveCmd)
}

func runDrive(cmd *cobra.Command, args []string) error {
	if driveFactory == nil {
		return errors.New("google drive not configured")
	}

	fetcher, err := driveFactory(cmd.Context(), driveAccessToken)
	if err != nil {
		return fmt.Errorf("failed to connect to google drive: %w", err)
	}

	raw, err := fetcher.Fetch(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", args[0], err)
	}

	return parseAndPrint(cmd, raw, &driveOutput)
}
