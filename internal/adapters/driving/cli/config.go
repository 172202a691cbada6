package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change settings",
	Long:  `View and change chunking, output and fetcher settings stored in config.toml.`,
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a setting and save it.

Keys:
  chunker.chunk_size          window length in characters
  chunker.overlap             characters shared by adjacent chunks
  output.max_chars            text budget for tool output (0 = no limit)
  limits.max_file_size        largest file fetched, in bytes
  drive.requests_per_second   Google Drive request rate
  drive.burst                 Google Drive burst size`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	st := newOutputStyles(out)
	for _, key := range settingsService.Keys() {
		fmt.Fprintf(out, "%s = %s\n", st.Label(key), settingValue(settings, key))
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetValue(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", args[0], args[1])
	return nil
}

func settingValue(s *domain.Settings, key string) string {
	switch key {
	case services.KeyChunkSize:
		return strconv.Itoa(s.Chunker.ChunkSize)
	case services.KeyChunkOverlap:
		return strconv.Itoa(s.Chunker.Overlap)
	case services.KeyOutputMaxChars:
		return strconv.Itoa(s.Output.MaxChars)
	case services.KeyMaxFileSize:
		return strconv.FormatInt(s.Limits.MaxFileSize, 10)
	case services.KeyDriveRequestsPerS:
		return strconv.Itoa(s.Drive.RequestsPerSecond)
	case services.KeyDriveBurst:
		return strconv.Itoa(s.Drive.Burst)
	default:
		return ""
	}
}
