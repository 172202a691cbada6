package main

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sercha-docparse/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-docparse/internal/adapters/driving/cli"
	"github.com/custodia-labs/sercha-docparse/internal/connectors/filesystem"
	"github.com/custodia-labs/sercha-docparse/internal/connectors/google"
	"github.com/custodia-labs/sercha-docparse/internal/connectors/google/drive"
	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-docparse/internal/core/services"
	"github.com/custodia-labs/sercha-docparse/internal/extractors"
	"github.com/custodia-labs/sercha-docparse/internal/logger"
	"github.com/custodia-labs/sercha-docparse/internal/postprocessors/chunker"
)

// bootstrap builds the services for one invocation from the config in configDir.
// Invalid stored settings do not stop startup, so `config set` can repair them;
// the fetchers then fall back to the built-in limits.
func bootstrap(configDir string) (cli.Services, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return cli.Services{}, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(store)

	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("using default limits: %v", err)
		defaults := domain.DefaultSettings()
		settings = &defaults
	}

	return cli.Services{
		NewParser: newParser,
		Formats:   services.NewClassifier(),
		Settings:  settingsService,
		Files:     filesystem.New(filesystem.WithMaxSize(settings.Limits.MaxFileSize)),
		NewDrive:  newDriveFactory(*settings),
	}, nil
}

// newParser builds a parser with the built-in extractors and a chunker
// configured from opts.
func newParser(opts cli.ParserOptions) (driving.DocumentParser, error) {
	c, err := chunker.New(
		chunker.WithChunkSize(opts.ChunkSize),
		chunker.WithOverlap(opts.Overlap),
	)
	if err != nil {
		return nil, err
	}
	registry := extractors.NewDefaultRegistry(extractors.Options{StripMarkup: opts.StripMarkup})
	return services.NewParser(registry, c), nil
}

// newDriveFactory returns a factory for Drive fetchers using the rate and
// size limits from settings.
func newDriveFactory(settings domain.Settings) cli.DriveFactory {
	return func(ctx context.Context, accessToken string) (driven.FileFetcher, error) {
		token, err := google.ResolveAccessToken(accessToken)
		if err != nil {
			return nil, fmt.Errorf("no access token (set --access-token or %s): %w", google.AccessTokenEnv, err)
		}

		svc, err := google.NewDriveService(ctx, google.NewTokenSource(token))
		if err != nil {
			return nil, fmt.Errorf("create drive service: %w", err)
		}

		limiter := google.NewRateLimiter(google.RateLimitConfig{
			RequestsPerSecond: float64(settings.Drive.RequestsPerSecond),
			BurstSize:         settings.Drive.Burst,
		})
		return drive.New(svc, limiter, settings.Limits.MaxFileSize), nil
	}
}
