// Package drive fetches Google Drive files as RawFile values for the parser.
// Workspace documents are exported to a parseable format; other files are
// downloaded as stored.
package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/api/drive/v3"

	"github.com/custodia-labs/sercha-docparse/internal/connectors/google"
	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-docparse/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.FileFetcher = (*Fetcher)(nil)

// metadataFields is the partial response requested from files.get.
const metadataFields = "id, name, mimeType, size"

// Fetcher retrieves Drive files by ID.
type Fetcher struct {
	svc     *drive.Service
	limiter *google.RateLimiter
	maxSize int64
}

// New creates a Drive fetcher.
// A nil limiter uses google.DefaultDriveRateLimit; maxSize <= 0 means
// domain.DefaultMaxFileSize.
func New(svc *drive.Service, limiter *google.RateLimiter, maxSize int64) *Fetcher {
	if limiter == nil {
		limiter = google.NewRateLimiter(google.DefaultDriveRateLimit)
	}
	if maxSize <= 0 {
		maxSize = domain.DefaultMaxFileSize
	}
	return &Fetcher{svc: svc, limiter: limiter, maxSize: maxSize}
}

// Name returns the fetcher identifier.
func (f *Fetcher) Name() string {
	return "google_drive"
}

// Fetch downloads or exports the file with the given Drive ID.
// The RawFile's SourceID is the Drive ID and its MIME type is the export
// format when the file was converted.
func (f *Fetcher) Fetch(ctx context.Context, fileID string) (domain.RawFile, error) {
	fileID = strings.TrimSpace(fileID)
	if fileID == "" {
		return domain.RawFile{}, fmt.Errorf("%w: file id is required", domain.ErrInvalidInput)
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return domain.RawFile{}, err
	}
	meta, err := f.svc.Files.Get(fileID).
		Fields(metadataFields).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return domain.RawFile{}, f.wrap("get metadata", err)
	}

	if meta.MimeType == MimeTypeFolder {
		return domain.RawFile{}, fmt.Errorf("%w: %s is a folder", domain.ErrUnsupportedType, meta.Name)
	}

	raw := domain.RawFile{
		SourceID: fileID,
		FileName: meta.Name,
		MIMEType: meta.MimeType,
	}

	if exportMime, ok := ExportFormat(meta.MimeType); ok {
		raw.MIMEType = exportMime
		raw.Content, err = f.export(ctx, fileID, exportMime)
	} else {
		if meta.Size > f.maxSize {
			return domain.RawFile{}, fmt.Errorf("%w: %s is %d bytes (limit %d)",
				domain.ErrFileTooLarge, meta.Name, meta.Size, f.maxSize)
		}
		raw.Content, err = f.download(ctx, fileID)
	}
	if err != nil {
		return domain.RawFile{}, err
	}

	logger.Info("Drive '%s': fetched %d bytes as %s", raw.FileName, raw.Size(), raw.MIMEType)
	return raw, nil
}

func (f *Fetcher) export(ctx context.Context, fileID, exportMime string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := f.svc.Files.Export(fileID, exportMime).Context(ctx).Download()
	if err != nil {
		return nil, f.wrap("export file", err)
	}
	defer resp.Body.Close()
	return f.readLimited(resp.Body)
}

func (f *Fetcher) download(ctx context.Context, fileID string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := f.svc.Files.Get(fileID).SupportsAllDrives(true).Context(ctx).Download()
	if err != nil {
		return nil, f.wrap("download file", err)
	}
	defer resp.Body.Close()
	return f.readLimited(resp.Body)
}

// readLimited reads at most maxSize bytes and fails if more remain.
func (f *Fetcher) readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read file content: %w", err)
	}
	if int64(len(data)) > f.maxSize {
		return nil, fmt.Errorf("%w: content exceeds %d bytes", domain.ErrFileTooLarge, f.maxSize)
	}
	return data, nil
}

func (f *Fetcher) wrap(op string, err error) error {
	err = google.WrapError(err)
	if errors.Is(err, google.ErrRateLimited) {
		f.limiter.RecordRateLimitError(0)
	}
	return fmt.Errorf("%s: %w", op, err)
}
