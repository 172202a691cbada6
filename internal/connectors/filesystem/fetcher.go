// Package filesystem fetches local files as RawFile values.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-docparse/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.FileFetcher = (*Fetcher)(nil)

// Fetcher reads files from the local filesystem.
type Fetcher struct {
	maxSize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxSize sets the largest file, in bytes, the fetcher will read.
// Non-positive values keep the default.
func WithMaxSize(n int64) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxSize = n
		}
	}
}

// New creates a filesystem fetcher.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{maxSize: domain.DefaultMaxFileSize}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the fetcher identifier.
func (f *Fetcher) Name() string {
	return "filesystem"
}

// MaxSize returns the configured size limit in bytes.
func (f *Fetcher) MaxSize() int64 {
	return f.maxSize
}

// Fetch reads the file at path.
// The SourceID is the absolute path and the MIME type comes from the
// extension table, or from content sniffing when the extension is unknown.
func (f *Fetcher) Fetch(ctx context.Context, path string) (domain.RawFile, error) {
	if err := ctx.Err(); err != nil {
		return domain.RawFile{}, err
	}
	if path == "" {
		return domain.RawFile{}, fmt.Errorf("%w: path is required", domain.ErrInvalidInput)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.RawFile{}, fmt.Errorf("resolve path: %w", err)
	}

	info, err := os.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.RawFile{}, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}
	if err != nil {
		return domain.RawFile{}, fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return domain.RawFile{}, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}
	if info.Size() > f.maxSize {
		return domain.RawFile{}, fmt.Errorf("%w: %s is %d bytes (limit %d)",
			domain.ErrFileTooLarge, path, info.Size(), f.maxSize)
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return domain.RawFile{}, fmt.Errorf("read file: %w", err)
	}

	raw := domain.RawFile{
		SourceID: abs,
		FileName: filepath.Base(abs),
		MIMEType: DetectMIME(abs, content),
		Content:  content,
	}
	logger.Debug("filesystem '%s': read %d bytes as %s", raw.FileName, raw.Size(), raw.MIMEType)
	return raw, nil
}

// DetectMIME returns the MIME type for a file name, sniffing content when
// the extension is not in the system table.
func DetectMIME(name string, content []byte) string {
	if ext := filepath.Ext(name); ext != "" {
		if mt := mime.TypeByExtension(ext); mt != "" {
			return mt
		}
	}
	return mimetype.Detect(content).String()
}
