package mcp

import (
	"context"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driving"
)

// mockParser is a mock implementation of driving.DocumentParser.
// It returns the content as a single chunk, or errMsg when set.
type mockParser struct {
	errMsg string
	parsed []domain.RawFile
}

func (m *mockParser) Parse(raw domain.RawFile) domain.ParsedDocument {
	m.parsed = append(m.parsed, raw)
	if m.errMsg != "" {
		return domain.NewParsedDocument(raw, nil, nil, m.errMsg)
	}
	return domain.NewParsedDocument(raw, []string{string(raw.Content)},
		map[string]string{domain.MetaFormat: string(domain.FormatPlainText)}, "")
}

func (m *mockParser) Classify(_, _ string) domain.FormatKind {
	return domain.FormatPlainText
}

// mockFetcher is a mock implementation of driven.FileFetcher.
type mockFetcher struct {
	name  string
	files map[string]domain.RawFile
	err   error
}

func (m *mockFetcher) Name() string {
	if m.name == "" {
		return "mock"
	}
	return m.name
}

func (m *mockFetcher) Fetch(_ context.Context, id string) (domain.RawFile, error) {
	if m.err != nil {
		return domain.RawFile{}, m.err
	}
	raw, ok := m.files[id]
	if !ok {
		return domain.RawFile{}, domain.ErrNotFound
	}
	return raw, nil
}

// mockCatalog is a mock implementation of driving.FormatCatalog.
type mockCatalog struct {
	rules []driving.FormatRule
}

func (m *mockCatalog) Rules() []driving.FormatRule {
	return m.rules
}
