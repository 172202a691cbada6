package services

import (
	"errors"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
)

// mockExtractor returns canned text, error or panic and records calls.
type mockExtractor struct {
	name    string
	text    string
	err     error
	panicV  any
	echo    bool
	calls   int
	lastRaw domain.RawFile
}

func (m *mockExtractor) Name() string { return m.name }

func (m *mockExtractor) Extract(raw domain.RawFile) (string, error) {
	m.calls++
	m.lastRaw = raw
	if m.panicV != nil {
		panic(m.panicV)
	}
	if m.echo {
		return string(raw.Content), nil
	}
	return m.text, m.err
}

// mockRegistry is a map-backed ExtractorRegistry.
type mockRegistry struct {
	extractors map[domain.FormatKind]driven.Extractor
}

func newMockRegistry() *mockRegistry {
	return &mockRegistry{extractors: make(map[domain.FormatKind]driven.Extractor)}
}

func (r *mockRegistry) Get(kind domain.FormatKind) (driven.Extractor, bool) {
	e, ok := r.extractors[kind]
	return e, ok
}

func (r *mockRegistry) Register(kind domain.FormatKind, e driven.Extractor) {
	r.extractors[kind] = e
}

func (r *mockRegistry) Kinds() []domain.FormatKind {
	var out []domain.FormatKind
	for _, k := range domain.AllFormatKinds() {
		if _, ok := r.extractors[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// panickingChunker simulates a structural fault after extraction.
type panickingChunker struct{}

func (panickingChunker) Name() string { return "panicking" }
func (panickingChunker) Chunk(string) []string { panic("chunker exploded") }
func (panickingChunker) Size() int { return 1 }
func (panickingChunker) Overlap() int { return 0 }

var errCorrupt = errors.New("corrupt container")

// fullRegistry registers one echoing mock per extractor kind.
func fullRegistry() (*mockRegistry, map[domain.FormatKind]*mockExtractor) {
	reg := newMockRegistry()
	mocks := map[domain.FormatKind]*mockExtractor{}
	for _, k := range []domain.FormatKind{
		domain.FormatPDF,
		domain.FormatWord,
		domain.FormatSpreadsheet,
		domain.FormatPresentation,
		domain.FormatPlainText,
	} {
		m := &mockExtractor{name: string(k), echo: true}
		mocks[k] = m
		reg.Register(k, m)
	}
	return reg, mocks
}

// mockConfigStore is an in-memory ConfigStore.
type mockConfigStore struct {
	data   map[string]any
	setErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{data: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.data[key].(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

func (m *mockConfigStore) GetBool(key string) bool {
	b, _ := m.data[key].(bool)
	return b
}

func (m *mockConfigStore) Keys() []string {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return nil }
func (m *mockConfigStore) Load() error { return nil }
func (m *mockConfigStore) Path() string { return "/tmp/config.toml" }
