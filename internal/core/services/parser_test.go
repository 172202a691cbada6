package services

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/logger"
	"github.com/custodia-labs/sercha-docparse/internal/postprocessors/chunker"
)

func newTestParser() (*Parser, map[domain.FormatKind]*mockExtractor) {
	reg, mocks := fullRegistry()
	return NewParser(reg, chunker.Default()), mocks
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})
	return &buf
}

func TestParser_PlainTextPassthrough(t *testing.T) {
	p, _ := newTestParser()

	doc := p.Parse(domain.RawFile{Content: []byte("Hello world"), FileName: "note.txt", MIMEType: "text/plain"})

	assert.Equal(t, []string{"Hello world"}, doc.Chunks())
	assert.Equal(t, "Hello world", doc.FullText())
	assert.False(t, doc.HasError())
	assert.False(t, doc.IsEmpty())
}

func TestParser_EmptyInput(t *testing.T) {
	p, _ := newTestParser()

	doc := p.Parse(domain.RawFile{Content: []byte(""), FileName: "empty.txt", MIMEType: "text/plain"})

	assert.Empty(t, doc.Chunks())
	assert.True(t, doc.IsEmpty())
	assert.Equal(t, "No text could be extracted from 'empty.txt' (type: text/plain).", doc.ErrorMessage())
}

func TestParser_WhitespaceOnly(t *testing.T) {
	p, _ := newTestParser()

	doc := p.Parse(domain.RawFile{Content: []byte(" \n\t "), FileName: "blank.md", MIMEType: "text/markdown"})

	assert.Empty(t, doc.Chunks())
	assert.Equal(t, NoTextMessage("blank.md", "text/markdown"), doc.ErrorMessage())
}

func TestParser_Metadata(t *testing.T) {
	p, _ := newTestParser()

	doc := p.Parse(domain.RawFile{
		SourceID: "drive-1",
		Content:  []byte("héllo"),
		FileName: "note.txt",
		MIMEType: "text/plain",
	})

	meta := doc.Metadata()
	assert.Equal(t, "drive-1", meta[domain.MetaSourceID])
	assert.Equal(t, "note.txt", meta[domain.MetaFileName])
	assert.Equal(t, "text/plain", meta[domain.MetaMIMEType])
	assert.Equal(t, "plain_text", meta[domain.MetaFormat])
	assert.Equal(t, "plain_text", meta[domain.MetaExtractor])
	assert.Equal(t, "3000", meta[domain.MetaChunkSize])
	assert.Equal(t, "200", meta[domain.MetaOverlap])
	assert.Equal(t, "1", meta[domain.MetaChunkCount])
	assert.Equal(t, "5", meta[domain.MetaCharCount])
	assert.NotContains(t, meta, domain.MetaFallback)
	assert.NotContains(t, meta, domain.MetaExtractionFailure)
}

func TestParser_Routing(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		mimeType string
		want     domain.FormatKind
	}{
		{"pdf extension wins over generic mime", "report.pdf", "application/octet-stream", domain.FormatPDF},
		{"word", "a.docx", "", domain.FormatWord},
		{"spreadsheet", "a.csv", "", domain.FormatSpreadsheet},
		{"presentation", "a.pptx", "", domain.FormatPresentation},
		{"google export uses plain text", "Doc", "application/vnd.google-apps.document", domain.FormatPlainText},
		{"fallback uses plain text", "blob", "application/x-unknown", domain.FormatPlainText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, mocks := newTestParser()
			doc := p.Parse(domain.RawFile{Content: []byte("content"), FileName: tt.fileName, MIMEType: tt.mimeType})

			assert.Equal(t, 1, mocks[tt.want].calls)
			for k, m := range mocks {
				if k != tt.want {
					assert.Zero(t, m.calls, "extractor %s should not run", k)
				}
			}
			assert.Equal(t, string(tt.want), doc.Metadata()[domain.MetaExtractor])
		})
	}
}

func TestParser_Fallback(t *testing.T) {
	buf := captureLogs(t)
	p, _ := newTestParser()

	doc := p.Parse(domain.RawFile{Content: []byte("mystery"), FileName: "blob", MIMEType: "application/x-unknown"})

	assert.False(t, doc.HasError())
	assert.Equal(t, []string{"mystery"}, doc.Chunks())
	assert.Equal(t, "fallback", doc.Metadata()[domain.MetaFormat])
	assert.Equal(t, "true", doc.Metadata()[domain.MetaFallback])
	assert.Contains(t, buf.String(), "[WARN] Unknown MIME type 'application/x-unknown' for 'blob'")
	assert.NotContains(t, buf.String(), "[ERROR]")
}

func TestParser_ExtractorFailure(t *testing.T) {
	buf := captureLogs(t)
	p, mocks := newTestParser()
	mocks[domain.FormatPDF].echo = false
	mocks[domain.FormatPDF].err = errCorrupt

	doc := p.Parse(domain.RawFile{Content: []byte("%PDF"), FileName: "bad.pdf", MIMEType: "application/pdf"})

	assert.Empty(t, doc.Chunks())
	assert.Equal(t, "No text could be extracted from 'bad.pdf' (type: application/pdf).", doc.ErrorMessage())
	assert.Equal(t, "corrupt container", doc.Metadata()[domain.MetaExtractionFailure])
	assert.Contains(t, buf.String(), "[ERROR] pdf extractor failed for 'bad.pdf': corrupt container")
}

func TestParser_ExtractorPanic(t *testing.T) {
	captureLogs(t)
	p, mocks := newTestParser()
	mocks[domain.FormatWord].panicV = "index out of range"

	var doc domain.ParsedDocument
	require.NotPanics(t, func() {
		doc = p.Parse(domain.RawFile{Content: []byte("PK"), FileName: "x.docx"})
	})

	assert.Empty(t, doc.Chunks())
	assert.Equal(t, NoTextMessage("x.docx", ""), doc.ErrorMessage())
	assert.Equal(t, "index out of range", doc.Metadata()[domain.MetaExtractionFailure])
}

func TestParser_StructuralFault(t *testing.T) {
	captureLogs(t)
	reg, _ := fullRegistry()
	p := NewParser(reg, panickingChunker{})

	var doc domain.ParsedDocument
	require.NotPanics(t, func() {
		doc = p.Parse(domain.RawFile{Content: []byte("text"), FileName: "a.txt", MIMEType: "text/plain"})
	})

	assert.Empty(t, doc.Chunks())
	assert.Equal(t, "chunker exploded", doc.ErrorMessage())
	assert.Equal(t, "a.txt", doc.FileName())
}

func TestParser_MissingExtractor(t *testing.T) {
	captureLogs(t)
	p := NewParser(newMockRegistry(), chunker.Default())

	doc := p.Parse(domain.RawFile{Content: []byte("text"), FileName: "a.txt", MIMEType: "text/plain"})

	assert.Empty(t, doc.Chunks())
	assert.True(t, doc.HasError())
	assert.Contains(t, doc.ErrorMessage(), "no extractor for format")
	assert.NotContains(t, doc.ErrorMessage(), "No text could be extracted")
}

func TestParser_NotConfigured(t *testing.T) {
	captureLogs(t)
	p := NewParser(nil, nil)

	doc := p.Parse(domain.RawFile{Content: []byte("text"), FileName: "a.txt", MIMEType: "text/plain"})
	assert.True(t, doc.HasError())
	assert.Contains(t, doc.ErrorMessage(), "not configured")
}

func TestParser_KnownSize(t *testing.T) {
	p, _ := newTestParser()

	text := strings.Repeat("0123456789", 700)
	doc := p.Parse(domain.RawFile{Content: []byte(text), FileName: "long.txt", MIMEType: "text/plain"})

	chunks := doc.Chunks()
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 3000)
	assert.Len(t, chunks[1], 3000)
	assert.Len(t, chunks[2], 1400)
	assert.Equal(t, text[2800:5800], chunks[1])
	assert.Equal(t, text[5600:], chunks[2])
	assert.Equal(t, "3", doc.Metadata()[domain.MetaChunkCount])
}

func TestParser_CustomChunker(t *testing.T) {
	reg, _ := fullRegistry()
	c, err := chunker.New(chunker.WithChunkSize(4), chunker.WithOverlap(1))
	require.NoError(t, err)
	p := NewParser(reg, c)

	doc := p.Parse(domain.RawFile{Content: []byte("abcdefg"), FileName: "a.txt", MIMEType: "text/plain"})

	assert.Equal(t, []string{"abcd", "defg"}, doc.Chunks())
	assert.Equal(t, "4", doc.Metadata()[domain.MetaChunkSize])
	assert.Equal(t, "1", doc.Metadata()[domain.MetaOverlap])
}

func TestParser_Deterministic(t *testing.T) {
	p, _ := newTestParser()
	raw := domain.RawFile{Content: []byte(strings.Repeat("abc ", 2000)), FileName: "a.md", MIMEType: "text/markdown"}

	first := p.Parse(raw)
	second := p.Parse(raw)

	assert.Equal(t, first.Chunks(), second.Chunks())
	assert.Equal(t, first.ErrorMessage(), second.ErrorMessage())
	assert.Equal(t, first.Metadata(), second.Metadata())
}

func TestParser_Classify(t *testing.T) {
	p, _ := newTestParser()
	assert.Equal(t, domain.FormatPDF, p.Classify("application/octet-stream", "report.pdf"))
	assert.Len(t, p.Rules(), 6)
}
