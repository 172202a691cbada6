package services

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-docparse/internal/logger"
)

// Ensure Parser implements the interface.
var _ driving.DocumentParser = (*Parser)(nil)

// Parser composes classification, extraction and chunking.
// It holds no per-call state and is safe for concurrent use.
type Parser struct {
	classifier *Classifier
	extractors driven.ExtractorRegistry
	chunker    driven.Chunker
}

// NewParser creates a parser over the given extractors and chunker.
func NewParser(extractors driven.ExtractorRegistry, chunker driven.Chunker) *Parser {
	return &Parser{
		classifier: NewClassifier(),
		extractors: extractors,
		chunker:    chunker,
	}
}

// Classify returns the FormatKind that Parse routes the file to.
func (p *Parser) Classify(mimeType, fileName string) domain.FormatKind {
	return p.classifier.Classify(mimeType, fileName)
}

// Rules lists the classification rules in evaluation order.
func (p *Parser) Rules() []driving.FormatRule {
	return p.classifier.Rules()
}

// Parse turns raw into a ParsedDocument. It never panics and never fails:
// extractor faults degrade to empty text, structural faults are recorded
// in the document error, and an empty result always carries an explanation.
func (p *Parser) Parse(raw domain.RawFile) (doc domain.ParsedDocument) {
	meta := make(map[string]string)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unexpected error parsing '%s': %v", raw.FileName, r)
			doc = domain.NewParsedDocument(raw, nil, meta, fmt.Sprint(r))
		}
	}()

	chunks, err := p.parse(raw, meta)
	if err != nil {
		logger.Error("Unexpected error parsing '%s': %v", raw.FileName, err)
		return domain.NewParsedDocument(raw, nil, meta, err.Error())
	}

	doc = domain.NewParsedDocument(raw, chunks, meta, "")
	if doc.IsEmpty() {
		doc = domain.NewParsedDocument(raw, nil, meta, NoTextMessage(raw.FileName, raw.MIMEType))
	}
	return doc
}

// NoTextMessage is the error recorded when parsing yields no usable text.
func NoTextMessage(fileName, mimeType string) string {
	return fmt.Sprintf("No text could be extracted from '%s' (type: %s).", fileName, mimeType)
}

func (p *Parser) parse(raw domain.RawFile, meta map[string]string) ([]string, error) {
	kind := p.classifier.Classify(raw.MIMEType, raw.FileName)
	meta[domain.MetaFormat] = string(kind)

	if kind == domain.FormatFallback {
		logger.Warn("Unknown MIME type '%s' for '%s', attempting plain text decode", raw.MIMEType, raw.FileName)
		meta[domain.MetaFallback] = "true"
	}

	if p.extractors == nil || p.chunker == nil {
		return nil, fmt.Errorf("parser is not configured: %w", domain.ErrInvalidInput)
	}

	extractor, ok := p.extractors.Get(kind.ExtractorKind())
	if !ok {
		return nil, fmt.Errorf("no extractor for format %q: %w", kind, domain.ErrUnsupportedType)
	}
	meta[domain.MetaExtractor] = extractor.Name()

	text := p.extract(extractor, raw, meta)
	chunks := p.chunker.Chunk(text)

	meta[domain.MetaChunkSize] = strconv.Itoa(p.chunker.Size())
	meta[domain.MetaOverlap] = strconv.Itoa(p.chunker.Overlap())
	meta[domain.MetaChunkCount] = strconv.Itoa(len(chunks))
	meta[domain.MetaCharCount] = strconv.Itoa(utf8.RuneCountInString(text))

	return chunks, nil
}

// extract is the extractor boundary: failures and panics become empty text
// and the reason is kept in metadata.
func (p *Parser) extract(extractor driven.Extractor, raw domain.RawFile, meta map[string]string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("%s extractor panicked for '%s': %v", extractor.Name(), raw.FileName, r)
			meta[domain.MetaExtractionFailure] = fmt.Sprint(r)
			text = ""
		}
	}()

	text, err := extractor.Extract(raw)
	if err != nil {
		logger.Error("%s extractor failed for '%s': %v", extractor.Name(), raw.FileName, err)
		meta[domain.MetaExtractionFailure] = err.Error()
		return ""
	}
	return text
}
