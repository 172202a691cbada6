// Package word extracts text from Word-family documents.
//
// OOXML (.docx) bodies are walked token by token: non-blank paragraphs
// come first in document order, followed by one line per table row with
// the row's non-blank cells joined by " | ". RTF and ODT content is
// handed to lu4p/cat; any other container (legacy OLE .doc included) is
// rejected as unsupported.
package word

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/lu4p/cat"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-docparse/internal/extractors/ooxml"
	"github.com/custodia-labs/sercha-docparse/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

const (
	documentPart = "word/document.xml"

	nsWordML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsMC     = "http://schemas.openxmlformats.org/markup-compatibility/2006"

	cellSeparator = " | "
	partSeparator = "\n\n"
)

// catFormats are the content types lu4p/cat reads natively. Anything else
// would come back from it as the raw bytes.
var catFormats = []string{
	"text/rtf",
	"application/vnd.oasis.opendocument.text",
}

// Extractor handles Word-family documents.
type Extractor struct{}

// New creates a new Word extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "word"
}

// Extract returns the document's paragraphs followed by its table rows.
func (e *Extractor) Extract(raw domain.RawFile) (string, error) {
	pkg, err := ooxml.Open(raw.Content)
	if err != nil {
		return e.extractLegacy(raw)
	}
	if !pkg.Has(documentPart) {
		// ODT is also a zip container.
		if isCatFormat(raw.Content) {
			return e.extractLegacy(raw)
		}
		return "", fmt.Errorf("%w: %s", ooxml.ErrPartMissing, documentPart)
	}

	data, err := pkg.Read(documentPart)
	if err != nil {
		return "", err
	}

	content, err := parseBody(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", documentPart, err)
	}

	parts := append(content.paragraphs, content.rows...)
	text := strings.Join(parts, partSeparator)
	logger.Info("DOCX '%s': extracted %d paragraphs/rows", raw.FileName, len(parts))
	return text, nil
}

// extractLegacy reads RTF and ODT content with cat.
func (e *Extractor) extractLegacy(raw domain.RawFile) (string, error) {
	if !isCatFormat(raw.Content) {
		return "", fmt.Errorf("%w: word document %q is not DOCX, RTF or ODT", domain.ErrUnsupportedType, raw.FileName)
	}
	text, err := cat.FromBytes(raw.Content)
	if err != nil {
		return "", fmt.Errorf("unsupported word document: %w", err)
	}
	text = strings.TrimSpace(text)
	logger.Info("Word '%s': extracted %d chars via fallback reader", raw.FileName, utf8.RuneCountInString(text))
	return text, nil
}

func isCatFormat(content []byte) bool {
	detected := mimetype.Detect(content)
	for _, m := range catFormats {
		if detected.Is(m) {
			return true
		}
	}
	return false
}

// body is the text content of word/document.xml.
type body struct {
	paragraphs []string
	rows       []string
}

// walker tracks where the decoder is inside the document tree.
type walker struct {
	out body

	// paragraph text builders; nested paragraphs (text boxes) push a new one
	paras []*strings.Builder

	tableDepth int
	runDepth   int
	inText     bool

	rowCells  []string
	cellParas []string
}

func parseBody(r io.Reader) (body, error) {
	d := xml.NewDecoder(r)
	w := &walker{}

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return body{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == nsMC && t.Name.Local == "Fallback" {
				if err := d.Skip(); err != nil {
					return body{}, err
				}
				continue
			}
			if t.Name.Space == nsWordML {
				w.start(t.Name.Local)
			}
		case xml.EndElement:
			if t.Name.Space == nsWordML {
				w.end(t.Name.Local)
			}
		case xml.CharData:
			if b := w.current(); b != nil && w.inText {
				b.Write(t)
			}
		}
	}

	return w.out, nil
}

func (w *walker) current() *strings.Builder {
	if len(w.paras) == 0 || w.tableDepth > 1 {
		return nil
	}
	return w.paras[len(w.paras)-1]
}

func (w *walker) start(local string) {
	switch local {
	case "tbl":
		w.tableDepth++
	case "tr":
		if w.tableDepth == 1 {
			w.rowCells = w.rowCells[:0]
		}
	case "tc":
		if w.tableDepth == 1 {
			w.cellParas = w.cellParas[:0]
		}
	case "p":
		w.paras = append(w.paras, &strings.Builder{})
	case "r":
		w.runDepth++
	case "t":
		w.inText = w.runDepth > 0
	case "tab":
		if b := w.current(); b != nil && w.runDepth > 0 {
			b.WriteString("\t")
		}
	case "br", "cr":
		if b := w.current(); b != nil && w.runDepth > 0 {
			b.WriteString("\n")
		}
	}
}

func (w *walker) end(local string) {
	switch local {
	case "tbl":
		if w.tableDepth > 0 {
			w.tableDepth--
		}
	case "tr":
		if w.tableDepth != 1 {
			return
		}
		var cells []string
		for _, c := range w.rowCells {
			if c != "" {
				cells = append(cells, c)
			}
		}
		if len(cells) > 0 {
			w.out.rows = append(w.out.rows, strings.Join(cells, cellSeparator))
		}
	case "tc":
		if w.tableDepth == 1 {
			w.rowCells = append(w.rowCells, strings.TrimSpace(strings.Join(w.cellParas, "\n")))
		}
	case "p":
		if len(w.paras) == 0 {
			return
		}
		text := w.paras[len(w.paras)-1].String()
		w.paras = w.paras[:len(w.paras)-1]
		switch w.tableDepth {
		case 0:
			if trimmed := strings.TrimSpace(text); trimmed != "" {
				w.out.paragraphs = append(w.out.paragraphs, trimmed)
			}
		case 1:
			w.cellParas = append(w.cellParas, text)
		}
	case "r":
		if w.runDepth > 0 {
			w.runDepth--
		}
	case "t":
		w.inText = false
	}
}
