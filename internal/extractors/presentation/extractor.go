// Package presentation extracts slide text from PowerPoint (.pptx) files.
package presentation

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-docparse/internal/extractors/ooxml"
	"github.com/custodia-labs/sercha-docparse/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

const (
	presentationPart = "ppt/presentation.xml"
	presentationRels = "ppt/_rels/presentation.xml.rels"
	slideRelType     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
)

var slidePartName = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// Extractor handles presentation documents.
type Extractor struct{}

// New creates a new presentation extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "presentation"
}

// Extract returns one "[Slide N]" block per slide that has text.
// N counts every slide, including those that are skipped.
func (e *Extractor) Extract(raw domain.RawFile) (string, error) {
	pkg, err := ooxml.Open(raw.Content)
	if err != nil {
		return "", err
	}

	slides := slideOrder(pkg)
	if len(slides) == 0 && !pkg.Has(presentationPart) {
		return "", fmt.Errorf("%w: %s", ooxml.ErrPartMissing, presentationPart)
	}

	var blocks []string
	for i, name := range slides {
		data, err := pkg.Read(name)
		if err != nil {
			return "", err
		}
		lines, err := slideLines(data)
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", name, err)
		}
		if len(lines) == 0 {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("[Slide %d]\n%s", i+1, strings.Join(lines, "\n")))
	}

	text := strings.Join(blocks, "\n\n")
	logger.Info("PPTX '%s': extracted %d slides, %d chars", raw.FileName, len(slides), utf8.RuneCountInString(text))
	return text, nil
}

type presentationXML struct {
	SlideIDs []struct {
		RelID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
}

type relationshipsXML struct {
	Relationships []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// slideOrder returns slide part names in presentation order.
// It follows the slide id list and falls back to numeric file order.
func slideOrder(pkg *ooxml.Package) []string {
	if names := orderFromPresentation(pkg); len(names) > 0 {
		return names
	}

	type numbered struct {
		name string
		n    int
	}
	var found []numbered
	for _, name := range pkg.Names() {
		m := slidePartName.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		found = append(found, numbered{name: name, n: n})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].n < found[j].n })

	names := make([]string, len(found))
	for i, f := range found {
		names[i] = f.name
	}
	return names
}

func orderFromPresentation(pkg *ooxml.Package) []string {
	presData, err := pkg.Read(presentationPart)
	if err != nil {
		return nil
	}
	relsData, err := pkg.Read(presentationRels)
	if err != nil {
		return nil
	}

	var pres presentationXML
	if err := xml.Unmarshal(presData, &pres); err != nil {
		logger.Warn("Unreadable %s: %v", presentationPart, err)
		return nil
	}
	var rels relationshipsXML
	if err := xml.Unmarshal(relsData, &rels); err != nil {
		logger.Warn("Unreadable %s: %v", presentationRels, err)
		return nil
	}

	targets := make(map[string]string, len(rels.Relationships))
	for _, r := range rels.Relationships {
		if r.Type == slideRelType {
			targets[r.ID] = ooxml.ResolveTarget("ppt", r.Target)
		}
	}

	var names []string
	for _, id := range pres.SlideIDs {
		name, ok := targets[id.RelID]
		if !ok || !pkg.Has(name) {
			continue
		}
		names = append(names, name)
	}
	return names
}

type slideXML struct {
	Shapes []shapeXML `xml:"cSld>spTree>sp"`
}

type shapeXML struct {
	TxBody *struct {
		Paragraphs []struct {
			Runs []struct {
				Text string `xml:"t"`
			} `xml:"r"`
		} `xml:"p"`
	} `xml:"txBody"`
}

// slideLines returns the non-blank paragraph texts of a slide's top-level
// text shapes. A paragraph's text is the concatenation of its runs.
func slideLines(data []byte) ([]string, error) {
	var slide slideXML
	if err := xml.Unmarshal(data, &slide); err != nil {
		return nil, err
	}

	var lines []string
	for _, shape := range slide.Shapes {
		if shape.TxBody == nil {
			continue
		}
		for _, p := range shape.TxBody.Paragraphs {
			var b strings.Builder
			for _, r := range p.Runs {
				b.WriteString(r.Text)
			}
			if text := strings.TrimSpace(b.String()); text != "" {
				lines = append(lines, text)
			}
		}
	}
	return lines, nil
}
