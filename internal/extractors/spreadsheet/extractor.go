// Package spreadsheet extracts text from CSV files and Excel workbooks.
// Every table is rendered as Markdown: a header row, a separator row,
// then the body rows padded to the widest row.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-docparse/internal/extractors/plaintext"
	"github.com/custodia-labs/sercha-docparse/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// SheetSeparator separates sheets of a workbook.
const SheetSeparator = "\n\n---\n\n"

var csvMIMETypes = map[string]struct{}{
	"text/csv":        {},
	"application/csv": {},
}

// Extractor handles CSV and workbook documents.
type Extractor struct{}

// New creates a new spreadsheet extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "spreadsheet"
}

// Extract renders a CSV file as one table, or each workbook sheet as a
// table headed by its name.
func (e *Extractor) Extract(raw domain.RawFile) (string, error) {
	var (
		text string
		err  error
	)
	if IsCSV(raw.MIMEType, raw.FileName) {
		text, err = extractCSV(raw)
	} else {
		text, err = extractWorkbook(raw)
	}
	if err != nil {
		return "", err
	}

	logger.Info("Spreadsheet '%s': extracted %d chars", raw.FileName, utf8.RuneCountInString(text))
	return text, nil
}

// IsCSV reports whether a file should be read as a flat CSV table.
func IsCSV(mimeType, fileName string) bool {
	if _, ok := csvMIMETypes[domain.NormaliseMIME(mimeType)]; ok {
		return true
	}
	return strings.HasSuffix(strings.ToLower(fileName), ".csv")
}

func extractCSV(raw domain.RawFile) (string, error) {
	text := strings.TrimPrefix(plaintext.Decode(raw.Content), "\ufeff")

	r := csv.NewReader(strings.NewReader(text))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return "", nil
	}

	return fmt.Sprintf("CSV: %s\n\n%s", raw.FileName, MarkdownTable(records)), nil
}

func extractWorkbook(raw domain.RawFile) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw.Content))
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("Closing workbook '%s': %v", raw.FileName, cerr)
		}
	}()

	var sheets []string
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			logger.Warn("Skipping sheet '%s' in '%s': %v", name, raw.FileName, err)
			continue
		}
		if len(rows) == 0 {
			continue
		}
		sheets = append(sheets, fmt.Sprintf("Sheet: %s\n\n%s", name, MarkdownTable(rows)))
	}

	return strings.Join(sheets, SheetSeparator), nil
}

// MarkdownTable renders rows as a Markdown table. The first row is the header.
// Rows are padded to the widest row; pipes and line breaks in cells are escaped.
func MarkdownTable(rows [][]string) string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return ""
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i := 0; i < width; i++ {
			cell := ""
			if i < len(cells) {
				cell = escapeCell(cells[i])
			}
			b.WriteString(" " + cell + " |")
		}
		b.WriteString("\n")
	}

	writeRow(rows[0])
	b.WriteString("|" + strings.Repeat(" --- |", width) + "\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

func escapeCell(s string) string {
	return cellEscaper.Replace(strings.TrimSpace(s))
}
