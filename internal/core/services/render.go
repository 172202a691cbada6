package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
)

// RenderForTool formats a parsed document for a language-model tool call.
// The full text is cut to maxChars characters; maxChars <= 0 means no limit.
func RenderForTool(doc domain.ParsedDocument, maxChars int) string {
	if doc.HasError() {
		return fmt.Sprintf("Parsing error for '%s': %s", doc.FileName(), doc.ErrorMessage())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== File: %s ===\n", doc.FileName())
	fmt.Fprintf(&b, "Type: %s\n", doc.MIMEType())
	fmt.Fprintf(&b, "Chunks: %d\n\n", doc.ChunkCount())
	b.WriteString(Truncate(doc.FullText(), maxChars))
	return b.String()
}

// Truncate returns the first maxChars characters of s.
// maxChars <= 0 returns s unchanged.
func Truncate(s string, maxChars int) string {
	if maxChars <= 0 {
		return s
	}
	n := 0
	for i := range s {
		if n == maxChars {
			return s[:i]
		}
		n++
	}
	return s
}
