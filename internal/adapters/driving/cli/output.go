package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/services"
)

// outputFlags are shared by the commands that print a parsed document.
type outputFlags struct {
	chunkSize   int
	overlap     int
	maxChars    int
	asJSON      bool
	showChunks  bool
	tool        bool
	stripMarkup bool
}

func addOutputFlags(cmd *cobra.Command, o *outputFlags) {
	f := cmd.Flags()
	f.IntVar(&o.chunkSize, "chunk-size", domain.DefaultChunkSize, "Chunk size in characters, overrides config")
	f.IntVar(&o.overlap, "overlap", domain.DefaultChunkOverlap, "Characters shared by adjacent chunks, overrides config")
	f.IntVar(&o.maxChars, "max-chars", 0, "Truncate printed text to this many characters (0 = no limit)")
	f.BoolVar(&o.asJSON, "json", false, "Print the parsed document as JSON")
	f.BoolVar(&o.showChunks, "chunks", false, "Print each chunk separately")
	f.BoolVar(&o.tool, "tool", false, "Print the rendering handed to AI tools")
	f.BoolVar(&o.stripMarkup, "strip-markup", false, "Convert HTML input to Markdown before chunking")
	cmd.MarkFlagsMutuallyExclusive("json", "chunks", "tool")
}

// parseAndPrint builds a parser from config and flags, parses raw and
// prints the result in the requested form.
func parseAndPrint(cmd *cobra.Command, raw domain.RawFile, o *outputFlags) error {
	if parserFactory == nil {
		return errParserNotConfigured
	}
	settings, err := effectiveSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	opts := ParserOptions{
		ChunkSize:   settings.Chunker.ChunkSize,
		Overlap:     settings.Chunker.Overlap,
		StripMarkup: o.stripMarkup,
	}
	if cmd.Flags().Changed("chunk-size") {
		opts.ChunkSize = o.chunkSize
	}
	if cmd.Flags().Changed("overlap") {
		opts.Overlap = o.overlap
	}

	parser, err := parserFactory(opts)
	if err != nil {
		return err
	}
	doc := parser.Parse(raw)

	maxChars := o.maxChars
	if o.tool && !cmd.Flags().Changed("max-chars") {
		maxChars = settings.Output.MaxChars
	}

	out := cmd.OutOrStdout()
	switch {
	case o.asJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding document: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case o.tool:
		fmt.Fprintln(out, services.RenderForTool(doc, maxChars))
	case o.showChunks:
		printChunks(out, doc, maxChars)
	default:
		printSummary(out, doc, maxChars)
	}
	return nil
}

func printSummary(w io.Writer, doc domain.ParsedDocument, maxChars int) {
	st := newOutputStyles(w)
	format, _ := doc.Meta(domain.MetaFormat)
	chars, _ := doc.Meta(domain.MetaCharCount)

	fmt.Fprintln(w, st.Title(doc.FileName()))
	fmt.Fprintf(w, "%s %s\n", st.Label("Type:"), doc.MIMEType())
	fmt.Fprintf(w, "%s %s\n", st.Label("Format:"), format)
	fmt.Fprintf(w, "%s %d\n", st.Label("Chunks:"), doc.ChunkCount())
	if chars != "" {
		fmt.Fprintf(w, "%s %s\n", st.Label("Characters:"), chars)
	}
	if reason, ok := doc.Meta(domain.MetaExtractionFailure); ok {
		fmt.Fprintf(w, "%s %s\n", st.Label("Extraction failure:"), reason)
	}
	if doc.HasError() {
		fmt.Fprintf(w, "%s %s\n", st.Error("Error:"), doc.ErrorMessage())
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, services.Truncate(doc.FullText(), maxChars))
}

func printChunks(w io.Writer, doc domain.ParsedDocument, maxChars int) {
	st := newOutputStyles(w)
	if doc.HasError() {
		fmt.Fprintf(w, "%s %s\n", st.Error("Error:"), doc.ErrorMessage())
		return
	}

	chunks := doc.Chunks()
	for i, c := range chunks {
		header := "--- Chunk " + strconv.Itoa(i+1) + "/" + strconv.Itoa(len(chunks)) +
			" (" + strconv.Itoa(len([]rune(c))) + " chars) ---"
		fmt.Fprintln(w, st.Muted(header))
		fmt.Fprintln(w, services.Truncate(c, maxChars))
		if i < len(chunks)-1 {
			fmt.Fprintln(w)
		}
	}
}
