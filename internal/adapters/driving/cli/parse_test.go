package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
)

func TestParseCmd_Use(t *testing.T) {
	assert.Equal(t, "parse [path]", parseCmd.Use)
}

func TestParseCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := executeCommand(t, "parse")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestParseCmd_NotConfigured(t *testing.T) {
	SetServices(Services{})

	_, err := executeCommand(t, "parse", "whatever.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "file fetcher not configured")
}

func TestParseCmd_PrintsSummary(t *testing.T) {
	setupTestServices(t)
	path := writeTempFile(t, "notes.txt", "hello from docparse")

	out, err := executeCommand(t, "parse", path)
	require.NoError(t, err)

	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, "Format: plain_text")
	assert.Contains(t, out, "Chunks: 1")
	assert.Contains(t, out, "Characters: 19")
	assert.Contains(t, out, "hello from docparse")
}

func TestParseCmd_JSON(t *testing.T) {
	setupTestServices(t)
	path := writeTempFile(t, "notes.txt", "hello json")

	out, err := executeCommand(t, "parse", path, "--json", "--source-id", "src-9")
	require.NoError(t, err)

	var doc struct {
		SourceID string            `json:"source_id"`
		FileName string            `json:"file_name"`
		Chunks   []string          `json:"chunks"`
		Metadata map[string]string `json:"metadata"`
		Error    string            `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "src-9", doc.SourceID)
	assert.Equal(t, "notes.txt", doc.FileName)
	assert.Equal(t, []string{"hello json"}, doc.Chunks)
	assert.Equal(t, "3000", doc.Metadata[domain.MetaChunkSize])
	assert.Empty(t, doc.Error)
}

func TestParseCmd_ToolRendering(t *testing.T) {
	setupTestServices(t)
	path := writeTempFile(t, "notes.txt", "abcdefghij")

	out, err := executeCommand(t, "parse", path, "--tool", "--max-chars", "4")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "=== File: notes.txt ===\n"), out)
	assert.Contains(t, out, "Chunks: 1\n\nabcd\n")
	assert.NotContains(t, out, "abcde")
}

func TestParseCmd_ChunksWithFlags(t *testing.T) {
	setupTestServices(t)
	path := writeTempFile(t, "notes.txt", strings.Repeat("x", 25))

	out, err := executeCommand(t, "parse", path, "--chunks", "--chunk-size", "10", "--overlap", "2")
	require.NoError(t, err)

	// windows [0,10) [8,18) [16,25)
	assert.Contains(t, out, "--- Chunk 1/3 (10 chars) ---")
	assert.Contains(t, out, "--- Chunk 2/3 (10 chars) ---")
	assert.Contains(t, out, "--- Chunk 3/3 (9 chars) ---")
}

func TestParseCmd_ConfigChunkSize(t *testing.T) {
	setupTestServices(t)
	require.NoError(t, settingsService.SetValue("chunker.overlap", "0"))
	require.NoError(t, settingsService.SetValue("chunker.chunk_size", "10"))
	path := writeTempFile(t, "notes.txt", strings.Repeat("y", 30))

	out, err := executeCommand(t, "parse", path, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"chunk_count": "3"`)
}

func TestParseCmd_InvalidChunkConfig(t *testing.T) {
	setupTestServices(t)
	path := writeTempFile(t, "notes.txt", "text")

	_, err := executeCommand(t, "parse", path, "--chunk-size", "10", "--overlap", "10")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidChunkConfig)
}

func TestParseCmd_MissingFile(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "parse", filepath.Join(t.TempDir(), "missing.pdf"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParseCmd_MIMEAndNameOverride(t *testing.T) {
	setupTestServices(t)
	path := writeTempFile(t, "export.bin", "a,b\n1,2\n")

	out, err := executeCommand(t, "parse", path, "--mime", "text/csv", "--name", "sales.csv")
	require.NoError(t, err)

	assert.Contains(t, out, "Format: spreadsheet")
	assert.Contains(t, out, "CSV: sales.csv")
	assert.Contains(t, out, "| a | b |")
}

func TestParseCmd_ReportsEmptyDocument(t *testing.T) {
	setupTestServices(t)
	path := writeTempFile(t, "blank.txt", "   \n\n  ")

	out, err := executeCommand(t, "parse", path, "--mime", "text/plain")
	require.NoError(t, err)

	assert.Contains(t, out, "Chunks: 0")
	assert.Contains(t, out, "Error: No text could be extracted from 'blank.txt' (type: text/plain).")
}

func TestParseCmd_OutputFlagsAreExclusive(t *testing.T) {
	setupTestServices(t)
	path := writeTempFile(t, "notes.txt", "text")

	_, err := executeCommand(t, "parse", path, "--json", "--tool")
	assert.Error(t, err)
}
