package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatsCmd_ListsRules(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "formats")
	require.NoError(t, err)

	assert.Contains(t, out, "pdf  PDF document")
	assert.Contains(t, out, "application/pdf")
	assert.Contains(t, out, ".docx")
	assert.Contains(t, out, ".pptx")
	assert.Contains(t, out, "fallback")
	assert.Less(t, strings.Index(out, "pdf"), strings.Index(out, "plain_text"))
}

func TestFormatsCmd_NotConfigured(t *testing.T) {
	SetServices(Services{})

	_, err := executeCommand(t, "formats")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "format catalog not configured")
}

func TestJoinOrNone(t *testing.T) {
	assert.Equal(t, "(none)", joinOrNone(nil))
	assert.Equal(t, ".a, .b", joinOrNone([]string{".a", ".b"}))
}

