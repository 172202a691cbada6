package ooxml

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	for name, content := range parts {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestOpen_NotZip(t *testing.T) {
	_, err := Open([]byte("plain text"))
	assert.ErrorIs(t, err, ErrNotPackage)
}

func TestPackage_Read(t *testing.T) {
	p, err := Open(buildZip(t, map[string]string{"word/document.xml": "<doc/>"}))
	require.NoError(t, err)

	assert.True(t, p.Has("word/document.xml"))
	assert.False(t, p.Has("word/missing.xml"))
	assert.Equal(t, []string{"word/document.xml"}, p.Names())

	data, err := p.Read("word/document.xml")
	require.NoError(t, err)
	assert.Equal(t, "<doc/>", string(data))

	_, err = p.Read("word/missing.xml")
	assert.ErrorIs(t, err, ErrPartMissing)
}

func TestResolveTarget(t *testing.T) {
	assert.Equal(t, "ppt/slides/slide1.xml", ResolveTarget("ppt", "slides/slide1.xml"))
	assert.Equal(t, "ppt/media/image.png", ResolveTarget("ppt/slides", "../media/image.png"))
	assert.Equal(t, "ppt/slides/slide2.xml", ResolveTarget("ppt", "/ppt/slides/slide2.xml"))
}
