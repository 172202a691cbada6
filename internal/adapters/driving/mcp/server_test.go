package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil ports returns error", func(t *testing.T) {
		server, err := NewServer(nil)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingParser)
	})

	t.Run("missing parser returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Files: &mockFetcher{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingParser)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Parser: &mockParser{}, Files: &mockFetcher{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.NotNil(t, server.Handler())
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil parser returns error", func(t *testing.T) {
		ports := &Ports{Files: &mockFetcher{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingParser)
	})

	t.Run("nil file fetcher returns error", func(t *testing.T) {
		ports := &Ports{Parser: &mockParser{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingFileFetcher)
	})

	t.Run("drive and formats are optional", func(t *testing.T) {
		ports := &Ports{Parser: &mockParser{}, Files: &mockFetcher{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Parser:  &mockParser{},
			Formats: &mockCatalog{},
			Files:   &mockFetcher{},
			Drive:   &mockFetcher{name: "google_drive"},
		}
		assert.NoError(t, ports.Validate())
	})
}
