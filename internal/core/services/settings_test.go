package services

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
)

func TestSettingsService_Get_Defaults(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore())

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestSettingsService_Get_NilStore(t *testing.T) {
	settings, err := NewSettingsService(nil).Get()
	require.NoError(t, err)
	assert.Equal(t, 3000, settings.Chunker.ChunkSize)
}

func TestSettingsService_Get_StoredValues(t *testing.T) {
	store := newMockConfigStore()
	store.data[KeyChunkSize] = int64(1000)
	store.data[KeyChunkOverlap] = int64(0)
	store.data[KeyOutputMaxChars] = int64(500)
	store.data[KeyMaxFileSize] = int64(2048)

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)
	assert.Equal(t, 1000, settings.Chunker.ChunkSize)
	assert.Equal(t, 0, settings.Chunker.Overlap)
	assert.Equal(t, 500, settings.Output.MaxChars)
	assert.Equal(t, int64(2048), settings.Limits.MaxFileSize)
	assert.Equal(t, domain.DefaultDriveBurst, settings.Drive.Burst)
}

func TestSettingsService_Get_Invalid(t *testing.T) {
	store := newMockConfigStore()
	store.data[KeyChunkSize] = int64(100)
	store.data[KeyChunkOverlap] = int64(100)

	_, err := NewSettingsService(store).Get()
	assert.ErrorIs(t, err, domain.ErrInvalidChunkConfig)
	assert.Contains(t, err.Error(), "/tmp/config.toml")
}

func TestSettingsService_Save(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettingsService(store)

	settings := domain.DefaultSettings()
	settings.Chunker.ChunkSize = 1200
	require.NoError(t, svc.Save(&settings))
	assert.Equal(t, 1200, store.data[KeyChunkSize])
	assert.Len(t, store.data, len(svc.Keys()))

	assert.ErrorIs(t, svc.Save(nil), domain.ErrInvalidInput)

	settings.Chunker.Overlap = 5000
	assert.ErrorIs(t, svc.Save(&settings), domain.ErrInvalidChunkConfig)

	store.setErr = errors.New("disk full")
	settings.Chunker.Overlap = 10
	assert.Error(t, svc.Save(&settings))
}

func TestSettingsService_SetValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{"chunk size", KeyChunkSize, "1500", nil},
		{"overlap", KeyChunkOverlap, "0", nil},
		{"max chars zero means unlimited", KeyOutputMaxChars, "0", nil},
		{"file size", KeyMaxFileSize, "1024", nil},
		{"drive rate", KeyDriveRequestsPerS, "2", nil},
		{"drive burst", KeyDriveBurst, "4", nil},
		{"not a number", KeyChunkSize, "big", domain.ErrInvalidInput},
		{"unknown key", "chunker.mode", "1", domain.ErrInvalidInput},
		{"overlap too large", KeyChunkOverlap, "3000", domain.ErrInvalidChunkConfig},
		{"negative max chars", KeyOutputMaxChars, "-1", domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockConfigStore()
			err := NewSettingsService(store).SetValue(tt.key, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, store.GetInt(tt.key), mustAtoi(t, tt.value))
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	keys := NewSettingsService(nil).Keys()
	assert.Equal(t, []string{
		"chunker.chunk_size",
		"chunker.overlap",
		"output.max_chars",
		"limits.max_file_size",
		"drive.requests_per_second",
		"drive.burst",
	}, keys)
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err)
	return n
}
