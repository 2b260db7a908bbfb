package reduce

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/orizon-lang/orizon-reduce/internal/testrunner/assert"
)

func TestWriteReadBitmapFileRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fuzz_bitmap")

	original := []byte{0xFF, 0x00, 0x01, 0x80, 0xFF}
	assert.NoError(t, WriteBitmapFile(path, original))

	got, err := ReadBitmapFile(path)
	assert.NoError(t, err)
	assert.Equal(t, len(got), len(original))

	for i := range original {
		assert.Equal(t, got[i], original[i])
	}
}

func TestReadBitmapFileRejectsIncompatibleMajor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fuzz_bitmap")

	assert.NoError(t, os.WriteFile(path, []byte("format:2.0.0\n\x00\x01"), 0o600))

	_, err := ReadBitmapFile(path)
	assert.True(t, err != nil, "a major-version mismatch must be rejected")
}

func TestReadBitmapFileRejectsMissingHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fuzz_bitmap")

	assert.NoError(t, os.WriteFile(path, []byte("\x00\x01\x02"), 0o600))

	_, err := ReadBitmapFile(path)
	assert.True(t, err != nil, "a missing format header must be rejected")
}
