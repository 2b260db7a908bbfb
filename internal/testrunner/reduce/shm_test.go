package reduce

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/orizon-lang/orizon-reduce/internal/testrunner/assert"
)

func TestOpenTraceMapSizedAndZeroed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".fuzz_shm")

	m, err := OpenTraceMap(path, 1024)
	assert.NoError(t, err)
	defer m.Close()

	buf := m.Bytes()
	assert.Equal(t, len(buf), 1024)

	for _, b := range buf {
		assert.Equal(t, b, byte(0))
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backing file must exist on disk: %v", err)
	}
}

func TestTraceMapResetClearsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".fuzz_shm")

	m, err := OpenTraceMap(path, 8)
	assert.NoError(t, err)
	defer m.Close()

	buf := m.Bytes()
	buf[3] = 42

	m.Reset()

	for _, b := range m.Bytes() {
		assert.Equal(t, b, byte(0))
	}
}
