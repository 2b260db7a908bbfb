//go:build windows

package reduce

import "os"

// TraceMap on Windows falls back to a plain heap-backed buffer: there is
// no portable, dependency-free equivalent of POSIX mmap wired into this
// module's stack for this platform, and a forkserver-less harness has no
// child process to share the mapping with anyway. The file is still
// created on disk so tooling that expects out_dir/.fuzz_shm to exist keeps
// working; only the zero-copy mapping is unavailable.
type TraceMap struct {
	path string
	data []byte
}

// OpenTraceMap creates (or truncates) path to size bytes and returns a
// heap-backed buffer of the same size.
func OpenTraceMap(path string, size int) (*TraceMap, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, err
	}

	if err := f.Truncate(int64(size)); err != nil {
		f.Close()

		return nil, err
	}

	if err := f.Close(); err != nil {
		return nil, err
	}

	return &TraceMap{path: path, data: make([]byte, size)}, nil
}

// Bytes returns the trace buffer.
func (m *TraceMap) Bytes() []byte { return m.data }

// Reset zeroes the buffer in place.
func (m *TraceMap) Reset() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Close is a no-op: nothing is mapped to tear down.
func (m *TraceMap) Close() error { return nil }
