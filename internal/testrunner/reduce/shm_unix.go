//go:build !windows

package reduce

import (
	"os"

	"golang.org/x/sys/unix"
)

// TraceMap is a MAP_SIZE-byte trace_bits buffer backed by a real mmap
// region rather than a plain heap slice, the Go analogue of AFL's
// SHM-mapped instrumentation map (spec.md §5 "Allocation discipline").
// Orizon has no forkserver to share the map with, so there is nothing to
// attach from a child process; the mmap exists so the buffer survives
// independently of the Go heap and can be inspected with external tools
// (od, xxd) while a session is running.
type TraceMap struct {
	file *os.File
	data []byte
}

// OpenTraceMap creates (or truncates) path to size bytes and maps it
// read/write, shared so external tools see live writes.
func OpenTraceMap(path string, size int) (*TraceMap, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, err
	}

	if err := f.Truncate(int64(size)); err != nil {
		f.Close()

		return nil, err
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()

		return nil, err
	}

	return &TraceMap{file: f, data: data}, nil
}

// Bytes returns the mapped buffer. Callers write trace bits directly into
// it; the mapping makes those writes visible to anything else that opens
// the same backing file.
func (m *TraceMap) Bytes() []byte { return m.data }

// Reset zeroes the map in place, reused between target executions instead
// of reallocating.
func (m *TraceMap) Reset() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Close unmaps the buffer and closes the backing file.
func (m *TraceMap) Close() error {
	err := unix.Munmap(m.data)
	if cerr := m.file.Close(); err == nil {
		err = cerr
	}

	return err
}
