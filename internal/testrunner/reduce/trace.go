package reduce

import (
	"hash/fnv"

	"github.com/orizon-lang/orizon-reduce/internal/testrunner/fuzz"
)

// edgeHash folds a 64-bit token-edge value into a map slot, the Go stand-in
// for the instrumentation compiler's `cur_location ^ prev_location` trick:
// an FNV-1a hash of the edge's 8 bytes, reduced mod mapSize.
func edgeHash(edge uint64, mapSize int) int {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(edge >> (8 * i))
	}

	h := fnv.New64a()
	h.Write(buf[:])

	return int(h.Sum64() % uint64(mapSize))
}

// BuildTrace adapts fuzz.WeightedTokenEdgeCoverage into a MAP_SIZE-byte
// saturating hit-count bitmap: every edge hashes into a map slot and
// saturate-increments it, standing in for the out-of-scope call-tracing
// tool's calltrace_addr.out output (spec.md §6, SPEC_FULL.md §11.1).
func BuildTrace(input []byte, mapSize int) []byte {
	trace := make([]byte, mapSize)

	for _, edge := range fuzz.WeightedTokenEdgeCoverage(string(input)) {
		slot := edgeHash(edge, mapSize)
		if trace[slot] != 0xFF {
			trace[slot]++
		}
	}

	return trace
}

// CurHitCount sums the raw (pre-bucketization) byte values of trace,
// standing in for the line count the out-of-scope calltrace reader would
// otherwise produce (spec.md §6 "cur_hit_count").
func CurHitCount(trace []byte) uint64 {
	var total uint64
	for _, b := range trace {
		total += uint64(b)
	}

	return total
}
