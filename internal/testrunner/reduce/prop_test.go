package reduce

import (
	"math/rand"
	"testing"

	"github.com/orizon-lang/orizon-reduce/internal/testrunner/prop"
)

const propMapSize = 64

// genBucketizedTrace produces a random already-bucketized trace of
// propMapSize bytes, with a size-controlled number of touched edges.
func genBucketizedTrace() prop.Generator[[]byte] {
	return func(r *rand.Rand, size int) []byte {
		trace := make([]byte, propMapSize)

		touched := r.Intn(size + 1)
		for i := 0; i < touched; i++ {
			trace[r.Intn(propMapSize)] = byte(1 + r.Intn(255))
		}

		Bucketize(trace)

		return trace
	}
}

// shrinkBucketizedTrace shrinks by clearing one touched edge at a time.
func shrinkBucketizedTrace() prop.Shrinker[[]byte] {
	return func(v []byte) [][]byte {
		for i, b := range v {
			if b != 0 {
				cleared := append([]byte(nil), v...)
				cleared[i] = 0

				return [][]byte{cleared}
			}
		}

		return nil
	}
}

// TestReplayingAnAdmittedTraceNeverImprovesAgain generalizes Scenario 3:
// presenting the same bucketized trace twice to a fresh ReductionState
// always classifies the second presentation as CodeNone, and never moves
// totalMinBitmapSize from what the first presentation set it to. This
// must hold for every trace, not just the handwritten example, since it
// follows from HasFewBits comparing strictly-less-than against state the
// first call already set from this exact trace.
func TestReplayingAnAdmittedTraceNeverImprovesAgain(t *testing.T) {
	result := prop.ForAll1(genBucketizedTrace(), shrinkBucketizedTrace(), func(trace []byte) bool {
		rs := NewReductionState(propMapSize)

		rs.HasFewBits(trace, rs.VirginBits, 11)
		sizeAfterFirst := rs.TotalMinBitmapSize()

		second := rs.HasFewBits(trace, rs.VirginBits, 11)
		if second != CodeNone {
			return false
		}

		return rs.TotalMinBitmapSize() == sizeAfterFirst
	}, prop.Options{Trials: 64, Seed: 1})

	if result.Failed {
		t.Fatalf("property failed for trace %v (shrunk to %v)", result.FailingInput, result.ShrunkInput)
	}
}
