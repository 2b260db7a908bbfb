package reduce

import (
	"testing"

	testrunner "github.com/orizon-lang/orizon-reduce/internal/testrunner"
)

// TestQueueFilenameGrammarSnapshot guards the §4.6/§6 filename grammar
// against accidental drift: any change to DescribeOp's output for this
// fixed input must be a deliberate update to testdata/snapshots.
func TestQueueFilenameGrammarSnapshot(t *testing.T) {
	sm := testrunner.NewSnapshotManager(testrunner.DefaultSnapshotOptions())

	d := Donor{CurrentID: 12, SplicedID: -1}
	s := StageInfo{Name: "havoc", CurByte: -1, Rep: 3}
	op := DescribeOp(d, s, 450, CodeBMSCovHCN)

	ok, err := sm.VerifySnapshot("queue_filename_grammar", QueueFilename(12, op))
	if err != nil {
		t.Fatalf("snapshot mismatch: %v", err)
	}

	if !ok {
		t.Fatal("snapshot verification failed")
	}
}

// TestBitmapTraceSnapshot guards the fuzz_bitmap body layout: a fixed
// bucketized trace must round-trip byte-for-byte.
func TestBitmapTraceSnapshot(t *testing.T) {
	sm := testrunner.NewSnapshotManager(testrunner.DefaultSnapshotOptions())

	trace := []byte{0, 2, 0, 0, 5, 0, 0, 0}
	Bucketize(trace)

	ok, err := sm.VerifyBytesSnapshot("bitmap_trace_sample", trace)
	if err != nil {
		t.Fatalf("snapshot mismatch: %v", err)
	}

	if !ok {
		t.Fatal("snapshot verification failed")
	}
}
