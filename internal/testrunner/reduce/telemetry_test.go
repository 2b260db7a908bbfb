package reduce

import (
	"encoding/json"
	"testing"

	"github.com/orizon-lang/orizon-reduce/internal/testrunner/assert"
)

func TestSummaryOfSnapshotsState(t *testing.T) {
	rs := NewReductionState(8)

	trace := []byte{0, 2, 0, 0, 5, 0, 0, 0}
	Bucketize(trace)
	rs.HasFewBits(trace, rs.VirginBits, 7)
	rs.QueuedPaths = 1
	rs.QueuedWithCov = 1

	s := SummaryOf(rs)
	assert.Equal(t, s.TotalMinBitmapSize, uint64(2))
	assert.Equal(t, s.GlobalMinHitCount, uint64(7))
	assert.Equal(t, s.QueuedPaths, uint64(1))
	assert.Equal(t, s.QueuedWithCov, uint64(1))
}

func TestSummaryMarshalsToJSON(t *testing.T) {
	s := Summary{TotalMinBitmapSize: 3, GlobalMinHitCount: 9, QueuedPaths: 2, UniqueCrashes: 1}

	body, err := json.Marshal(s)
	assert.NoError(t, err)

	var decoded Summary
	assert.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, decoded.TotalMinBitmapSize, uint64(3))
	assert.Equal(t, decoded.UniqueCrashes, uint64(1))
}
