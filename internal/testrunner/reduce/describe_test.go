package reduce

import (
	"testing"

	"github.com/orizon-lang/orizon-reduce/internal/testrunner/assert"
)

func TestSuffixBijection(t *testing.T) {
	seen := make(map[string]ImprovementCode)

	for code := ImprovementCode(1); code <= 7; code++ {
		suf, ok := suffixes[code]
		assert.True(t, ok, "missing suffix for code", code)

		if other, dup := seen[suf]; dup {
			t.Fatalf("suffix %q used by both code %d and %d", suf, other, code)
		}

		seen[suf] = code
	}

	assert.Equal(t, len(seen), 7)
}

func TestDescribeOpQueueGrammar(t *testing.T) {
	d := Donor{CurrentID: 12, SplicedID: -1}
	s := StageInfo{Name: "havoc", CurByte: -1, Rep: 3}

	got := DescribeOp(d, s, 450, CodeBMSCovHCN)
	assert.Equal(t, got, "src:000012,time:450,op:havoc,rep:3,-bms_cov_hcn")
}

func TestDescribeOpSplice(t *testing.T) {
	d := Donor{CurrentID: 7, SplicedID: 99}
	s := StageInfo{Name: "splice", CurByte: 4, HasVal: true, Val: -3}

	got := DescribeOp(d, s, 10, CodeHCN)
	assert.Equal(t, got, "src:000007+000099,time:10,op:splice,pos:4,val:-3,-hcn")
}

func TestDescribeOpSyncParty(t *testing.T) {
	d := Donor{SyncPeer: "fuzzer02", SyncCase: 5}
	s := StageInfo{CurByte: -1}

	got := DescribeOp(d, s, 0, CodeNone)
	assert.Equal(t, got, "sync:fuzzer02,src:000005")
}

func TestQueueCrashHangFilenames(t *testing.T) {
	assert.Equal(t, QueueFilename(3, "src:000001,time:1,op:havoc,rep:0"), "id:000003,src:000001,time:1,op:havoc,rep:0")
	assert.Equal(t, CrashFilename(1, 11, "src:000001,time:1,op:havoc,rep:0"), "id:000001,sig:11,src:000001,time:1,op:havoc,rep:0")
	assert.Equal(t, HangFilename(2, "src:000002,time:2,op:havoc,rep:0"), "id:000002,src:000002,time:2,op:havoc,rep:0")
}
