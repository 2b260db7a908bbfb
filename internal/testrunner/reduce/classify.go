package reduce

import "fmt"

// ImprovementCode is the 3-bit tag the reduction classifier returns,
// encoding (bms_decrease, cov_decrease, hcn_decrease) as
// 4*bms + 2*cov + 1*hcn. Code 0 means "discard"; codes 1..7 each describe
// which dimensions improved.
type ImprovementCode byte

const (
	CodeNone      ImprovementCode = 0
	CodeHCN       ImprovementCode = 1 // hit-count sum decreased
	CodeCov       ImprovementCode = 2 // an edge disappeared
	CodeCovHCN    ImprovementCode = 3
	CodeBMS       ImprovementCode = 4 // bitmap size decreased
	CodeBMSHCN    ImprovementCode = 5
	CodeBMSCov    ImprovementCode = 6
	CodeBMSCovHCN ImprovementCode = 7
)

// HasFewBits is the reduction classifier (source name: has_few_bits). It
// compares the already-bucketized trace against virgin and returns an
// ImprovementCode describing which of (bitmap size, edge set, hit-count
// sum) strictly decreased relative to the reference state, mutating
// rs.totalMinBitmapSize, rs.globalMinHitCount, virgin (forgetting
// disappeared edges) and rs.BitmapChanged along the way.
//
// On the very first call this performs the spec §4.3 lazy initialization
// and returns the growth-oriented initialization code instead (0, 1 or 2
// in the has_new_bits sense) — this matches the source, which folds
// virgin-bits bootstrapping into the same function.
//
// The source gates its per-byte edge-disappearance and hit-count checks
// behind a word-level "virgin & current != 0" test, intended as a cheap
// skip for words nothing changed in. That gate also hides the case this
// reduction core exists to catch: a single edge going from hit to
// completely silent inside an otherwise-quiet word, where virgin & current
// is zero precisely because current is now zero there. Scenario 2 of the
// testable-properties set depends on that edge being detected, so this
// port checks every byte directly instead of reproducing the word-level
// skip (see DESIGN.md, "Reduction classifier").
func (rs *ReductionState) HasFewBits(trace []byte, virgin []byte, curHitCount uint64) ImprovementCode {
	if code, didInit := rs.ensureInitialized(trace, curHitCount); didInit {
		return ImprovementCode(code)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	var bmsDecrease, covDecrease, hcnDecrease bool

	curBitmapSize := CountBytes(trace)
	if curBitmapSize < rs.totalMinBitmapSize {
		rs.totalMinBitmapSize = curBitmapSize
		bmsDecrease = true
	}

	grew := false

	for k := range trace {
		switch {
		case virgin[k] != 0xFF && trace[k] == 0:
			// an edge that was touched before is silent now
			virgin[k] = 0xFF
			covDecrease = true
		case trace[k] != 0 && virgin[k] == 0xFF:
			// brand-new edge; silently ignored per spec §9 open question 3,
			// surfaced only through the optional OnIgnoredGrowth callback.
			grew = true
		}
	}

	if rs.globalMinHitCount.present && curHitCount < rs.globalMinHitCount.value {
		rs.globalMinHitCount = Init(curHitCount)
		hcnDecrease = true
	}

	if covDecrease {
		rs.BitmapChanged = true
	}

	code := ImprovementCode(b2i(bmsDecrease)*4 + b2i(covDecrease)*2 + b2i(hcnDecrease))

	if code == CodeNone && grew && rs.OnIgnoredGrowth != nil {
		rs.OnIgnoredGrowth(trace)
	}

	return code
}

// String renders an ImprovementCode for verbose decision logging, e.g.
// "code=3" for CodeCovHCN. The queue filename suffix is taken from the
// suffixes table in describe.go instead.
func (c ImprovementCode) String() string {
	return fmt.Sprintf("code=%d", byte(c))
}

func b2i(b bool) int {
	if b {
		return 1
	}

	return 0
}
