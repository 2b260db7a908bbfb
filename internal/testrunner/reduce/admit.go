package reduce

import (
	"hash/fnv"
	"math/rand"
	"path/filepath"
	"time"

	reduceerrors "github.com/orizon-lang/orizon-reduce/internal/errors"
)

// maxDescribeLen bounds the description portion of a queue/crash/hang
// filename, mirroring the source's PATH_MAX/NAME_MAX guard in describe_op.
const maxDescribeLen = 235

// noveltyDetail is the logDecision detail for crash/hang persistence, which
// is gated by ClassifyNovelty's boolean "have we seen this before" check
// rather than the queue branch's numeric ImprovementCode.
type noveltyDetail struct{}

func (noveltyDetail) String() string { return "novel" }

// hash64 is the path-frequency checksum (source: hash64(trace_bits,
// map_size, HASH_CONST)), a 64-bit FNV-1a fold of the raw trace as the
// execution produced it (SaveIfInteresting hashes before bucketizing).
func hash64(trace []byte) uint64 {
	h := fnv.New64a()
	h.Write(trace)

	return h.Sum64()
}

// NearMissAccept is the admission controller's probabilistic near-miss
// rule (spec §4.5, code==1 branch): a strict hit-count decrease relative
// to globalMinHitCount is always accepted; otherwise the candidate is
// accepted with probability decaying as its excess over globalMinHitCount
// grows, inside a [0, margin*globalMinHitCount) window.
func NearMissAccept(margin float64, curHitCount, globalMinHitCount uint64, r *rand.Rand) bool {
	if curHitCount < globalMinHitCount {
		return true
	}

	upper := uint64(margin * float64(globalMinHitCount))
	if upper == 0 {
		return curHitCount == globalMinHitCount
	}

	draw := uint64(r.Int63n(int64(upper)))
	diff := curHitCount - globalMinHitCount

	return diff <= draw
}

// bumpFrequency saturating-increments the n_fuzz path-frequency table slot
// for trace, when the session is running with a frequency-aware schedule.
func (s *Session) bumpFrequency(trace []byte) {
	if !s.State.FrequencyAware || s.State.PathFrequency == nil {
		return
	}

	idx := hash64(trace) % nFuzzSize
	if s.State.PathFrequency[idx] < ^uint32(0) {
		s.State.PathFrequency[idx]++
	}
}

// SaveIfInteresting is the admission controller (source: save_if_
// interesting). It is invoked once per target execution and decides
// whether input earns a place in queue/, crashes/ or hangs/, per spec
// §4.5. It has two branches, "does this match the configured crash mode"
// and "what fault did it produce", matching the source's structure: a
// crash can be both requeued for further reduction and recorded as a new
// unique crash file in the same call. When the first branch runs and
// discards the execution (classifier code 0 or a near-miss rejection),
// the call returns at once and the fault branch is not reached.
func (s *Session) SaveIfInteresting(input []byte, res ExecResult, stage StageInfo, donor Donor) (bool, error) {
	if len(input) == 0 {
		return false, nil
	}

	s.bumpFrequency(res.Trace)

	var classified bool

	keeping := false

	if res.Fault == s.CrashMode {
		preGlobal := s.State.GlobalMinHitCount()

		Bucketize(res.Trace)
		classified = true

		code := s.State.HasFewBits(res.Trace, s.State.VirginBits, res.HitCount)

		if code == CodeNone {
			return false, nil
		}

		if code == CodeHCN {
			accept := true
			if preGlobal.Present() {
				accept = NearMissAccept(s.State.NearMissMargin, res.HitCount, preGlobal.Value(), s.Rand)
			}

			if !accept {
				return false, nil
			}
		}

		donor.CurrentID = s.CurrentEntryID
		donor.SplicedID = s.SplicingWith

		elapsed := uint64(time.Since(s.StartTime).Milliseconds())
		op := DescribeOp(donor, stage, elapsed, code)

		if len(op) > maxDescribeLen {
			s.fatal(reduceerrors.FilenameOverflow(s.NextQueueID, len(op)))
		}

		queueName := QueueFilename(s.NextQueueID, op)
		queuePath := filepath.Join(s.OutDir, "queue", queueName)

		if err := s.WriteFile(queuePath, input); err != nil {
			return false, reduceerrors.OutputOpenFailure(queuePath, err)
		}

		s.logDecision("queued", code, queuePath)

		switch code {
		case CodeCov, CodeCovHCN, CodeBMSCov, CodeBMSCovHCN:
			s.State.QueuedWithCov++
		}

		s.State.QueuedPaths++
		s.NextQueueID++

		if s.Calibrate != nil {
			if err := s.Calibrate(input, queuePath); err != nil {
				return false, reduceerrors.ExecFailure(err.Error(), -1)
			}
		}

		keeping = true
	}

	switch res.Fault {
	case FaultTimeout:
		return s.admitTimeout(input, res, stage, donor, classified, keeping)
	case FaultCrash:
		return s.admitCrash(input, res, stage, donor, classified, keeping)
	case FaultError:
		s.fatal(reduceerrors.ExecFailure("target execution returned an error fault", -1))

		return keeping, nil
	default:
		return keeping, nil
	}
}

// admitTimeout is the timeout branch of save_if_interesting: classify the
// simplified trace against virgin_tmout, then — when a Rerun hook is set
// and the hang timeout is longer than the normal execution timeout —
// re-run the input with a generous
// timeout to rule out a merely slow (not hung) execution, promoting to a
// crash if the longer run actually crashes.
func (s *Session) admitTimeout(input []byte, res ExecResult, stage StageInfo, donor Donor, classified, keeping bool) (bool, error) {
	s.State.TotalTmouts++

	if s.State.UniqueTmouts >= s.MaxUniqueHangs {
		return keeping, nil
	}

	if !classified {
		Bucketize(res.Trace)
	}

	Simplify(res.Trace)

	if !s.State.ClassifyNovelty(res.Trace, s.State.VirginTmout) {
		return keeping, nil
	}

	if s.Rerun != nil && s.HangTimeout > s.ExecTimeout {
		rerun := s.Rerun(input, s.HangTimeout)

		switch rerun.Fault {
		case FaultCrash:
			promoted := res
			promoted.Fault = FaultCrash
			promoted.Sig = rerun.Sig

			return s.admitCrash(input, promoted, stage, donor, false, keeping)
		case FaultTimeout:
			// confirmed hang, fall through to persist it
		default:
			// transient: the longer run finished cleanly, not a genuine hang
			return keeping, nil
		}
	}

	op := DescribeOp(donor, stage, uint64(time.Since(s.StartTime).Milliseconds()), CodeNone)
	if len(op) > maxDescribeLen {
		s.fatal(reduceerrors.FilenameOverflow(s.State.UniqueTmouts, len(op)))
	}

	hangPath := filepath.Join(s.OutDir, "hangs", HangFilename(s.State.UniqueTmouts, op))

	if err := s.WriteFile(hangPath, input); err != nil {
		return keeping, reduceerrors.OutputOpenFailure(hangPath, err)
	}

	s.logDecision("hung", noveltyDetail{}, hangPath)
	s.State.UniqueTmouts++

	return keeping, nil
}

// admitCrash is the crash branch of save_if_interesting: classify the
// simplified trace against virgin_crash, write the crash README once, and
// persist a new unique crash file.
func (s *Session) admitCrash(input []byte, res ExecResult, stage StageInfo, donor Donor, classified, keeping bool) (bool, error) {
	s.State.TotalCrashes++

	if s.State.UniqueCrashes >= s.MaxUniqueCrashes {
		return keeping, nil
	}

	if !classified {
		Bucketize(res.Trace)
	}

	Simplify(res.Trace)

	if !s.State.ClassifyNovelty(res.Trace, s.State.VirginCrash) {
		return keeping, nil
	}

	if s.State.needsCrashReadme() {
		s.writeCrashReadme()
	}

	op := DescribeOp(donor, stage, uint64(time.Since(s.StartTime).Milliseconds()), CodeNone)
	if len(op) > maxDescribeLen {
		s.fatal(reduceerrors.FilenameOverflow(s.State.UniqueCrashes, len(op)))
	}

	crashPath := filepath.Join(s.OutDir, "crashes", CrashFilename(s.State.UniqueCrashes, res.Sig, op))

	if err := s.WriteFile(crashPath, input); err != nil {
		return keeping, reduceerrors.OutputOpenFailure(crashPath, err)
	}

	s.logDecision("crashed", noveltyDetail{}, crashPath)
	s.State.UniqueCrashes++

	if s.State.OnNewCrash != nil {
		s.State.OnNewCrash(crashPath)
	}

	return keeping, nil
}

// writeCrashReadme persists crashes/README.txt once per session. Failing
// to write it is a polite error (spec §7): log and continue, the crash
// itself is still worth saving.
func (s *Session) writeCrashReadme() {
	path := filepath.Join(s.OutDir, "crashes", "README.txt")

	body := "Command line used to find this crash:\n\n" + s.CommandLine +
		"\n\nIf you can't reproduce a bug outside of orizon-reduce, be sure to set the " +
		"same memory/timeout limits used during the reduction session. See the queue/ " +
		"entry this crash was derived from for the minimized, still-crashing input.\n"

	if err := s.WriteFile(path, []byte(body)); err != nil && s.Logger != nil {
		s.Logger.Printf("crash README: %v (continuing)", err)
	}
}
