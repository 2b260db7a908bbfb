package reduce

import (
	"fmt"
	"strings"
)

// suffixes maps an ImprovementCode to its filename suffix (spec §4.6). The
// mapping is a bijection on {1..7}; code 0 never receives a suffix.
var suffixes = map[ImprovementCode]string{
	CodeHCN:       "-hcn",
	CodeCov:       "-cov",
	CodeCovHCN:    "-cov_hcn",
	CodeBMS:       "-bms",
	CodeBMSHCN:    "-bms_hcn",
	CodeBMSCov:    "-bms_cov",
	CodeBMSCovHCN: "-bms_cov_hcn",
}

// StageInfo describes the mutation stage that produced a candidate, used
// to fill in the op:/pos:/val:/rep: fields of the queue filename grammar.
// Exactly one of (CurByte>=0, Rep!=0) is meaningful at a time, mirroring
// the source's stage_cur_byte >= 0 branch.
type StageInfo struct {
	Name       string // afl->stage_short
	CurByte    int    // stage_cur_byte; -1 if not applicable
	ValBigEndian bool
	HasVal     bool
	Val        int
	Rep        int
}

// Donor describes the splice/sync source of a candidate for the
// src:SSSSSS[+TTTTTT] field, or the sync:peer,src:NNN form when the
// candidate arrived via SyncWatcher.
type Donor struct {
	SyncPeer   string // non-empty if this came from a peer's queue directory
	SyncCase   uint64
	CurrentID  uint64
	SplicedID  int // -1 if no splice partner
}

// DescribeOp builds the queue-entry description string (spec §6 queue
// filename grammar), mirroring describe_op: a sync-party prefix when this
// candidate was pulled from a peer, otherwise src:/time:/op: fields, with
// the improvement-code suffix from §4.6 appended for code != 0.
func DescribeOp(d Donor, s StageInfo, elapsed uint64, code ImprovementCode) string {
	var b strings.Builder

	if d.SyncPeer != "" {
		fmt.Fprintf(&b, "sync:%s,src:%06d", d.SyncPeer, d.SyncCase)
	} else {
		fmt.Fprintf(&b, "src:%06d", d.CurrentID)

		if d.SplicedID >= 0 {
			fmt.Fprintf(&b, "+%06d", d.SplicedID)
		}

		fmt.Fprintf(&b, ",time:%d", elapsed)

		fmt.Fprintf(&b, ",op:%s", s.Name)

		if s.CurByte >= 0 {
			fmt.Fprintf(&b, ",pos:%d", s.CurByte)

			if s.HasVal {
				sign := "+"
				if s.Val < 0 {
					sign = ""
				}

				be := ""
				if s.ValBigEndian {
					be = "be:"
				}

				fmt.Fprintf(&b, ",val:%s%s%d", be, sign, s.Val)
			}
		} else {
			fmt.Fprintf(&b, ",rep:%d", s.Rep)
		}
	}

	if suf, ok := suffixes[code]; ok {
		b.WriteString(",")
		b.WriteString(suf)
	}

	return b.String()
}

// QueueFilename formats the full queue-entry filename id:NNNNNN,<describe>.
func QueueFilename(id uint64, describe string) string {
	return fmt.Sprintf("id:%06d,%s", id, describe)
}

// CrashFilename formats crashes/id:NNNNNN,sig:SS,<op-description>.
func CrashFilename(id uint64, sig int, opDescription string) string {
	return fmt.Sprintf("id:%06d,sig:%02d,%s", id, sig, opDescription)
}

// HangFilename formats hangs/id:NNNNNN,<op-description>.
func HangFilename(id uint64, opDescription string) string {
	return fmt.Sprintf("id:%06d,%s", id, opDescription)
}
