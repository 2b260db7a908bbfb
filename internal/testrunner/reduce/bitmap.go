package reduce

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// laneWords reports how many bytes one scan step covers on this
// platform. AVX2-capable x86 targets scan 64-bit lanes; everything
// else falls back to 32-bit lanes, mirroring the source's WORD_SIZE_64
// compile-time split without needing a second build per architecture.
func laneWords() int {
	if cpu.X86.HasAVX2 {
		return 8
	}

	return 4
}

// CountBits returns the number of set bits in bitmap. It is optimized for
// sparse data: a fully-set word short-circuits to its full bit width
// without a per-bit scan.
func CountBits(bitmap []byte) uint64 {
	var total uint64

	lane := laneWords()
	n := len(bitmap)
	i := 0

	for ; i+lane <= n; i += lane {
		if lane == 8 {
			w := binary.LittleEndian.Uint64(bitmap[i : i+8])
			if w == ^uint64(0) {
				total += 64
				continue
			}

			total += uint64(bits.OnesCount64(w))
		} else {
			w := binary.LittleEndian.Uint32(bitmap[i : i+4])
			if w == ^uint32(0) {
				total += 32
				continue
			}

			total += uint64(bits.OnesCount32(w))
		}
	}

	for ; i < n; i++ {
		total += uint64(bits.OnesCount8(bitmap[i]))
	}

	return total
}

// CountBytes returns the number of non-zero bytes in bitmap. This is the
// canonical definition of "bitmap size" used by the reduction classifier.
func CountBytes(bitmap []byte) uint64 {
	var total uint64

	for _, b := range bitmap {
		if b != 0 {
			total++
		}
	}

	return total
}

// CountNonSaturatedBytes returns the number of bytes in bitmap that are
// not 0xFF. It is typically called on a virgin bitmap for reporting.
func CountNonSaturatedBytes(bitmap []byte) uint64 {
	var total uint64

	for _, b := range bitmap {
		if b != 0xFF {
			total++
		}
	}

	return total
}
