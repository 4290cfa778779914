package radixt

import "math/bits"

// bitfield256 tracks which of the 256 possible first bytes are present
// among a set of edges, stored as 256 bits across 4 uint64 words. Stats
// sets one bit per root child and pop-counts them to report the root's
// fan-out.
type bitfield256 [4]uint64

func (p *bitfield256) set(index byte) {
	(*p)[index>>6] |= 1 << (index & 0x3F)
}

func (p *bitfield256) totalBitCount() int {
	var count int
	for i := range p {
		count += bits.OnesCount64(p[i])
	}
	return count
}
