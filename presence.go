// presence.go -- a fixed 256-bit presence bitset, one per seed in a
// SeedTable. Modeled on the teacher's bitVector (bitvector.go) but
// specialized to a compile-time-fixed width: spec.md section 9's design
// notes call out a 4xuint64 word layout as the preferred representation
// for the group solver's hot path (eight independent bit tests per seed,
// 256 seeds, 16 groups per solve).

package packx

import "math/bits"

// presenceSet marks which of the 256 possible target bytes are reachable
// for a given (bump, seed) by some nonce.
type presenceSet [4]uint64

func (p *presenceSet) set(target byte) {
	p[target>>6] |= 1 << (target & 63)
}

func (p *presenceSet) isSet(target byte) bool {
	return p[target>>6]&(1<<(target&63)) != 0
}

// coversAll reports whether every byte in targets has its bit set. This is
// the group-candidate test from spec.md section 4.3 step 1.
func (p *presenceSet) coversAll(targets [GroupSize]byte) bool {
	for _, t := range targets {
		if !p.isSet(t) {
			return false
		}
	}
	return true
}

// popcount returns the number of reachable target bytes.
func (p *presenceSet) popcount() int {
	n := 0
	for _, w := range p {
		n += bits.OnesCount64(w)
	}
	return n
}
