// solve.go -- the group solver: per-group candidate enumeration and the
// mixed-radix Cartesian-product search over those candidates, as
// described in spec.md section 4.3.

package packx

import "sort"

// seedCandidate is one seed that covers every target byte of a group,
// together with the (already-looked-up) nonce for each of that group's
// eight bytes.
type seedCandidate struct {
	seed   byte
	nonces [GroupSize]byte
}

// candidatesForGroup returns every seed in table whose presence bitset
// covers all eight bytes of target, each paired with the nonces that
// produce them.
func candidatesForGroup(table *SeedTable, target [GroupSize]byte) []seedCandidate {
	var out []seedCandidate
	for s := 0; s < 256; s++ {
		present := &table.Present[s]
		if !present.coversAll(target) {
			continue
		}

		row := &table.Nonces[s]
		var nonces [GroupSize]byte
		for i, t := range target {
			nonces[i] = row[t]
		}
		out = append(out, seedCandidate{seed: byte(s), nonces: nonces})
	}
	return out
}

// SolveOneBump searches a single bump's SeedTable for a Solution that
// reconstructs data and meets difficulty, returning (nil, false) if this
// bump cannot solve it.
func SolveOneBump(data [DataSize]byte, bump byte, table *SeedTable, difficulty int) (*Solution, bool) {
	return solveOneBump(DefaultOracle, data, bump, table, difficulty)
}

func solveOneBump(o Oracle, data [DataSize]byte, bump byte, table *SeedTable, difficulty int) (*Solution, bool) {
	// Difficulty never exceeds the digest's bit width, so no tuple can meet
	// a higher threshold: report failure without enumerating.
	if difficulty > DigestSize*8 {
		return nil, false
	}

	var cands [NumGroups][]seedCandidate
	for g := 0; g < NumGroups; g++ {
		var target [GroupSize]byte
		copy(target[:], data[g*GroupSize:(g+1)*GroupSize])

		cands[g] = candidatesForGroup(table, target)
		if len(cands[g]) == 0 {
			// a group with no candidate means this bump is dead.
			return nil, false
		}
	}

	// Ordering groups by ascending candidate count only changes the
	// enumeration order, not the candidate set, since difficulty
	// depends on the full 145-byte solution rather than any one group.
	// Per spec.md's design notes, skip the sort entirely at D=0, where
	// the first tuple enumerated almost always satisfies the (trivial)
	// difficulty predicate anyway.
	order := make([]int, NumGroups)
	for i := range order {
		order[i] = i
	}
	if difficulty > 0 {
		sort.Slice(order, func(i, j int) bool {
			return len(cands[order[i]]) < len(cands[order[j]])
		})
	}

	idx := make([]int, NumGroups) // position 0 is the fastest-moving odometer wheel
	sol := Solution{Bump: bump}

	for {
		for pos, g := range order {
			c := cands[g][idx[pos]]
			sol.Seeds[g] = c.seed
			copy(sol.Nonces[g*GroupSize:(g+1)*GroupSize], c.nonces[:])
		}

		packed := Serialize(&sol)
		digest := o.Sum(packed[:])
		if Difficulty(digest) >= difficulty {
			out := sol
			return &out, true
		}

		if !advanceOdometer(idx, order, cands) {
			return nil, false
		}
	}
}

// advanceOdometer increments the mixed-radix counter represented by idx,
// carrying through positions in order (position 0 fastest). It reports
// whether the counter still has a valid state, i.e. whether it has not
// wrapped all the way around.
func advanceOdometer(idx []int, order []int, cands [NumGroups][]seedCandidate) bool {
	for pos := 0; pos < len(order); pos++ {
		idx[pos]++
		if idx[pos] < len(cands[order[pos]]) {
			return true
		}
		idx[pos] = 0
	}
	return false
}
