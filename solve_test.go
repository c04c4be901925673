// solve_test.go -- tests for per-group candidate enumeration, the
// mixed-radix odometer, and SolveOneBump.

package packx

import "testing"

func TestCandidatesForGroupFindsKnownSeed(t *testing.T) {
	assert := newAsserter(t)

	pk := fixedPubKey()
	var tbl SeedTable
	buildOneBumpInto(DefaultOracle, pk, 0, &tbl)

	var target [GroupSize]byte
	for i := range target {
		target[i] = chunkHash(DefaultOracle, pk, 0, 42, byte(i))
	}

	cands := candidatesForGroup(&tbl, target)
	found := false
	for _, c := range cands {
		if c.seed == 42 {
			found = true
			for i, n := range c.nonces {
				got := chunkHash(DefaultOracle, pk, 0, 42, n)
				assert(got == target[i], "candidate nonce %d for seed 42 byte %d hashes to %d, want %d", n, i, got, target[i])
			}
		}
	}
	assert(found, "seed 42 should appear as a candidate since it was used to construct every target byte")
}

func TestCandidatesForGroupEmptyWhenNoSeedCovers(t *testing.T) {
	assert := newAsserter(t)

	// An empty table (no presence bit set for any seed) yields no
	// candidates at all.
	var empty SeedTable
	target := [GroupSize]byte{1, 2, 3, 4, 5, 6, 7, 8}
	cands := candidatesForGroup(&empty, target)
	assert(len(cands) == 0, "an all-empty table must yield zero candidates, got %d", len(cands))
}

func TestAdvanceOdometerCountsThroughAllCombinations(t *testing.T) {
	assert := newAsserter(t)

	var cands [NumGroups][]seedCandidate
	order := make([]int, NumGroups)
	sizes := [NumGroups]int{2, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	want := 1
	for i := range order {
		order[i] = i
		cands[i] = make([]seedCandidate, sizes[i])
		want *= sizes[i]
	}

	idx := make([]int, NumGroups)
	count := 1
	for advanceOdometer(idx, order, cands) {
		count++
	}
	assert(count == want, "odometer should enumerate %d combinations, got %d", want, count)
}

func TestSolveOneBumpFindsReconstructingSolution(t *testing.T) {
	assert := newAsserter(t)

	pk := fixedPubKey()
	var tbl SeedTable
	buildOneBumpInto(DefaultOracle, pk, 0, &tbl)

	var data [DataSize]byte
	for g := 0; g < NumGroups; g++ {
		for i := 0; i < GroupSize; i++ {
			idx := g*GroupSize + i
			data[idx] = chunkHash(DefaultOracle, pk, 0, byte(g), byte(i))
		}
	}

	sol, ok := solveOneBump(DefaultOracle, data, 0, &tbl, 0)
	assert(ok, "solveOneBump should find a solution at difficulty 0 for data constructed from this table")
	assert(sol.Bump == 0, "returned solution must carry the bump it was solved for")

	got := unpack(DefaultOracle, pk, sol)
	assert(got == data, "unpacking the returned solution must reproduce the original data")
}

func TestSolveOneBumpFailsWhenGroupHasNoCandidate(t *testing.T) {
	assert := newAsserter(t)

	pk := fixedPubKey()
	var tbl SeedTable
	buildOneBumpInto(DefaultOracle, pk, 0, &tbl)

	// Corrupt the table so that seed/target coverage for group 0 is wiped
	// out entirely, guaranteeing no candidate exists for it.
	for s := 0; s < 256; s++ {
		tbl.Present[s] = presenceSet{}
	}

	var data [DataSize]byte
	_, ok := solveOneBump(DefaultOracle, data, 0, &tbl, 0)
	assert(!ok, "solveOneBump must fail when a group has zero candidates")
}

func TestSolveOneBumpUnreachableDifficultyFails(t *testing.T) {
	assert := newAsserter(t)

	pk := fixedPubKey()
	var tbl SeedTable
	buildOneBumpInto(DefaultOracle, pk, 0, &tbl)

	var data [DataSize]byte
	for g := 0; g < NumGroups; g++ {
		for i := 0; i < GroupSize; i++ {
			idx := g*GroupSize + i
			data[idx] = chunkHash(DefaultOracle, pk, 0, byte(g), byte(i))
		}
	}

	_, ok := solveOneBump(DefaultOracle, data, 0, &tbl, DigestSize*8+1)
	assert(!ok, "a difficulty higher than the digest width can never be met")
}
