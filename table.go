// table.go -- the seed table builder: per-bump inversion tables mapping
// (seed, target byte) to the smallest nonce that produces it, plus a
// presence bitset per seed. This is the precomputation step spec.md
// section 4.2 describes; section 5 asks for it to run in parallel across
// bumps, which buildMemory does the same way the teacher's bbhash.go
// shards work across runtime.NumCPU() goroutines joined by a WaitGroup.

package packx

import (
	"runtime"
	"sync"
)

// SeedTable is the per-bump inversion map: nonces[seed][target] is the
// smallest nonce n such that H0(pk, bump, seed, n) == target, valid only
// where present[seed] has bit target set.
type SeedTable struct {
	Nonces  [256][256]byte
	Present [256]presenceSet
}

// SolverMemory holds one SeedTable per possible bump, precomputed once for
// a fixed public key and reused across many solves against that key.
type SolverMemory struct {
	PubKey [PubKeySize]byte
	Tables [NumBumps]SeedTable
}

// BuildOneBump constructs the inversion table for a single (pk, bump)
// pair: 65,536 hash invocations, one per (seed, nonce) pair in 0..256 x
// 0..256.
func BuildOneBump(pk [PubKeySize]byte, bump byte) *SeedTable {
	t := &SeedTable{}
	buildOneBumpInto(DefaultOracle, pk, bump, t)
	return t
}

func buildOneBumpInto(o Oracle, pk [PubKeySize]byte, bump byte, t *SeedTable) {
	for seed := 0; seed < 256; seed++ {
		present := &t.Present[seed]
		row := &t.Nonces[seed]
		for nonce := 0; nonce < 256; nonce++ {
			target := chunkHash(o, pk, bump, byte(seed), byte(nonce))
			if present.isSet(target) {
				// first (smallest) nonce wins; later hits on the
				// same (seed, target) are ignored.
				continue
			}
			present.set(target)
			row[target] = byte(nonce)
		}
	}
}

// buildMemory builds all 256 bump tables for pk. The 256 builds are
// independent — each writes only its own SeedTable within mem.Tables — so
// they are sharded across the available CPUs and joined with a single
// barrier, exactly as spec.md section 5 requires: "no synchronization...
// beyond ensuring all writes complete before any reader observes the
// memory".
func buildMemory(o Oracle, pk [PubKeySize]byte) *SolverMemory {
	mem := &SolverMemory{PubKey: pk}

	ncpu := runtime.NumCPU()
	if ncpu > NumBumps {
		ncpu = NumBumps
	}
	if ncpu < 1 {
		ncpu = 1
	}

	share := NumBumps / ncpu
	rem := NumBumps % ncpu

	debugf("packx: building %d bump tables across %d workers", NumBumps, ncpu)

	var wg sync.WaitGroup
	start := 0
	for i := 0; i < ncpu; i++ {
		end := start + share
		if i < rem {
			end++
		}
		if start == end {
			continue
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for bump := lo; bump < hi; bump++ {
				buildOneBumpInto(o, pk, byte(bump), &mem.Tables[bump])
			}
		}(start, end)

		start = end
	}
	wg.Wait()

	return mem
}
