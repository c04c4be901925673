// packx.go -- the Solution certificate and the public library surface:
// BuildMemory, Solve, SolveWithMemory, Unpack and Verify. The group solver
// itself lives in solve.go; the per-bump inversion tables live in table.go.

package packx

const (
	// PubKeySize is the width, in bytes, of the public key bound into
	// every hash.
	PubKeySize = 32

	// DataSize is the width, in bytes, of the payload a Solution packs.
	DataSize = 128

	// NumGroups is the number of eight-byte groups data is split into.
	NumGroups = 16

	// GroupSize is the number of bytes (and nonces) per group.
	GroupSize = DataSize / NumGroups

	// NumBumps is the size of the outer restart counter's space.
	NumBumps = 256

	// SolutionSize is the exact wire size of a serialized Solution:
	// bump(1) + seeds(16) + nonces(128).
	SolutionSize = 1 + NumGroups + DataSize
)

// Solution is the prover's certificate: a bump byte, one seed per group,
// and one nonce per data byte. It is a value type — copyable, with no
// pointers — matching spec.md section 3's "Solutions are value types"
// ownership note.
type Solution struct {
	Bump   byte
	Seeds  [NumGroups]byte
	Nonces [DataSize]byte
}

// BuildMemory precomputes the per-bump inversion tables for every one of
// the 256 possible bumps against pk. The returned SolverMemory is
// read-only and safe for concurrent use by many Solve calls once
// construction returns (spec.md section 5).
func BuildMemory(pk [PubKeySize]byte) *SolverMemory {
	return buildMemory(DefaultOracle, pk)
}

// Solve is the convenience form of SolveWithMemory: it builds a fresh
// SolverMemory for pk and discards it after one solve. Callers solving
// many blocks against the same key should call BuildMemory once and reuse
// it via SolveWithMemory instead — the 18 MiB precomputation dominates the
// cost of a single solve.
func Solve(pk [PubKeySize]byte, data [DataSize]byte, difficulty int) (*Solution, bool) {
	mem := BuildMemory(pk)
	return SolveWithMemory(data, mem, difficulty)
}

// SolveWithMemory iterates bump 0..255 against a precomputed SolverMemory,
// returning the first Solution that reconstructs data and meets
// difficulty, or (nil, false) if every bump was exhausted.
func SolveWithMemory(data [DataSize]byte, mem *SolverMemory, difficulty int) (*Solution, bool) {
	for bump := 0; bump < NumBumps; bump++ {
		if sol, ok := SolveOneBump(data, byte(bump), &mem.Tables[bump], difficulty); ok {
			debugf("packx: solved at bump %d (difficulty %d)", bump, difficulty)
			return sol, true
		}
	}
	debugf("packx: exhausted all %d bumps at difficulty %d", NumBumps, difficulty)
	return nil, false
}

// Unpack reconstructs the 128-byte data a Solution was built from, given
// the public key it was solved against. It performs no difficulty check;
// pair it with Verify when both are required.
func Unpack(pk [PubKeySize]byte, sol *Solution) [DataSize]byte {
	return unpack(DefaultOracle, pk, sol)
}

func unpack(o Oracle, pk [PubKeySize]byte, sol *Solution) [DataSize]byte {
	var data [DataSize]byte
	for g := 0; g < NumGroups; g++ {
		seed := sol.Seeds[g]
		for i := 0; i < GroupSize; i++ {
			idx := g*GroupSize + i
			data[idx] = chunkHash(o, pk, sol.Bump, seed, sol.Nonces[idx])
		}
	}
	return data
}

// Verify reports whether sol both reconstructs data under pk and meets
// difficulty. It is total: every input yields true or false, never an
// error (spec.md section 7).
func Verify(pk [PubKeySize]byte, data [DataSize]byte, sol *Solution, difficulty int) bool {
	if Unpack(pk, sol) != data {
		return false
	}
	digest := DefaultOracle.Sum(Serialize(sol)[:])
	return Difficulty(digest) >= difficulty
}
