// serialize.go -- the fixed-layout, memcpy-style wire format for a
// Solution: bump(1) || seeds(16) || nonces(128) = 145 bytes, no padding,
// no length prefix, no byte swapping (every field is already a byte or
// byte array, per spec.md section 6).

package packx

// Serialize packs sol into its 145-byte wire form.
func Serialize(sol *Solution) [SolutionSize]byte {
	var out [SolutionSize]byte
	out[0] = sol.Bump
	copy(out[1:1+NumGroups], sol.Seeds[:])
	copy(out[1+NumGroups:], sol.Nonces[:])
	return out
}

// Deserialize unpacks a 145-byte wire form back into a Solution. It is
// total over any input of exactly SolutionSize bytes; shorter or longer
// inputs are rejected with ErrBadLength, per spec.md section 7's "reject
// at the boundary" rule for the caller layer.
func Deserialize(b []byte) (*Solution, error) {
	if len(b) != SolutionSize {
		return nil, ErrBadLength
	}

	var sol Solution
	sol.Bump = b[0]
	copy(sol.Seeds[:], b[1:1+NumGroups])
	copy(sol.Nonces[:], b[1+NumGroups:])
	return &sol, nil
}
