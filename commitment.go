// commitment.go -- a compact fingerprint of a Solution, supplementing
// spec.md with a feature the original source carried (get_commitment in
// original_source/src/lib.rs) that the distillation dropped. It lets a
// caller compare or log solutions without re-deriving or re-transmitting
// the full 145-byte certificate.

package packx

// Commitment returns a 32-byte fingerprint of sol. It is the same digest
// Verify computes over the serialized solution for its difficulty check,
// rather than a hash of a separate (seed, nonces) tuple the way the
// original source's get_commitment did. Commitment computes that digest
// itself; it does not share a hash invocation with Verify.
func Commitment(sol *Solution) [DigestSize]byte {
	packed := Serialize(sol)
	return DefaultOracle.Sum(packed[:])
}
