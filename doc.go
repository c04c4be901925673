// Package packx packs an arbitrary 128-byte data block into a fixed-size
// 145-byte certificate (a Solution) such that, given a 32-byte public key,
// the original data can be deterministically reconstructed by evaluating a
// hash function on each (public key, bump, seed, nonce) tuple.
//
// A Solution additionally satisfies a proof-of-work difficulty predicate:
// the hash of its serialized bytes must begin with at least D leading zero
// bits. Solving is expensive (it precomputes a per-bump inversion table and
// searches a Cartesian product of per-group seed candidates); verifying is
// cheap, which is what makes packx suitable for a constrained verifier such
// as an on-chain program.
//
// The primary entry points are BuildMemory, Solve, SolveWithMemory and
// Verify. Callers that solve many data blocks against the same public key
// should call BuildMemory once (it allocates roughly 18 MiB) and reuse the
// resulting SolverMemory, or wrap it in a MemoryCache to bound how many such
// tables stay resident at once.
package packx
