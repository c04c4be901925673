// hash.go - the hash oracle: H(slices...) -> 32 bytes, H0 = H(...)[0], and
// the leading-zero-bit difficulty predicate over a digest.
//
// spec.md section 6 requires a fixed 256-bit hash, deployable either as a
// software implementation or a host-provided one (e.g. a blockchain
// runtime's syscall), with both bit-identical. packx models that as the
// Oracle interface below: production code always uses blake3Oracle; tests
// substitute a recordingOracle (hash_test.go) to assert on the exact bytes
// fed to the hash without depending on BLAKE3's internals.

package packx

import (
	"lukechampine.com/blake3"
)

// DigestSize is the width, in bytes, of the hash oracle's output.
const DigestSize = 32

// Oracle is the hash contract spec.md section 4.1 describes: a digest over
// the sequential concatenation of zero or more byte slices, identical to
// hashing their concatenation in one shot.
type Oracle interface {
	// Sum hashes the concatenation of parts and returns a DigestSize
	// byte digest.
	Sum(parts ...[]byte) [DigestSize]byte
}

// blake3Oracle is the reference hash oracle: BLAKE3 with its native
// 32-byte output. BLAKE3's Write/Sum pair concatenates exactly the way
// the Oracle contract requires.
type blake3Oracle struct{}

// DefaultOracle is the oracle every exported packx function uses. It is a
// package-level var (rather than a hidden constant) so a deployment that
// must swap in a host-provided implementation of the same hash can do so
// once, globally, before calling BuildMemory/Solve/Verify — per spec.md
// section 6, any replacement MUST be bit-identical to blake3Oracle.
var DefaultOracle Oracle = blake3Oracle{}

func (blake3Oracle) Sum(parts ...[]byte) [DigestSize]byte {
	h := blake3.New(DigestSize, nil)
	for _, p := range parts {
		h.Write(p)
	}
	var out [DigestSize]byte
	copy(out[:], h.Sum(nil))
	return out
}

// chunkHash computes H0(pk, bump, seed, nonce): the first byte of the
// oracle's digest over the four chunk-call inputs spec.md section 4.1
// describes. There is deliberately no chunk index mixed in (spec.md
// section 9 notes that a previous revision of the construction did this;
// the current design omits it).
func chunkHash(o Oracle, pk [PubKeySize]byte, bump, seed, nonce byte) byte {
	d := o.Sum(pk[:], []byte{bump}, []byte{seed}, []byte{nonce})
	return d[0]
}

// Difficulty returns the number of leading zero bits in digest, scanned
// most-significant-byte first, stopping as soon as a byte contributes
// fewer than 8 leading zeros.
func Difficulty(digest [DigestSize]byte) int {
	n := 0
	for _, b := range digest {
		if b == 0 {
			n += 8
			continue
		}
		n += leadingZeros8(b)
		break
	}
	return n
}

func leadingZeros8(b byte) int {
	n := 0
	for i := 7; i >= 0; i-- {
		if b&(1<<uint(i)) != 0 {
			break
		}
		n++
	}
	return n
}
