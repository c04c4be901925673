// fixture.go -- reproducible demo fixtures. packxctl's demo subcommand
// needs a pubkey and a data block without pulling in real entropy (bench
// draws its inputs from crypto/rand instead); fasthash.Hash64 expands a small -seed flag into a deterministic
// byte stream the same way the library's own test suite
// (chd_test.go's fasthash.Hash64(hseed, []byte(s))) expands a random seed
// into per-key hashes.

package main

import (
	"encoding/binary"

	"github.com/opencoff/go-fasthash"
)

// fixtureBytes deterministically fills n bytes from seed; each 8-byte
// word is fasthash.Hash64(seed, counter).
func fixtureBytes(seed uint64, n int) []byte {
	out := make([]byte, 0, n)
	var ctr [8]byte
	for i := uint64(0); len(out) < n; i++ {
		binary.LittleEndian.PutUint64(ctr[:], i)
		h := fasthash.Hash64(seed, ctr[:])

		var w [8]byte
		binary.LittleEndian.PutUint64(w[:], h)
		out = append(out, w[:]...)
	}
	return out[:n]
}
