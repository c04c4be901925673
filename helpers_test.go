// helpers_test.go - helper routines for tests

package packx

import (
	"fmt"
	"runtime"
	"testing"
)

func newAsserter(t *testing.T) func(cond bool, msg string, args ...interface{}) {
	return func(cond bool, msg string, args ...interface{}) {
		if cond {
			return
		}

		_, file, line, ok := runtime.Caller(1)
		if !ok {
			file = "???"
			line = 0
		}

		s := fmt.Sprintf(msg, args...)
		t.Fatalf("%s: %d: Assertion failed: %s\n", file, line, s)
	}
}

// fixedPubKey and fixedData are the literal fixtures from the testable
// properties in spec.md section 8, scenario 1.
func fixedPubKey() [PubKeySize]byte {
	var pk [PubKeySize]byte
	for i := range pk {
		pk[i] = 0x01
	}
	return pk
}

func fixedData() [DataSize]byte {
	var d [DataSize]byte
	for i := range d {
		d[i] = 0x2a
	}
	return d
}

// randPubKey and randData produce fixtures for the property-style tests;
// randomness here is purely a test-fixture concern (spec.md explicitly
// treats "random seeding for tests" as an external collaborator).
func randPubKey() [PubKeySize]byte {
	var pk [PubKeySize]byte
	copy(pk[:], randbytes(PubKeySize))
	return pk
}

func randData() [DataSize]byte {
	var d [DataSize]byte
	copy(d[:], randbytes(DataSize))
	return d
}
