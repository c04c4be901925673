// persist_test.go -- tests for SaveMemory/LoadMemory's round trip and
// checksum verification, using small synthetic SolverMemory values rather
// than a full 256-bump build so the suite doesn't pay that cost twice.

package packx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func syntheticMemory(pk [PubKeySize]byte) *SolverMemory {
	mem := &SolverMemory{PubKey: pk}
	buildOneBumpInto(DefaultOracle, pk, 0, &mem.Tables[0])
	buildOneBumpInto(DefaultOracle, pk, 1, &mem.Tables[1])
	return mem
}

func TestSaveLoadMemoryRoundTrip(t *testing.T) {
	assert := newAsserter(t)

	pk := fixedPubKey()
	mem := syntheticMemory(pk)

	fn := filepath.Join(t.TempDir(), "mem.packx")
	err := SaveMemory(fn, mem)
	assert(err == nil, "SaveMemory failed: %v", err)

	loaded, err := LoadMemory(fn)
	assert(err == nil, "LoadMemory failed: %v", err)
	defer loaded.Close()

	assert(loaded.PubKey == pk, "loaded PubKey must match the saved one")
	assert(loaded.Tables[0] == mem.Tables[0], "loaded bump-0 table must match the saved one")
	assert(loaded.Tables[1] == mem.Tables[1], "loaded bump-1 table must match the saved one")
}

func TestLoadMemoryRejectsBadMagic(t *testing.T) {
	assert := newAsserter(t)

	pk := fixedPubKey()
	mem := syntheticMemory(pk)

	fn := filepath.Join(t.TempDir(), "mem.packx")
	err := SaveMemory(fn, mem)
	assert(err == nil, "SaveMemory failed: %v", err)

	b, err := os.ReadFile(fn)
	assert(err == nil, "ReadFile failed: %v", err)
	b[0] ^= 0xff
	err = os.WriteFile(fn, b, 0600)
	assert(err == nil, "WriteFile failed: %v", err)

	_, err = LoadMemory(fn)
	assert(errors.Is(err, ErrBadMagic), "corrupted magic must yield ErrBadMagic, got %v", err)
}

func TestLoadMemoryRejectsTamperedBody(t *testing.T) {
	assert := newAsserter(t)

	pk := fixedPubKey()
	mem := syntheticMemory(pk)

	fn := filepath.Join(t.TempDir(), "mem.packx")
	err := SaveMemory(fn, mem)
	assert(err == nil, "SaveMemory failed: %v", err)

	b, err := os.ReadFile(fn)
	assert(err == nil, "ReadFile failed: %v", err)

	pgsz := os.Getpagesize()
	bodyOff := pgsz // header is 64 bytes, always rounds up to one page on any realistic page size
	b[bodyOff] ^= 0xff
	err = os.WriteFile(fn, b, 0600)
	assert(err == nil, "WriteFile failed: %v", err)

	_, err = LoadMemory(fn)
	assert(errors.Is(err, ErrChecksum), "tampered body must fail checksum verification, got %v", err)
}

func TestLoadMemoryRejectsMissingFile(t *testing.T) {
	assert := newAsserter(t)

	_, err := LoadMemory(filepath.Join(t.TempDir(), "does-not-exist.packx"))
	assert(err != nil, "loading a nonexistent file must return an error")
}

func TestSaveMemoryDoesNotLeaveTempFileOnSuccess(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	pk := fixedPubKey()
	mem := syntheticMemory(pk)
	fn := filepath.Join(dir, "mem.packx")

	err := SaveMemory(fn, mem)
	assert(err == nil, "SaveMemory failed: %v", err)

	entries, err := os.ReadDir(dir)
	assert(err == nil, "ReadDir failed: %v", err)
	assert(len(entries) == 1, "expected exactly the final file to remain, found %d entries", len(entries))
	assert(entries[0].Name() == "mem.packx", "expected mem.packx, found %s", entries[0].Name())
}
