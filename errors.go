// errors.go - public errors exposed by packx

package packx

import (
	"errors"
	"fmt"
)

func errShortWrite(who string, n, exp int) error {
	return fmt.Errorf("%s: incomplete write; exp %d, saw %d", who, exp, n)
}

var (
	// ErrBadLength is returned by Deserialize when the input is not
	// exactly SolutionSize bytes long.
	ErrBadLength = errors.New("packx: solution must be exactly 145 bytes")

	// ErrNoSolution is returned by the CLI and batch helpers when a
	// solve exhausted its bump (or bump+data) search space. Solve and
	// SolveWithMemory themselves report this as (nil, false), per the
	// "Option" shape spec.md requires for the core.
	ErrNoSolution = errors.New("packx: no solution found")

	// ErrCacheClosed is returned by MemoryCache once Close has been called.
	ErrCacheClosed = errors.New("packx: memory cache is closed")

	// ErrChecksum is returned by LoadMemory when the persisted file's
	// trailer checksum does not match its contents.
	ErrChecksum = errors.New("packx: persisted memory failed checksum")

	// ErrBadMagic is returned by LoadMemory when the file does not carry
	// the packx memory-pool magic number.
	ErrBadMagic = errors.New("packx: not a packx memory file")
)
