// batch.go -- solving many independent data blocks against one public
// key, supplementing spec.md with the caller shape
// original_source/benches/large_file.rs exercises: a stream of 128-byte
// blocks chunked externally (spec.md section 1 keeps chunking a caller
// concern) and solved against a single SolverMemory.
//
// This is pure composition over BuildMemory/SolveWithMemory: it adds no
// new core semantics, only the parallel-across-blocks scheduling spec.md
// section 5 point 2 describes ("each solve is read-only over the memory
// ... trivially parallel across blocks").

package packx

import (
	"fmt"
	"runtime"
	"sync"
)

// SolveMany solves every block in blocks against mem, returning one
// Solution per block in the same order as the input. If any block cannot
// be solved, SolveMany returns an error naming its index and a nil slice;
// it does not return partial results, matching spec.md section 7's "no
// partial or inconsistent state" rule for the core.
func SolveMany(mem *SolverMemory, blocks [][DataSize]byte, difficulty int) ([]*Solution, error) {
	out := make([]*Solution, len(blocks))
	failed := make([]bool, len(blocks))

	ncpu := runtime.NumCPU()
	if ncpu > len(blocks) {
		ncpu = len(blocks)
	}
	if ncpu < 1 {
		ncpu = 1
	}

	var wg sync.WaitGroup
	work := make(chan int)

	for w := 0; w < ncpu; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				sol, ok := SolveWithMemory(blocks[i], mem, difficulty)
				if !ok {
					failed[i] = true
					continue
				}
				out[i] = sol
			}
		}()
	}

	for i := range blocks {
		work <- i
	}
	close(work)
	wg.Wait()

	for i, f := range failed {
		if f {
			return nil, fmt.Errorf("packx: block %d: %w", i, ErrNoSolution)
		}
	}
	return out, nil
}
