// bench_cmd.go -- 'bench' command: sweep solve/verify timings across a
// few difficulties, mirroring original_source/benches/difficulty.rs's
// structure (a fixed SolverMemory, one fresh random block per iteration,
// a handful of difficulty rungs).

package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/opencoff/pflag"

	"github.com/spool-labs/packx"
)

type benchCommand struct{}

func init() {
	registerCommand("bench", &benchCommand{})
}

func (c *benchCommand) run(args []string, opt *Option) error {
	var iters int

	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	fs.IntVarP(&iters, "iters", "n", 8, "Iterations per difficulty rung")
	fs.Usage = func() {
		fmt.Printf(`Usage: bench [options]

Builds one memory pool and times Solve/Verify across difficulty rungs
0, 4, 8 and 12, the same ladder original_source/benches/difficulty.rs used.

Options:
`)
		fs.PrintDefaults()
		os.Exit(0)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	var pk [packx.PubKeySize]byte
	if _, err := io.ReadFull(rand.Reader, pk[:]); err != nil {
		return err
	}

	t0 := time.Now()
	mem := packx.BuildMemory(pk)
	fmt.Printf("build_memory: %s\n", time.Since(t0))

	for _, d := range []int{0, 4, 8, 12} {
		var total time.Duration
		var sol *packx.Solution
		var data [packx.DataSize]byte

		for i := 0; i < iters; i++ {
			if _, err := io.ReadFull(rand.Reader, data[:]); err != nil {
				return err
			}

			start := time.Now()
			s, ok := packx.SolveWithMemory(data, mem, d)
			total += time.Since(start)
			if !ok {
				return fmt.Errorf("bench: no solution at difficulty %d", d)
			}
			sol = s
		}
		fmt.Printf("solve_difficulty_%d: avg %s over %d iters\n", d, total/time.Duration(iters), iters)

		start := time.Now()
		for i := 0; i < iters; i++ {
			packx.Verify(pk, data, sol, d)
		}
		fmt.Printf("verify_difficulty_%d: avg %s over %d iters\n", d, time.Since(start)/time.Duration(iters), iters)
	}

	return nil
}
