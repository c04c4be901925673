// demo_cmd.go -- 'demo' command: build a memory pool for a deterministic
// pubkey and solve one deterministic data block, printing the solution
// in hex.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	flag "github.com/opencoff/pflag"

	"github.com/spool-labs/packx"
)

type demoCommand struct{}

func init() {
	registerCommand("demo", &demoCommand{})
}

func (c *demoCommand) run(args []string, opt *Option) error {
	var seed uint64

	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	fs.Uint64VarP(&seed, "seed", "s", 1, "Deterministic fixture seed")
	fs.Usage = func() {
		fmt.Printf(`Usage: demo [options]

Builds a packx memory pool for a seeded demo pubkey and solves one
seeded 128-byte data block against it.

Options:
`)
		fs.PrintDefaults()
		os.Exit(0)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	var pk [packx.PubKeySize]byte
	copy(pk[:], fixtureBytes(seed, packx.PubKeySize))

	var data [packx.DataSize]byte
	copy(data[:], fixtureBytes(seed^0x9e3779b97f4a7c15, packx.DataSize))

	t0 := time.Now()
	mem := packx.BuildMemory(pk)
	opt.Printf("built memory pool in %s\n", time.Since(t0))

	t0 = time.Now()
	sol, ok := packx.SolveWithMemory(data, mem, opt.difficulty)
	if !ok {
		return fmt.Errorf("demo: no solution at difficulty %d", opt.difficulty)
	}
	opt.Printf("solved in %s\n", time.Since(t0))

	packed := packx.Serialize(sol)
	fmt.Printf("pubkey:   %s\n", hex.EncodeToString(pk[:]))
	fmt.Printf("solution: %s\n", hex.EncodeToString(packed[:]))
	fmt.Printf("verified: %v\n", packx.Verify(pk, data, sol, opt.difficulty))
	return nil
}
