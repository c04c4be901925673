// solve_cmd.go -- 'solve' command: solve stdin (exactly 128 bytes)
// against a hex-encoded pubkey.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	flag "github.com/opencoff/pflag"

	"github.com/spool-labs/packx"
)

type solveCommand struct{}

func init() {
	registerCommand("solve", &solveCommand{})
}

func (c *solveCommand) run(args []string, opt *Option) error {
	var pkHex string

	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	fs.StringVarP(&pkHex, "pk", "p", "", "32-byte hex-encoded public key")
	fs.Usage = func() {
		fmt.Printf(`Usage: solve -pk HEX < data.bin

Reads exactly 128 bytes of data from stdin and solves them against the
given public key, printing the 145-byte solution in hex.

Options:
`)
		fs.PrintDefaults()
		os.Exit(0)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	pkb, err := hex.DecodeString(pkHex)
	if err != nil || len(pkb) != packx.PubKeySize {
		return fmt.Errorf("solve: -pk must be %d hex-encoded bytes", packx.PubKeySize)
	}
	var pk [packx.PubKeySize]byte
	copy(pk[:], pkb)

	var data [packx.DataSize]byte
	n, err := io.ReadFull(os.Stdin, data[:])
	if err != nil {
		return fmt.Errorf("solve: need %d bytes of data on stdin, got %d: %w", packx.DataSize, n, err)
	}

	sol, ok := packx.Solve(pk, data, opt.difficulty)
	if !ok {
		return fmt.Errorf("solve: %w", packx.ErrNoSolution)
	}

	packed := packx.Serialize(sol)
	fmt.Println(hex.EncodeToString(packed[:]))
	return nil
}
