// verify_cmd.go -- 'verify' command: verify a hex solution against data
// read from stdin.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	flag "github.com/opencoff/pflag"

	"github.com/spool-labs/packx"
)

type verifyCommand struct{}

func init() {
	registerCommand("verify", &verifyCommand{})
}

func (c *verifyCommand) run(args []string, opt *Option) error {
	var pkHex, solHex string

	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	fs.StringVarP(&pkHex, "pk", "p", "", "32-byte hex-encoded public key")
	fs.StringVarP(&solHex, "sol", "s", "", "145-byte hex-encoded solution")
	fs.Usage = func() {
		fmt.Printf(`Usage: verify -pk HEX -sol HEX < data.bin

Reads exactly 128 bytes of data from stdin and reports whether sol is a
valid solution for it under pk at the given difficulty.

Options:
`)
		fs.PrintDefaults()
		os.Exit(0)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	pkb, err := hex.DecodeString(pkHex)
	if err != nil || len(pkb) != packx.PubKeySize {
		return fmt.Errorf("verify: -pk must be %d hex-encoded bytes", packx.PubKeySize)
	}
	var pk [packx.PubKeySize]byte
	copy(pk[:], pkb)

	solb, err := hex.DecodeString(solHex)
	if err != nil {
		return fmt.Errorf("verify: -sol must be hex-encoded: %w", err)
	}
	sol, err := packx.Deserialize(solb)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	var data [packx.DataSize]byte
	n, err := io.ReadFull(os.Stdin, data[:])
	if err != nil {
		return fmt.Errorf("verify: need %d bytes of data on stdin, got %d: %w", packx.DataSize, n, err)
	}

	ok := packx.Verify(pk, data, sol, opt.difficulty)
	fmt.Println(ok)
	if !ok {
		os.Exit(1)
	}
	return nil
}
