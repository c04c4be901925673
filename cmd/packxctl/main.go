// main.go -- packxctl: a thin CLI around the packx library. Per spec.md
// section 6, the CLI/bench harness is an external collaborator of the
// core, not part of it; packxctl never implements solving/verifying logic
// itself, only drives the public packx API.

package main

import (
	"fmt"
	"os"

	flag "github.com/opencoff/pflag"
)

func main() {
	var opt Option

	usage := fmt.Sprintf(
		`%s - solve, verify and benchmark packx certificates

Usage: %s [global-options] CMD CMD-ARGS...

CMD is an operation to be performed and CMD-ARGS are operation specific
arguments. The list of supported operations are:

  demo [options]               -- build a memory pool and solve a demo block
  solve -pk HEX [options]      -- solve 128 bytes of data (read from stdin) against a pubkey
  verify -pk HEX -sol HEX      -- verify a 145-byte hex solution against data on stdin
  bench [options]              -- run the solve/verify benchmarks at a few difficulties

Options:
`, os.Args[0], os.Args[0])

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(os.Stdout)
	fs.BoolVarP(&opt.verbose, "verbose", "V", false, "Show verbose output")
	fs.IntVarP(&opt.difficulty, "difficulty", "d", 0, "Proof-of-work difficulty (leading zero bits)")
	fs.Usage = func() {
		fmt.Printf(usage)
		fs.PrintDefaults()
		os.Exit(0)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		die("%s", err)
	}

	args := fs.Args()
	if len(args) < 1 {
		fmt.Printf(usage)
		fs.PrintDefaults()
		os.Exit(0)
	}

	if err := runCommand(args, &opt); err != nil {
		die("%s", err)
	}
}

func die(f string, v ...interface{}) {
	warn(f, v...)
	os.Exit(1)
}

func warn(f string, v ...interface{}) {
	z := fmt.Sprintf("%s: %s", os.Args[0], f)
	s := fmt.Sprintf(z, v...)
	if n := len(s); s[n-1] != '\n' {
		s += "\n"
	}

	os.Stderr.WriteString(s)
	os.Stderr.Sync()
}
