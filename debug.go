// debug.go -- a gated debug logger for the solver's internal loop,
// modeled on the teacher's bbhash.go "printf" helper: off by default, no
// logging framework, a straight write to stderr when enabled.

package packx

import (
	"fmt"
	"os"
)

// debug toggles packx's internal instrumentation. It is a package var
// rather than a build tag so it can be flipped at runtime; it is
// unexported, so only code inside package packx can set it (packxctl's
// -V flag does not touch it).
var debug = false

func debugf(f string, v ...interface{}) {
	if !debug {
		return
	}

	s := fmt.Sprintf(f, v...)
	if n := len(s); n == 0 || s[n-1] != '\n' {
		s += "\n"
	}

	os.Stderr.WriteString(s)
}
