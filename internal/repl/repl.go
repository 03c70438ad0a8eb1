// Package repl drives the line-oriented REPL loop of spec.md §6.1 over
// stdin/stdout.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jbjava/padic/internal/digit"
	"github.com/jbjava/padic/internal/session"
	"github.com/mattn/go-isatty"
)

// Start runs the REPL at the given base until 'q' or EOF, reading from
// r and writing to w. The ">>> " prompt is suppressed when r is not a
// terminal, so piped input produces plain output.
func Start(base digit.Base, r io.Reader, w io.Writer) error {
	sess, err := session.New(base)
	if err != nil {
		return err
	}

	interactive := false
	if f, ok := r.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd())
	}

	scanner := bufio.NewScanner(r)
	for {
		if interactive {
			fmt.Fprint(w, ">>> ")
		}
		if !scanner.Scan() {
			return nil
		}
		output, quit := sess.HandleLine(scanner.Text())
		if output != "" {
			fmt.Fprintln(w, output)
		}
		if quit {
			return nil
		}
	}
}
