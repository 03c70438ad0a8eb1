// Package cli holds the padic command's dispatch logic, factored out of
// cmd/padic/main.go so it can be driven both by the real binary and by
// testscript's in-process subprocess harness.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jbjava/padic/internal/digit"
	"github.com/jbjava/padic/internal/remote"
	"github.com/jbjava/padic/internal/repl"
	"golang.org/x/mod/semver"
)

const version = "1.0.0"

var buildDate = time.Now().Format("2006-01-02")

var commandAliases = map[string]string{
	"r": "repl",
	"s": "serve",
}

// Run executes the padic command named by args[0] (defaulting to
// "repl" when args is empty) and returns a process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return runRepl(nil, stdin, stdout, stderr)
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	switch cmd {
	case "--help", "-h", "help":
		showUsage(stdout)
		return 0
	case "--version", "-v", "version":
		showVersion(stdout)
		return 0
	case "repl":
		return runRepl(args[1:], stdin, stdout, stderr)
	case "serve":
		return runServe(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "padic: unknown command %q\n\n", args[0])
		showUsage(stdout)
		return 1
	}
}

func runRepl(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	base := fs.Uint64("base", 7, "p-adic base (must be prime for division)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := repl.Start(digit.Base(*base), stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "padic: %v\n", err)
		return 1
	}
	return 0
}

func runServe(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	base := fs.Uint64("base", 7, "p-adic base (must be prime for division)")
	addr := fs.String("addr", ":8420", "listen address")
	maxConcurrent := fs.Int("max-concurrent", 64, "maximum concurrent remote sessions (0 = unbounded)")
	token := fs.String("token", "", "optional shared token required to connect")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	srv, err := remote.NewServer(digit.Base(*base), *addr, *maxConcurrent, *token)
	if err != nil {
		fmt.Fprintf(stderr, "padic: %v\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Fprintf(stdout, "padic: serving base %d p-adic REPL on %s/repl\n", *base, *addr)
	if err := srv.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(stderr, "padic: %v\n", err)
		return 1
	}
	return 0
}

func showVersion(w io.Writer) {
	v := "v" + version
	if !semver.IsValid(v) {
		v = version + " (invalid semver)"
	}
	fmt.Fprintf(w, "padic %s (built %s)\n", v, buildDate)
}

func showUsage(w io.Writer) {
	fmt.Fprintln(w, "padic - p-adic number calculator")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  padic repl [-base p]                          Start the interactive REPL (alias: r)")
	fmt.Fprintln(w, "  padic serve [-base p] [-addr :8420] [-token t] Serve the REPL over WebSocket (alias: s)")
	fmt.Fprintln(w, "  padic version                                 Print version information")
	fmt.Fprintln(w, "  padic help                                    Print this help text")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "With no arguments, padic starts the REPL at base 7.")
}
