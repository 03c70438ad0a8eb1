// Command padic is a p-adic number calculator: an interactive REPL by
// default, or a WebSocket remote-REPL server via "serve".
package main

import (
	"os"

	"github.com/jbjava/padic/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
