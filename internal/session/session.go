// Package session drives one REPL conversation: a fixed base, a
// mutable rendering view size, a variable environment, and the command
// dispatch described in spec.md §6.1.
package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jbjava/padic/internal/digit"
	"github.com/jbjava/padic/internal/env"
	"github.com/jbjava/padic/internal/lexer"
	"github.com/jbjava/padic/internal/parser"
	"github.com/jbjava/padic/internal/perr"
	"github.com/jbjava/padic/internal/render"
	"github.com/jbjava/padic/internal/stream"
)

const defaultViewSize = 10

const helpText = `commands:
  e <expr>         parse and evaluate <expr>; print "<expr> : <result>"
  s <name> <expr>  evaluate <expr> and bind it to <name> (must start a-z)
  l <n>            set the rendering view size to <n> integer digits
  v                list all bound names and their current rendered values
  q                exit
  h                print this help text
a line not starting with a letter is evaluated as an implicit "e"
expression; any other letter reports "Unknown command".`

// Session is one REPL's state: its base, its current view size, and
// its bound variables.
type Session struct {
	ID       uuid.UUID
	Base     digit.Base
	ViewSize int
	Env      *env.Env
}

// New returns a Session at the given base with the default view size.
func New(base digit.Base) (*Session, error) {
	if err := digit.ValidateBase(base); err != nil {
		return nil, err
	}
	return &Session{
		ID:       uuid.New(),
		Base:     base,
		ViewSize: defaultViewSize,
		Env:      env.New(),
	}, nil
}

// HandleLine dispatches one input line per spec.md §6.1 and returns the
// text to print and whether the session should now quit. HandleLine
// never returns an error itself: all user-visible failures are folded
// into the returned line, prefixed "Error: ".
func (s *Session) HandleLine(line string) (output string, quit bool) {
	if line == "" {
		return s.evalAndFormat(line), false
	}

	c := line[0]
	isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	if !isLetter {
		return s.evalAndFormat(line), false
	}

	arg := ""
	if len(line) > 1 {
		arg = strings.TrimPrefix(line[1:], " ")
	}

	switch c {
	case 'e':
		return s.evalAndFormat(arg), false
	case 's':
		return s.handleBind(arg), false
	case 'l':
		return s.handleViewSize(arg), false
	case 'v':
		return s.handleList(), false
	case 'q':
		return "", true
	case 'h':
		return helpText, false
	default:
		return "Unknown command", false
	}
}

func (s *Session) eval(expr string) (stream.Number, error) {
	tokens := lexer.NewScanner(expr).ScanTokens()
	return parser.NewParser(tokens, s.Base, s.Env).Parse()
}

func (s *Session) evalAndFormat(expr string) string {
	n, err := s.eval(expr)
	if err != nil {
		return formatErr(err)
	}
	s.Env.SetLast(n)
	return fmt.Sprintf("%s : %s", expr, render.Render(n, s.ViewSize))
}

func (s *Session) handleBind(arg string) string {
	parts := strings.SplitN(arg, " ", 2)
	if len(parts) < 2 || parts[0] == "" {
		return formatErr(perr.New(perr.ParseError, "s requires a name and an expression"))
	}
	name, expr := parts[0], parts[1]
	n, err := s.eval(expr)
	if err != nil {
		return formatErr(err)
	}
	if err := s.Env.Bind(name, n); err != nil {
		return formatErr(err)
	}
	s.Env.SetLast(n)
	return fmt.Sprintf("%s : %s", name, render.Render(n, s.ViewSize))
}

func (s *Session) handleViewSize(arg string) string {
	v, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || v <= 0 {
		return formatErr(perr.New(perr.ParseError, "l requires a positive integer view size"))
	}
	s.ViewSize = v
	return fmt.Sprintf("view size set to %d", v)
}

func (s *Session) handleList() string {
	names := s.Env.Names()
	if len(names) == 0 {
		return "(no bound variables)"
	}
	var sb strings.Builder
	for _, name := range names {
		n, _ := s.Env.Get(name)
		fmt.Fprintf(&sb, "%s : %s\n", name, render.Render(n, s.ViewSize))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatErr(err error) string {
	return "Error: " + err.Error()
}
