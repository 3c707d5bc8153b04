// Package shell implements an interactive operator shell over the asm10
// assembler pipeline: look up a line against a github.com/beevik/cmd
// tree, dispatch to a handler method, and repeat the last command on a
// blank line.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/beevik/cmd"

	"github.com/tenbitsys/asm10/asm"
)

// Shell holds the state of one interactive session: the most recently
// assembled file's stem and result, available to the symbols/errors/cells
// commands without re-running the pipeline.
type Shell struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	lastCmd     *cmd.Selection
	lastStem    string
	lastResult  *asm.Result
	logger      *log.Logger
}

// New creates an operator shell. logger may be nil to silence pipeline
// tracing.
func New(logger *log.Logger) *Shell {
	return &Shell{logger: logger}
}

// RunCommands reads shell commands from r and writes their output to w. In
// interactive mode a prompt is printed before each line is read.
func (s *Shell) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	s.input = bufio.NewScanner(r)
	s.output = bufio.NewWriter(w)
	s.interactive = interactive

	for {
		s.prompt()

		line, err := s.getLine()
		if err != nil {
			break
		}

		if err := s.processCommand(line); err != nil {
			break
		}
	}
}

func (s *Shell) processCommand(line string) error {
	var c cmd.Selection
	if line != "" {
		var err error
		c, err = cmds.Lookup(line)
		switch {
		case err == cmd.ErrNotFound:
			s.println("Command not found.")
			return nil
		case err == cmd.ErrAmbiguous:
			s.println("Command is ambiguous.")
			return nil
		case err != nil:
			s.printf("ERROR: %v.\n", err)
			return nil
		}
	} else if s.lastCmd != nil {
		c = *s.lastCmd
	}

	if c.Command == nil {
		return nil
	}
	if c.Command.Data == nil && c.Command.Subtree != nil {
		s.displayCommands()
		return nil
	}

	s.lastCmd = &c

	handler := c.Command.Data.(func(*Shell, cmd.Selection) error)
	return handler(s, c)
}

func (s *Shell) cmdAssemble(c cmd.Selection) error {
	if len(c.Args) < 1 {
		s.displayUsage(c.Command)
		return nil
	}

	stem := c.Args[0]
	result, err := asm.AssembleFile(stem, s.logger)
	s.lastStem = stem
	s.lastResult = result

	if err != nil {
		s.printf("Assembly of '%s' failed:\n", stem)
		if result != nil {
			for _, d := range result.Diagnostics {
				s.println(d.String())
			}
		} else {
			s.printf("%v\n", err)
		}
		return nil
	}

	s.printf("Assembled '%s': %d symbol(s).\n", stem, len(result.Symbols))
	return nil
}

func (s *Shell) cmdSymbols(c cmd.Selection) error {
	if s.lastResult == nil {
		s.println("No assembly has been run yet.")
		return nil
	}
	if len(s.lastResult.Symbols) == 0 {
		s.println("No symbols.")
		return nil
	}
	for _, sym := range s.lastResult.Symbols {
		entry := ""
		if sym.Entry {
			entry = " entry"
		}
		s.printf("%-30s %3d %s%s\n", sym.Name, sym.Address, symbolKindName(sym.Kind), entry)
	}
	return nil
}

func (s *Shell) cmdErrors(c cmd.Selection) error {
	if s.lastResult == nil {
		s.println("No assembly has been run yet.")
		return nil
	}
	if len(s.lastResult.Diagnostics) == 0 {
		s.println("No diagnostics.")
		return nil
	}
	for _, d := range s.lastResult.Diagnostics {
		s.println(d.String())
	}
	return nil
}

func (s *Shell) cmdCells(c cmd.Selection) error {
	if s.lastResult == nil {
		s.println("No assembly has been run yet.")
		return nil
	}
	s.printf("%s", s.lastResult.Object)
	return nil
}

func (s *Shell) cmdQuit(c cmd.Selection) error {
	return errors.New("exiting shell")
}

func (s *Shell) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		s.displayCommands()
		return nil
	}
	sel, err := cmds.Lookup(strings.Join(c.Args, " "))
	if err != nil {
		s.printf("%v\n", err)
		return nil
	}
	if sel.Command.Usage != "" {
		s.printf("Usage: %s\n", sel.Command.Usage)
	}
	if sel.Command.Description != "" {
		s.printf("%s\n", sel.Command.Description)
	}
	return nil
}

func symbolKindName(k asm.SymbolKind) string {
	switch k {
	case asm.SymCode:
		return "code"
	case asm.SymData:
		return "data"
	case asm.SymExternal:
		return "external"
	default:
		return "unknown"
	}
}

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.output, format, args...)
	s.output.Flush()
}

func (s *Shell) println(args ...interface{}) {
	fmt.Fprintln(s.output, args...)
	s.output.Flush()
}

func (s *Shell) getLine() (string, error) {
	if s.input.Scan() {
		return s.input.Text(), nil
	}
	if s.input.Err() != nil {
		return "", s.input.Err()
	}
	return "", io.EOF
}

func (s *Shell) prompt() {
	if s.interactive {
		s.printf("asm10> ")
	}
}

func (s *Shell) displayUsage(c *cmd.Command) {
	if c.Usage != "" {
		s.printf("Usage: %s\n", c.Usage)
	}
}

func (s *Shell) displayCommands() {
	s.printf("%s commands:\n", cmds.Title)
	for _, c := range cmds.Commands {
		if c.Brief != "" {
			s.printf("    %-15s  %s\n", c.Name, c.Brief)
		}
	}
}
