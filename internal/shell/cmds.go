package shell

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree("asm10")
	root.AddCommand(cmd.Command{
		Name:        "help",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        (*Shell).cmdHelp,
	})
	root.AddCommand(cmd.Command{
		Name:  "assemble",
		Brief: "Assemble a source file",
		Description: "Run the assembler on the named source file stem," +
			" writing the .am, .ob, .ent, and .ext files the pipeline" +
			" produces and remembering the result for the other commands.",
		Usage: "assemble <stem>",
		Data:  (*Shell).cmdAssemble,
	})
	root.AddCommand(cmd.Command{
		Name:  "symbols",
		Brief: "List the last assembly's symbol table",
		Usage: "symbols",
		Data:  (*Shell).cmdSymbols,
	})
	root.AddCommand(cmd.Command{
		Name:  "errors",
		Brief: "List the last assembly's diagnostics",
		Usage: "errors",
		Data:  (*Shell).cmdErrors,
	})
	root.AddCommand(cmd.Command{
		Name:  "cells",
		Brief: "Dump the last assembly's object file contents",
		Usage: "cells",
		Data:  (*Shell).cmdCells,
	})
	root.AddCommand(cmd.Command{
		Name:      "quit",
		Brief:     "Exit the shell",
		Usage:     "quit",
		Shortcuts: []string{"exit"},
		Data:      (*Shell).cmdQuit,
	})
	cmds = root
}
