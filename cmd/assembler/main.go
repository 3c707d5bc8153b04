package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tenbitsys/asm10/asm"
	"github.com/tenbitsys/asm10/internal/shell"
)

var (
	verbose     bool
	interactive bool
)

func init() {
	flag.BoolVar(&verbose, "v", false, "trace each assembly pass")
	flag.BoolVar(&interactive, "i", false, "start the interactive operator shell")
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: assembler [-v] [-i] [file] ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	var logger *log.Logger
	if verbose {
		logger = log.New(os.Stdout, "", 0)
	}

	exitCode := 0
	for _, stem := range flag.Args() {
		if _, err := asm.AssembleFile(stem, logger); err != nil {
			fmt.Fprintf(os.Stderr, "assembler: %s: %v\n", stem, err)
			exitCode = 1
		}
	}

	if interactive {
		shell.New(logger).RunCommands(os.Stdin, os.Stdout, true)
	}

	os.Exit(exitCode)
}
