// Package asm implements a two-pass assembler for a 10-bit word machine.
package asm

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrAssembly is returned by Assemble and AssembleFile when one or more
// diagnostics were recorded; the diagnostics themselves are on the
// returned Result.
var ErrAssembly = errors.New("asm: assembly failed")

// Result collects everything one run of the pipeline produced.
type Result struct {
	Expanded    string // contents of the .am file (expanded source)
	Object      string // contents of the .ob file
	Entries     string // contents of the .ent file
	HasEntries  bool
	Externs     string // contents of the .ext file
	HasExterns  bool
	Diagnostics []Diagnostic
	Symbols     []Symbol
}

// pipeline holds the state threaded through the stages of one Assemble
// call.
type pipeline struct {
	logger *log.Logger
	raw    []string
	am     []string
	sink   errorSink
	result *firstPassResult
	out    *Result
}

// Assemble runs the full macro-expansion, first-pass, and second-pass
// pipeline over raw source lines and renders the object, entry, and
// extern file contents. logger may be nil to disable tracing.
//
// Each stage only runs if every earlier stage completed without
// recording a diagnostic: a later stage operating on output a broken
// earlier stage left in an inconsistent state would produce misleading
// diagnostics of its own.
func Assemble(raw []string, logger *log.Logger) (*Result, error) {
	p := &pipeline{logger: logger, raw: raw}

	steps := []func(p *pipeline){
		(*pipeline).runPreprocess,
		(*pipeline).runFirstPass,
		(*pipeline).runSecondPass,
		(*pipeline).runEmit,
	}

	for _, step := range steps {
		if p.sink.failed() {
			break
		}
		step(p)
	}

	result := &Result{
		Expanded:    strings.Join(p.am, "\n"),
		Diagnostics: p.sink.all(),
	}
	if p.result != nil {
		result.Symbols = p.result.syms.allSymbols()
	}
	if p.out != nil {
		result.Object = p.out.Object
		result.Entries = p.out.Entries
		result.HasEntries = p.out.HasEntries
		result.Externs = p.out.Externs
		result.HasExterns = p.out.HasExterns
	}

	if p.sink.failed() {
		return result, ErrAssembly
	}
	return result, nil
}

func (p *pipeline) runPreprocess() {
	p.logSection("preprocessing")
	am, ok := preprocess(p.raw, &p.sink)
	p.am = am
	if !ok {
		p.log("preprocessing failed with %d diagnostic(s)", p.sink.count())
		return
	}
	for _, line := range am {
		p.log("am: %s", line)
	}
}

func (p *pipeline) runFirstPass() {
	p.logSection("first pass")
	p.result = runFirstPass(p.am, &p.sink)
	p.log("ic=%d dc=%d", p.result.ic, p.result.dc)
}

func (p *pipeline) runSecondPass() {
	p.logSection("second pass")
	runSecondPass(p.result, &p.sink)
}

func (p *pipeline) runEmit() {
	p.logSection("emit")
	out := &Result{Object: writeObjectFile(p.result)}
	out.Entries, out.HasEntries = writeEntryFile(p.result)
	out.Externs, out.HasExterns = writeExternFile(p.result)
	p.out = out
}

func (p *pipeline) log(format string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}

func (p *pipeline) logSection(name string) {
	if p.logger != nil {
		p.logger.Println(strings.Repeat("-", len(name)+6))
		p.logger.Printf("-- %s --\n", name)
	}
}

// String renders the run's diagnostics, one per line, for debugging.
func (r *Result) String() string {
	var b strings.Builder
	for _, d := range r.Diagnostics {
		fmt.Fprintln(&b, d.String())
	}
	return b.String()
}
