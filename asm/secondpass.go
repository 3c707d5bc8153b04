package asm

import "github.com/tenbitsys/asm10/word"

// runSecondPass resolves every code cell left pointing at a label by the
// first pass: a reference to a locally defined
// CODE or DATA symbol becomes a relocatable word carrying that symbol's
// address; a reference to an externally declared symbol becomes an
// external word and is recorded for the .ext file; a reference to neither
// is reported as ErrUnresolvedLabel.
func runSecondPass(result *firstPassResult, sink *errorSink) {
	for _, cell := range result.code {
		if cell.ref == "" {
			continue
		}
		sym, ok := result.syms.find(cell.ref)
		if !ok {
			sink.add(ErrUnresolvedLabel, cell.line, "%s", cell.ref)
			continue
		}
		if sym.Kind == SymExternal {
			cell.w = word.PackValue(0, word.External)
			result.syms.addExternalUse(cell.ref, cell.address)
		} else {
			cell.w = word.PackValue(sym.Address, word.Relocatable)
		}
		cell.ref = ""
	}
}
