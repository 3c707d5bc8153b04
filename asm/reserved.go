package asm

// reservedKind classifies an entry in the reserved-word table: an opcode
// mnemonic, a directive name, a register name, or a macro keyword. These
// four closed vocabularies are grouped together as "reserved words" that
// may not be used as a label or macro name.
type reservedKind byte

const (
	reservedOpcode reservedKind = iota
	reservedDirective
	reservedRegister
	reservedMacroKeyword
)

// reservedEntry is the value stored per reserved word. reg is set only
// for reservedRegister entries.
type reservedEntry struct {
	kind reservedKind
	reg  int
}

// reservedWords is a single lookup structure for every name the assembler
// may not accept as a label or macro name: an exact-match table, not a
// prefix lookup, since "su" or "cl" abbreviating "sub"/"clr" must still
// be accepted as an ordinary label. It is built once at package init and
// shared by the lexer, the label validator, and the macro-name validator,
// rather than three independent string-compare ladders.
var reservedWords = buildReservedWords()

func buildReservedWords() map[string]reservedEntry {
	t := make(map[string]reservedEntry)
	for _, op := range opcodeTable {
		t[op.name] = reservedEntry{kind: reservedOpcode}
	}
	for _, d := range directiveNames {
		t[d] = reservedEntry{kind: reservedDirective}
	}
	for r := 0; r <= 7; r++ {
		t[registerName(r)] = reservedEntry{kind: reservedRegister, reg: r}
	}
	t["mcro"] = reservedEntry{kind: reservedMacroKeyword}
	t["mcroend"] = reservedEntry{kind: reservedMacroKeyword}
	return t
}

// isReservedWord reports whether name exactly matches a reserved word.
func isReservedWord(name string) bool {
	_, ok := reservedWords[name]
	return ok
}

// lookupRegister returns the register number for name, if name is exactly
// a register name ("r0".."r7").
func lookupRegister(name string) (int, bool) {
	e, ok := reservedWords[name]
	if !ok || e.kind != reservedRegister {
		return 0, false
	}
	return e.reg, true
}

func registerName(r int) string {
	return "r" + string(rune('0'+r))
}
