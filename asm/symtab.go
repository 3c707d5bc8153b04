package asm

// SymbolKind classifies a symbol table entry.
type SymbolKind int

const (
	SymCode SymbolKind = iota
	SymData
	SymExternal
)

// Symbol is one entry of the symbol table. Entry is set by a later .entry
// request against a CODE or DATA symbol; it is never a
// SymbolKind of its own, since a symbol always needs a concrete definition
// before it can be exported.
type Symbol struct {
	Name    string
	Address int
	Kind    SymbolKind
	Entry   bool
}

type entryRequest struct {
	name string
	line int
}

// ExternalUse records one code-cell address that referenced an external
// symbol, in the order the second pass resolved them. The .ext emitter
// (codec.go) writes one line per ExternalUse.
type ExternalUse struct {
	Name    string
	Address int
}

// symbolTable is the single table shared across the first and second
// passes, populated by the first pass and read (and patched) by the
// second.
type symbolTable struct {
	order         []string
	syms          map[string]*Symbol
	entryRequests []entryRequest
	externalUses  []ExternalUse
}

func newSymbolTable() *symbolTable {
	return &symbolTable{syms: make(map[string]*Symbol)}
}

// defineLabel records a CODE or DATA symbol at its first-pass address. It
// reports ErrLabelAlreadyDefined for a plain redefinition, and
// ErrLabelExternAndInternal when the name was already declared external.
func (t *symbolTable) defineLabel(name string, address int, kind SymbolKind) (ErrorKind, bool) {
	if existing, ok := t.syms[name]; ok {
		if existing.Kind == SymExternal {
			return ErrLabelExternAndInternal, false
		}
		return ErrLabelAlreadyDefined, false
	}
	t.syms[name] = &Symbol{Name: name, Address: address, Kind: kind}
	t.order = append(t.order, name)
	return 0, true
}

// declareExternal records a name as defined in another source file. It
// reports ErrExternAlreadyDeclared for a repeated .extern of the same name,
// and ErrLabelExternAndInternal when the name already has a local CODE or
// DATA definition.
func (t *symbolTable) declareExternal(name string) (ErrorKind, bool) {
	if existing, ok := t.syms[name]; ok {
		if existing.Kind == SymExternal {
			return ErrExternAlreadyDeclared, false
		}
		return ErrLabelExternAndInternal, false
	}
	t.syms[name] = &Symbol{Name: name, Kind: SymExternal}
	t.order = append(t.order, name)
	return 0, true
}

// requestEntry records a .entry request for later reconciliation; entry
// requests may appear before or after the symbol they name is defined.
func (t *symbolTable) requestEntry(name string, line int) {
	t.entryRequests = append(t.entryRequests, entryRequest{name: name, line: line})
}

func (t *symbolTable) find(name string) (*Symbol, bool) {
	s, ok := t.syms[name]
	return s, ok
}

// reconcileEntries resolves every .entry request against the final symbol
// table. A request naming an external or undefined symbol is reported as
// ErrEntryUndefined; this runs once, after the first
// pass has read the whole file, so a label defined anywhere in the file
// satisfies a request that preceded its definition.
func (t *symbolTable) reconcileEntries(sink *errorSink) {
	for _, req := range t.entryRequests {
		sym, ok := t.syms[req.name]
		if !ok || sym.Kind == SymExternal {
			sink.add(ErrEntryUndefined, req.line, "%s", req.name)
			continue
		}
		sym.Entry = true
	}
}

// relocateData shifts every DATA symbol's address by the final instruction
// counter: data addresses are assigned relative to
// zero during the first pass, then moved to sit immediately after the code
// segment once the code segment's final size is known.
func (t *symbolTable) relocateData(finalIC int) {
	for _, name := range t.order {
		if sym := t.syms[name]; sym.Kind == SymData {
			sym.Address += finalIC
		}
	}
}

// entrySymbols returns every symbol with a satisfied .entry request, in
// definition order, for the .ent emitter.
func (t *symbolTable) entrySymbols() []*Symbol {
	var out []*Symbol
	for _, name := range t.order {
		if sym := t.syms[name]; sym.Entry {
			out = append(out, sym)
		}
	}
	return out
}

func (t *symbolTable) addExternalUse(name string, address int) {
	t.externalUses = append(t.externalUses, ExternalUse{Name: name, Address: address})
}

// allSymbols returns every symbol in definition order, for callers
// outside the package (the operator shell's "symbols" command).
func (t *symbolTable) allSymbols() []Symbol {
	out := make([]Symbol, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, *t.syms[name])
	}
	return out
}
