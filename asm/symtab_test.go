package asm

import "testing"

func TestDefineLabel(t *testing.T) {
	syms := newSymbolTable()
	if _, ok := syms.defineLabel("loop", 100, SymCode); !ok {
		t.Fatal("first definition should succeed")
	}
	if kind, ok := syms.defineLabel("loop", 104, SymCode); ok || kind != ErrLabelAlreadyDefined {
		t.Errorf("redefinition: got (%v, %v), want (ErrLabelAlreadyDefined, false)", kind, ok)
	}
}

func TestDefineLabelAfterExternConflicts(t *testing.T) {
	syms := newSymbolTable()
	syms.declareExternal("foo")
	if kind, ok := syms.defineLabel("foo", 100, SymData); ok || kind != ErrLabelExternAndInternal {
		t.Errorf("got (%v, %v), want (ErrLabelExternAndInternal, false)", kind, ok)
	}
}

func TestDeclareExternalTwice(t *testing.T) {
	syms := newSymbolTable()
	syms.declareExternal("foo")
	if kind, ok := syms.declareExternal("foo"); ok || kind != ErrExternAlreadyDeclared {
		t.Errorf("got (%v, %v), want (ErrExternAlreadyDeclared, false)", kind, ok)
	}
}

func TestDeclareExternalAfterDefineConflicts(t *testing.T) {
	syms := newSymbolTable()
	syms.defineLabel("foo", 100, SymCode)
	if kind, ok := syms.declareExternal("foo"); ok || kind != ErrLabelExternAndInternal {
		t.Errorf("got (%v, %v), want (ErrLabelExternAndInternal, false)", kind, ok)
	}
}

func TestReconcileEntriesMarksDefinedSymbol(t *testing.T) {
	syms := newSymbolTable()
	syms.defineLabel("loop", 100, SymCode)
	syms.requestEntry("loop", 3)

	var sink errorSink
	syms.reconcileEntries(&sink)
	if sink.failed() {
		t.Fatalf("unexpected diagnostics: %v", sink.all())
	}
	sym, _ := syms.find("loop")
	if !sym.Entry {
		t.Error("expected loop to be marked as an entry")
	}
}

func TestReconcileEntriesUndefined(t *testing.T) {
	syms := newSymbolTable()
	syms.requestEntry("missing", 7)

	var sink errorSink
	syms.reconcileEntries(&sink)
	if !sink.failed() {
		t.Fatal("expected a diagnostic for an undefined entry request")
	}
	if sink.all()[0].Kind != ErrEntryUndefined || sink.all()[0].Line != 7 {
		t.Errorf("got %+v, want Kind=ErrEntryUndefined Line=7", sink.all()[0])
	}
}

func TestReconcileEntriesRejectsExternal(t *testing.T) {
	syms := newSymbolTable()
	syms.declareExternal("foo")
	syms.requestEntry("foo", 2)

	var sink errorSink
	syms.reconcileEntries(&sink)
	if !sink.failed() {
		t.Fatal("expected a diagnostic for entry of an external symbol")
	}
}

func TestRelocateDataShiftsOnlyData(t *testing.T) {
	syms := newSymbolTable()
	syms.defineLabel("code1", 0, SymCode)
	syms.defineLabel("data1", 0, SymData)
	syms.defineLabel("data2", 4, SymData)

	syms.relocateData(10)

	code, _ := syms.find("code1")
	if code.Address != 0 {
		t.Errorf("code symbol moved: got %d, want 0", code.Address)
	}
	data1, _ := syms.find("data1")
	if data1.Address != 10 {
		t.Errorf("data1: got %d, want 10", data1.Address)
	}
	data2, _ := syms.find("data2")
	if data2.Address != 14 {
		t.Errorf("data2: got %d, want 14", data2.Address)
	}
}

func TestEntrySymbolsOrderPreserved(t *testing.T) {
	syms := newSymbolTable()
	syms.defineLabel("a", 100, SymCode)
	syms.defineLabel("b", 101, SymCode)
	syms.defineLabel("c", 102, SymCode)
	syms.requestEntry("c", 1)
	syms.requestEntry("a", 2)

	var sink errorSink
	syms.reconcileEntries(&sink)

	names := make([]string, 0)
	for _, sym := range syms.entrySymbols() {
		names = append(names, sym.Name)
	}
	want := []string{"a", "c"}
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestAllSymbolsIncludesExternal(t *testing.T) {
	syms := newSymbolTable()
	syms.defineLabel("a", 100, SymCode)
	syms.declareExternal("b")

	all := syms.allSymbols()
	if len(all) != 2 {
		t.Fatalf("got %d symbols, want 2", len(all))
	}
	if all[1].Kind != SymExternal {
		t.Errorf("got %v, want SymExternal", all[1].Kind)
	}
}

func TestAddExternalUse(t *testing.T) {
	syms := newSymbolTable()
	syms.addExternalUse("foo", 105)
	syms.addExternalUse("bar", 107)
	if len(syms.externalUses) != 2 {
		t.Fatalf("got %d uses, want 2", len(syms.externalUses))
	}
	if syms.externalUses[0].Name != "foo" || syms.externalUses[0].Address != 105 {
		t.Errorf("got %+v", syms.externalUses[0])
	}
}
