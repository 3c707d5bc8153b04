package asm

import (
	"reflect"
	"testing"
)

func TestPreprocessExpandsMacro(t *testing.T) {
	raw := []string{
		"mcro add_one",
		"add r1,r2",
		"mcroend",
		"add_one",
		"stop",
	}
	var sink errorSink
	am, ok := preprocess(raw, &sink)
	if !ok {
		t.Fatalf("preprocess failed: %v", sink.all())
	}
	want := []string{"addr1,r2", "stop"}
	if !reflect.DeepEqual(am, want) {
		t.Errorf("got %v, want %v", am, want)
	}
}

func TestPreprocessReservedMacroName(t *testing.T) {
	raw := []string{"mcro mov", "stop", "mcroend"}
	var sink errorSink
	_, ok := preprocess(raw, &sink)
	if ok {
		t.Fatal("expected failure for a macro named after an opcode")
	}
	if sink.all()[0].Kind != ErrReservedMacroName {
		t.Errorf("got %v, want ErrReservedMacroName", sink.all()[0].Kind)
	}
}

func TestPreprocessDuplicateMacro(t *testing.T) {
	raw := []string{
		"mcro m", "stop", "mcroend",
		"mcro m", "rts", "mcroend",
	}
	var sink errorSink
	_, ok := preprocess(raw, &sink)
	if ok {
		t.Fatal("expected failure for a redefined macro")
	}
	found := false
	for _, d := range sink.all() {
		if d.Kind == ErrMacroAlreadyDefined {
			found = true
		}
	}
	if !found {
		t.Error("expected an ErrMacroAlreadyDefined diagnostic")
	}
}

func TestPreprocessMissingMacroEnd(t *testing.T) {
	raw := []string{"mcro m", "stop"}
	var sink errorSink
	_, ok := preprocess(raw, &sink)
	if ok {
		t.Fatal("expected failure for an unterminated macro")
	}
	if sink.all()[len(sink.all())-1].Kind != ErrMissingMacroEnd {
		t.Errorf("got %v, want ErrMissingMacroEnd", sink.all()[len(sink.all())-1].Kind)
	}
}

func TestPreprocessTextAfterMacroEnd(t *testing.T) {
	raw := []string{"mcro m", "stop", "mcroend extra"}
	var sink errorSink
	_, ok := preprocess(raw, &sink)
	if ok {
		t.Fatal("expected failure for text after mcroend")
	}
	if sink.all()[0].Kind != ErrTextAfterMacroEnd {
		t.Errorf("got %v, want ErrTextAfterMacroEnd", sink.all()[0].Kind)
	}
}

func TestPreprocessNoteWithSpace(t *testing.T) {
	raw := []string{"stop ;comment after a space"}
	var sink errorSink
	_, ok := preprocess(raw, &sink)
	if ok {
		t.Fatal("expected failure for a comment preceded by whitespace")
	}
	if sink.all()[0].Kind != ErrNoteWithSpace {
		t.Errorf("got %v, want ErrNoteWithSpace", sink.all()[0].Kind)
	}
}

func TestPreprocessLeadingCommentAllowed(t *testing.T) {
	raw := []string{";a full comment line", "stop"}
	var sink errorSink
	am, ok := preprocess(raw, &sink)
	if !ok {
		t.Fatalf("preprocess failed: %v", sink.all())
	}
	want := []string{"stop"}
	if !reflect.DeepEqual(am, want) {
		t.Errorf("got %v, want %v", am, want)
	}
}

func TestStripLineRemovesInteriorWhitespace(t *testing.T) {
	got := stripLine("mov  #5 , r1 ; trailing")
	want := "mov#5,r1"
	if got != want {
		t.Errorf("stripLine() = %q, want %q", got, want)
	}
}
