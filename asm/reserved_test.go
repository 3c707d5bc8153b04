package asm

import "testing"

func TestIsReservedWord(t *testing.T) {
	for _, name := range []string{"mov", "stop", ".data", ".entry", "r0", "r7", "mcro", "mcroend"} {
		if !isReservedWord(name) {
			t.Errorf("isReservedWord(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"loop", "r8", "movx", ""} {
		if isReservedWord(name) {
			t.Errorf("isReservedWord(%q) = true, want false", name)
		}
	}
}

func TestLookupRegister(t *testing.T) {
	for r := 0; r <= 7; r++ {
		got, ok := lookupRegister(registerName(r))
		if !ok || got != r {
			t.Errorf("lookupRegister(%q) = (%d, %v), want (%d, true)", registerName(r), got, ok, r)
		}
	}
	if _, ok := lookupRegister("r8"); ok {
		t.Error("lookupRegister(\"r8\") should fail, registers only go up to r7")
	}
	if _, ok := lookupRegister("mov"); ok {
		t.Error("lookupRegister(\"mov\") should fail, it is not a register")
	}
}
