package asm

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPreprocessingFailed(t *testing.T) {
	clean := &Result{Diagnostics: []Diagnostic{{Kind: ErrUnresolvedLabel}}}
	if preprocessingFailed(clean) {
		t.Error("a first-pass diagnostic should not count as a preprocessing failure")
	}

	dirty := &Result{Diagnostics: []Diagnostic{{Kind: ErrMissingMacroEnd}}}
	if !preprocessingFailed(dirty) {
		t.Error("a preprocessor diagnostic should count as a preprocessing failure")
	}
}

func TestAssembleFileWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "prog")

	source := "main: mov #5,r1\nadd r1,r2\nstop\n"
	if err := os.WriteFile(stem+".as", []byte(source), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := AssembleFile(stem, nil)
	if err != nil {
		t.Fatalf("AssembleFile failed: %v (%v)", err, result.Diagnostics)
	}

	for _, suffix := range []string{".am", ".ob"} {
		if _, err := os.Stat(stem + suffix); err != nil {
			t.Errorf("expected %s to exist: %v", suffix, err)
		}
	}
	for _, suffix := range []string{".ent", ".ext"} {
		if _, err := os.Stat(stem + suffix); err == nil {
			t.Errorf("did not expect %s to exist", suffix)
		}
	}
}

func TestAssembleFileRemovesExpandedSourceOnPreprocessFailure(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "bad")

	source := "mcro mov\nstop\nmcroend\n"
	if err := os.WriteFile(stem+".as", []byte(source), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := AssembleFile(stem, nil); err == nil {
		t.Fatal("expected AssembleFile to report an error")
	}

	if _, err := os.Stat(stem + ".am"); err == nil {
		t.Error("expected the .am file to be removed after a preprocessing failure")
	}
	if _, err := os.Stat(stem + ".ob"); err == nil {
		t.Error("did not expect an .ob file after a preprocessing failure")
	}
}

func TestAssembleFileNameTooLong(t *testing.T) {
	stem := ""
	for i := 0; i < maxLabelLength+1; i++ {
		stem += "x"
	}
	if _, err := AssembleFile(stem, nil); err == nil {
		t.Fatal("expected an error for an overlong file stem")
	}
}
