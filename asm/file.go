package asm

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// AssembleFile runs Assemble against stem+".as" and writes the
// stem+".am"/".ob"/".ent"/".ext" files: the expanded source always
// reaches disk, but is deleted again if preprocessing failed, and the
// object/entry/extern files are only written once every stage has run
// clean.
func AssembleFile(stem string, logger *log.Logger) (*Result, error) {
	if len(filepath.Base(stem)) > maxLabelLength {
		return nil, fmt.Errorf("%s: %s", ErrFileNameTooLong, stem)
	}

	raw, err := readLines(addSuffix(stem, ".as"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFileOpenFailed, err)
	}

	result, runErr := Assemble(raw, logger)

	amPath := addSuffix(stem, ".am")
	if err := writeFile(amPath, result.Expanded); err != nil {
		return result, err
	}
	if preprocessingFailed(result) {
		if err := os.Remove(amPath); err != nil {
			return result, fmt.Errorf("%s: %w", ErrFileRemoveFailed, err)
		}
	}

	if runErr != nil {
		return result, runErr
	}

	if err := writeFile(addSuffix(stem, ".ob"), result.Object); err != nil {
		return result, err
	}
	if result.HasEntries {
		if err := writeFile(addSuffix(stem, ".ent"), result.Entries); err != nil {
			return result, err
		}
	}
	if result.HasExterns {
		if err := writeFile(addSuffix(stem, ".ext"), result.Externs); err != nil {
			return result, err
		}
	}
	return result, nil
}

// preprocessingFailed reports whether any recorded diagnostic belongs to
// the preprocessing category, in which case the expanded source is not
// trustworthy and must not be left on disk.
func preprocessingFailed(result *Result) bool {
	for _, d := range result.Diagnostics {
		switch d.Kind {
		case ErrReservedMacroName, ErrInvalidMacroName, ErrMacroNameTooLong,
			ErrMacroAlreadyDefined, ErrTextAfterMacroEnd, ErrMissingMacroEnd,
			ErrNoteWithSpace, ErrLineTooLong:
			return true
		}
	}
	return false
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("%s: %w", ErrFileOpenFailed, err)
	}
	return nil
}
