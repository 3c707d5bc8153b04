package asm

import "strings"

// parseOperand classifies and validates a single operand token against the
// four addressing-mode grammars. The token has already been isolated by
// splitCommaList and carries no surrounding whitespace — the preprocessor
// stripped all of it before this text ever reached the first pass.
func parseOperand(tok string) (operand, ErrorKind, bool) {
	switch {
	case tok == "":
		return operand{}, ErrOperandCount, false

	case tok[0] == '#':
		v, ok := parseSignedInt(tok[1:])
		if !ok {
			return operand{}, ErrExpectedNumber, false
		}
		return operand{mode: modeImmediate, value: v}, 0, true

	case strings.ContainsRune(tok, '['):
		return parseMatrixOperand(tok)

	default:
		if reg, ok := lookupRegister(tok); ok {
			return operand{mode: modeRegister, reg: reg}, 0, true
		}
		if kind, ok := isValidLabelName(tok); !ok {
			return operand{}, kind, false
		}
		return operand{mode: modeDirect, label: tok}, 0, true
	}
}

// parseMatrixOperand parses LABEL[Ra][Rb]. Both indices must be register
// names; an empty index is never accepted.
func parseMatrixOperand(tok string) (operand, ErrorKind, bool) {
	i := strings.IndexByte(tok, '[')
	label := tok[:i]
	if label == "" {
		return operand{}, ErrLabelNotAlphanumeric, false
	}
	if kind, ok := isValidLabelName(label); !ok {
		return operand{}, kind, false
	}

	rest := tok[i:]
	row, col, ok := parseMatrixIndices(rest)
	if !ok {
		return operand{}, ErrMissingBracket, false
	}
	return operand{mode: modeMatrix, label: label, rowReg: row, colReg: col}, 0, true
}

// parseMatrixIndices parses "[Ra][Rb]" with nothing left over.
func parseMatrixIndices(s string) (row, col int, ok bool) {
	if len(s) < 2 || s[0] != '[' {
		return 0, 0, false
	}
	end1 := strings.IndexByte(s, ']')
	if end1 < 0 {
		return 0, 0, false
	}
	row, ok = lookupRegister(s[1:end1])
	if !ok {
		return 0, 0, false
	}

	rest := s[end1+1:]
	if len(rest) < 2 || rest[0] != '[' {
		return 0, 0, false
	}
	end2 := strings.IndexByte(rest, ']')
	if end2 < 0 || end2 != len(rest)-1 {
		return 0, 0, false
	}
	col, ok = lookupRegister(rest[1:end2])
	if !ok {
		return 0, 0, false
	}
	return row, col, true
}

// isValidLabelName checks the syntax rules shared by labels and the base
// label of a matrix operand: at most 30 characters, starting with a
// letter, alphanumeric thereafter, and not a reserved word. On failure it
// returns the specific ErrorKind the violated rule corresponds to, so
// callers can report a precise diagnosis instead of a generic one.
func isValidLabelName(name string) (ErrorKind, bool) {
	if name == "" {
		return ErrLabelNotAlphanumeric, false
	}
	if len(name) > maxLabelLength {
		return ErrLabelTooLong, false
	}
	if !isLabelStart(name[0]) {
		return ErrLabelBadStart, false
	}
	for i := 1; i < len(name); i++ {
		if !isLabelChar(name[i]) {
			return ErrLabelNotAlphanumeric, false
		}
	}
	if isReservedWord(name) {
		return ErrLabelReservedWord, false
	}
	return 0, true
}
