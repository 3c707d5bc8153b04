package asm

import "github.com/tenbitsys/asm10/word"

// addrMode is one of the four addressing modes an operand can use.
type addrMode int

const (
	modeImmediate addrMode = 0
	modeDirect    addrMode = 1
	modeMatrix    addrMode = 2
	modeRegister  addrMode = 3
)

// modeSet is a bitmask of allowed addrModes for one operand position of
// one opcode.
type modeSet uint8

func modes(ms ...addrMode) modeSet {
	var s modeSet
	for _, m := range ms {
		s |= 1 << uint(m)
	}
	return s
}

func (s modeSet) allows(m addrMode) bool {
	return s&(1<<uint(m)) != 0
}

// opcodeInfo is one row of the fixed opcode table.
type opcodeInfo struct {
	name     string
	code     int
	arity    int // 0, 1 (destination only) or 2 (source and destination)
	srcModes modeSet
	dstModes modeSet
}

// opcodeTable is the assembler's entire instruction set. It is also the
// backing data for the opcode entries of the reservedWords table.
var opcodeTable = []opcodeInfo{
	{name: "mov", code: 0, arity: 2, srcModes: modes(modeImmediate, modeDirect, modeMatrix, modeRegister), dstModes: modes(modeDirect, modeMatrix, modeRegister)},
	{name: "cmp", code: 1, arity: 2, srcModes: modes(modeImmediate, modeDirect, modeMatrix, modeRegister), dstModes: modes(modeImmediate, modeDirect, modeMatrix, modeRegister)},
	{name: "add", code: 2, arity: 2, srcModes: modes(modeImmediate, modeDirect, modeMatrix, modeRegister), dstModes: modes(modeDirect, modeMatrix, modeRegister)},
	{name: "sub", code: 3, arity: 2, srcModes: modes(modeImmediate, modeDirect, modeMatrix, modeRegister), dstModes: modes(modeDirect, modeMatrix, modeRegister)},
	{name: "not", code: 4, arity: 1, dstModes: modes(modeDirect, modeMatrix, modeRegister)},
	{name: "clr", code: 5, arity: 1, dstModes: modes(modeDirect, modeMatrix, modeRegister)},
	{name: "lea", code: 6, arity: 2, srcModes: modes(modeDirect), dstModes: modes(modeDirect, modeMatrix, modeRegister)},
	{name: "inc", code: 7, arity: 1, dstModes: modes(modeDirect, modeMatrix, modeRegister)},
	{name: "dec", code: 8, arity: 1, dstModes: modes(modeDirect, modeMatrix, modeRegister)},
	{name: "jmp", code: 9, arity: 1, dstModes: modes(modeDirect, modeMatrix, modeRegister)},
	{name: "bne", code: 10, arity: 1, dstModes: modes(modeDirect, modeMatrix, modeRegister)},
	{name: "red", code: 11, arity: 1, dstModes: modes(modeDirect, modeMatrix, modeRegister)},
	{name: "prn", code: 12, arity: 1, dstModes: modes(modeImmediate, modeDirect, modeMatrix, modeRegister)},
	{name: "jsr", code: 13, arity: 1, dstModes: modes(modeDirect, modeMatrix, modeRegister)},
	{name: "rts", code: 14, arity: 0},
	{name: "stop", code: 15, arity: 0},
}

// directiveNames is the fixed set of directive keywords.
var directiveNames = []string{".data", ".string", ".mat", ".entry", ".extern"}

// operand is a classified, validated addressing-mode operand, as produced
// by parseOperand (operand.go).
type operand struct {
	mode     addrMode
	value    int    // modeImmediate: the signed integer
	label    string // modeDirect: the label; modeMatrix: the base label
	rowReg   int    // modeMatrix: R_a
	colReg   int    // modeMatrix: R_b
	reg      int    // modeRegister: the register number
}

// pendingWord is one word of an instruction's encoding. ref is non-empty
// when the word is a placeholder awaiting second-pass resolution.
type pendingWord struct {
	w   word.Word
	ref string
}

// encodeInstruction builds the first word and extra words for a command.
// src and dst are nil when the opcode's arity omits that operand.
func encodeInstruction(op opcodeInfo, src, dst *operand) []pendingWord {
	srcMode, dstMode := 0, 0
	if src != nil {
		srcMode = int(src.mode)
	}
	if dst != nil {
		dstMode = int(dst.mode)
	}

	words := []pendingWord{{w: word.FirstWord(op.code, srcMode, dstMode)}}

	if src != nil && dst != nil && src.mode == modeRegister && dst.mode == modeRegister {
		words = append(words, pendingWord{w: word.RegisterPairWord(src.reg, dst.reg)})
		return words
	}

	if src != nil {
		words = append(words, encodeOperand(*src, true)...)
	}
	if dst != nil {
		words = append(words, encodeOperand(*dst, false)...)
	}
	return words
}

// encodeOperand encodes a single operand that is not part of a
// register/register pair.
func encodeOperand(o operand, isSource bool) []pendingWord {
	switch o.mode {
	case modeImmediate:
		return []pendingWord{{w: word.PackValue(o.value, word.Absolute)}}
	case modeDirect:
		return []pendingWord{{w: 0, ref: o.label}}
	case modeMatrix:
		return []pendingWord{
			{w: 0, ref: o.label},
			{w: word.MatrixIndexWord(o.rowReg, o.colReg)},
		}
	case modeRegister:
		if isSource {
			return []pendingWord{{w: word.SourceRegisterWord(o.reg)}}
		}
		return []pendingWord{{w: word.DestRegisterWord(o.reg)}}
	default:
		return nil
	}
}
