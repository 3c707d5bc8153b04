package asm

import (
	"strings"

	"github.com/tenbitsys/asm10/word"
)

// startIC is the instruction counter's initial value: the first 100
// memory cells are reserved and code begins at address 100.
const startIC = 100

// maxMemory is the cell budget for code and data combined: a program whose
// code and data cells together number 255 or fewer fits; one that needs
// 256 or more does not.
const maxMemory = 256

// codeCell is one word of the assembled code segment. ref is non-empty
// for a word still awaiting resolution against the symbol table; the
// second pass clears it once resolved.
type codeCell struct {
	address int
	w       word.Word
	ref     string
	line    int
}

// firstPassResult collects everything the first pass produced for a
// source file, ready for the second pass and the object-file emitters.
type firstPassResult struct {
	code []*codeCell
	data []word.Word
	ic   int // one past the last used code address
	dc   int // count of data words
	syms *symbolTable
}

// runFirstPass walks the expanded (.am) source once, assigning addresses,
// populating the symbol table, and encoding every instruction and data
// directive. It always continues to the end of the file even after
// recording errors.
func runFirstPass(lines []string, sink *errorSink) *firstPassResult {
	syms := newSymbolTable()
	ic := startIC
	dc := 0
	var code []*codeCell
	var data []word.Word

	for i, raw := range lines {
		lineNum := i + 1
		label, rest := splitLeadingLabel(raw, lineNum, sink)

		switch {
		case rest == "":
			continue

		case strings.HasPrefix(rest, ".entry"):
			name := strings.TrimPrefix(rest, ".entry")
			if kind, ok := isValidLabelName(name); !ok {
				sink.add(kind, lineNum, "%s", name)
				continue
			}
			syms.requestEntry(name, lineNum)

		case strings.HasPrefix(rest, ".extern"):
			name := strings.TrimPrefix(rest, ".extern")
			if kind, ok := isValidLabelName(name); !ok {
				sink.add(kind, lineNum, "%s", name)
				continue
			}
			if kind, ok := syms.declareExternal(name); !ok {
				sink.add(kind, lineNum, "%s", name)
			}

		case strings.HasPrefix(rest, ".data"), strings.HasPrefix(rest, ".string"), strings.HasPrefix(rest, ".mat"):
			values := parseDirectiveValues(rest, lineNum, sink)
			if label != "" {
				if kind, ok := syms.defineLabel(label, dc, SymData); !ok {
					sink.add(kind, lineNum, "%s", label)
				}
			}
			for _, v := range values {
				data = append(data, word.Word(v)&word.Mask)
			}
			dc += len(values)

		default:
			cells := encodeCommandLine(rest, ic, lineNum, sink)
			if label != "" {
				if kind, ok := syms.defineLabel(label, ic, SymCode); !ok {
					sink.add(kind, lineNum, "%s", label)
				}
			}
			code = append(code, cells...)
			ic += len(cells)
		}
	}

	if total := (ic - startIC) + dc; total >= maxMemory {
		sink.add(ErrMaxMemory, len(lines), "used %d cells", total)
	}

	syms.relocateData(ic)
	syms.reconcileEntries(sink)

	return &firstPassResult{code: code, data: data, ic: ic, dc: dc, syms: syms}
}

// splitLeadingLabel recognizes an optional "NAME:" prefix at the start of
// an already-whitespace-stripped line. The text before the first colon is
// only taken as a label candidate when it begins with a letter, so a colon
// inside the .string literal of an unlabeled line (which begins with '.')
// is never mistaken for one. A candidate that begins with a letter but is
// otherwise invalid is reported and dropped, and the rest of the line is
// still returned.
func splitLeadingLabel(line string, lineNum int, sink *errorSink) (label, rest string) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return "", line
	}
	candidate := line[:idx]
	if candidate == "" || !isAlpha(candidate[0]) {
		return "", line
	}
	if kind, ok := isValidLabelName(candidate); !ok {
		sink.add(kind, lineNum, "%s", candidate)
		return "", line[idx+1:]
	}
	return candidate, line[idx+1:]
}

// parseDirectiveValues dispatches to the .data/.string/.mat argument
// parser matching rest's directive keyword.
func parseDirectiveValues(rest string, lineNum int, sink *errorSink) []int {
	switch {
	case strings.HasPrefix(rest, ".data"):
		return parseDataArgs(strings.TrimPrefix(rest, ".data"), lineNum, sink)
	case strings.HasPrefix(rest, ".string"):
		return parseStringArgs(strings.TrimPrefix(rest, ".string"), lineNum, sink)
	default:
		return parseMatArgs(strings.TrimPrefix(rest, ".mat"), lineNum, sink)
	}
}

// encodeCommandLine recognizes an opcode mnemonic at the start of rest,
// validates its operand count and addressing modes, and encodes it into
// codeCells starting at address ic.
func encodeCommandLine(rest string, ic, lineNum int, sink *errorSink) []*codeCell {
	op, mnemonic, ok := matchOpcode(rest)
	if !ok {
		sink.add(ErrUnknownOpcode, lineNum, "%s", rest)
		return nil
	}
	operandText := rest[len(mnemonic):]

	var fields []string
	if operandText != "" {
		var ok bool
		fields, ok = splitCommaList(operandText)
		if !ok {
			sink.add(ErrDoubleComma, lineNum, "")
			return nil
		}
	}
	if len(fields) != op.arity {
		sink.add(ErrOperandCount, lineNum, "%s expects %d operand(s), got %d", op.name, op.arity, len(fields))
		return nil
	}

	var src, dst *operand
	switch op.arity {
	case 1:
		o, kind, ok := parseOperand(fields[0])
		if !ok {
			sink.add(kind, lineNum, "%s", fields[0])
			return nil
		}
		if !op.dstModes.allows(o.mode) {
			sink.add(ErrInvalidAddressingMode, lineNum, "%s", fields[0])
			return nil
		}
		dst = &o
	case 2:
		so, kind, ok := parseOperand(fields[0])
		if !ok {
			sink.add(kind, lineNum, "%s", fields[0])
			return nil
		}
		if !op.srcModes.allows(so.mode) {
			sink.add(ErrInvalidAddressingMode, lineNum, "%s", fields[0])
			return nil
		}
		do, kind, ok := parseOperand(fields[1])
		if !ok {
			sink.add(kind, lineNum, "%s", fields[1])
			return nil
		}
		if !op.dstModes.allows(do.mode) {
			sink.add(ErrInvalidAddressingMode, lineNum, "%s", fields[1])
			return nil
		}
		src, dst = &so, &do
	}

	words := encodeInstruction(op, src, dst)
	cells := make([]*codeCell, len(words))
	for i, pw := range words {
		cells[i] = &codeCell{address: ic + i, w: pw.w, ref: pw.ref, line: lineNum}
	}
	return cells
}

// matchOpcode finds the opcode mnemonic at the start of rest. The fixed
// 16-mnemonic vocabulary has no two names where one is a prefix of
// another, so a plain HasPrefix scan is unambiguous.
func matchOpcode(rest string) (opcodeInfo, string, bool) {
	for _, op := range opcodeTable {
		if strings.HasPrefix(rest, op.name) {
			return op, op.name, true
		}
	}
	return opcodeInfo{}, "", false
}
