package asm

import (
	"fmt"
	"strings"
)

// base4Digits maps a 2-bit chunk to its alphabetic digit.
const base4Digits = "abcd"

// word5 encodes a 10-bit value as a fixed 5-character base-4 string, most
// significant chunk first.
func word5(v int) string {
	var b [5]byte
	for i, shift := 0, 8; shift >= 0; i, shift = i+1, shift-2 {
		b[i] = base4Digits[(v>>shift)&0x3]
	}
	return string(b[:])
}

// addr4 encodes an address as the 4 low-order characters of its word5
// encoding: body-line addresses drop the leading character of the full
// 5-character encoding.
func addr4(v int) string {
	return word5(v)[1:]
}

// icdc encodes an IC or DC count as a variable-length base-4 string with
// leading zero digits suppressed: zero itself encodes as a single "a".
func icdc(n int) string {
	if n == 0 {
		return "a"
	}
	var digits []byte
	for n > 0 {
		digits = append(digits, base4Digits[n&0x3])
		n /= 4
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// writeObjectFile renders the .ob contents: a header line of the code and
// data word counts, the code segment, then the data segment offset by the
// final instruction counter.
func writeObjectFile(result *firstPassResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\t%s\t%s\n", icdc(result.ic-startIC), icdc(result.dc))
	for _, cell := range result.code {
		fmt.Fprintf(&b, "%s\t%s\n", addr4(cell.address), word5(int(cell.w.Uint16())))
	}
	for i, v := range result.data {
		fmt.Fprintf(&b, "%s\t%s\n", addr4(result.ic+i), word5(int(v.Uint16())))
	}
	return b.String()
}

// writeEntryFile renders the .ent contents, one line per symbol satisfying
// a .entry request. It returns "", false when there are none, so the
// caller can skip creating the file entirely.
func writeEntryFile(result *firstPassResult) (string, bool) {
	entries := result.syms.entrySymbols()
	if len(entries) == 0 {
		return "", false
	}
	var b strings.Builder
	for _, sym := range entries {
		fmt.Fprintf(&b, "%s\t%s\n", sym.Name, addr4(sym.Address))
	}
	return b.String(), true
}

// writeExternFile renders the .ext contents, one line per resolved use of
// an external symbol, in resolution order. It returns "", false when
// there are none.
func writeExternFile(result *firstPassResult) (string, bool) {
	uses := result.syms.externalUses
	if len(uses) == 0 {
		return "", false
	}
	var b strings.Builder
	for _, u := range uses {
		fmt.Fprintf(&b, "%s\t%s\n", u.Name, addr4(u.Address))
	}
	return b.String(), true
}
