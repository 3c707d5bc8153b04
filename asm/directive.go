package asm

import "strings"

// parseDataArgs parses the comma-separated integer list of a .data
// directive, returning the raw 10-bit values to store.
func parseDataArgs(args string, line int, sink *errorSink) []int {
	fields, ok := splitCommaList(args)
	if !ok {
		sink.add(ErrDoubleComma, line, "")
		return nil
	}
	if len(fields) == 0 {
		sink.add(ErrExpectedNumber, line, "")
		return nil
	}
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, ok := parseSignedInt(f)
		if !ok {
			sink.add(ErrExpectedNumber, line, "%s", f)
			continue
		}
		values = append(values, v)
	}
	return values
}

// parseStringArgs parses the quoted literal of a .string directive,
// returning one value per character plus a trailing zero terminator.
func parseStringArgs(args string, line int, sink *errorSink) []int {
	if len(args) < 2 || args[0] != '"' || args[len(args)-1] != '"' {
		sink.add(ErrUnterminatedString, line, "%s", args)
		return nil
	}
	text := args[1 : len(args)-1]
	values := make([]int, 0, len(text)+1)
	for i := 0; i < len(text); i++ {
		values = append(values, int(text[i]))
	}
	values = append(values, 0)
	return values
}

// parseMatArgs parses a .mat directive's "[ROWS][COLS]val,val,..." body.
// When values are given, their count must equal rows*cols exactly; a
// header with no values at all yields rows*cols zeroes.
func parseMatArgs(args string, line int, sink *errorSink) []int {
	rows, cols, rest, ok := parseMatDims(args)
	if !ok {
		sink.add(ErrMissingBracket, line, "%s", args)
		return nil
	}

	if rest == "" {
		values := make([]int, rows*cols)
		return values
	}

	fields, ok := splitCommaList(rest)
	if !ok {
		sink.add(ErrDoubleComma, line, "")
		return nil
	}
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, ok := parseSignedInt(f)
		if !ok {
			sink.add(ErrExpectedNumber, line, "%s", f)
			continue
		}
		values = append(values, v)
	}
	if want := rows * cols; len(values) != want {
		sink.add(ErrMatrixCount, line, "declared %dx%d, got %d value(s)", rows, cols, len(values))
		values = resize(values, want)
	}
	return values
}

// resize returns values truncated or zero-padded to exactly n elements,
// so a mismatched .mat literal still advances the data counter by its
// declared size rather than its (wrong) literal size.
func resize(values []int, n int) []int {
	if len(values) >= n {
		return values[:n]
	}
	out := make([]int, n)
	copy(out, values)
	return out
}

// parseMatDims parses a leading "[N][M]" dimension header and returns the
// remaining text after it.
func parseMatDims(s string) (rows, cols int, rest string, ok bool) {
	if len(s) < 2 || s[0] != '[' {
		return 0, 0, "", false
	}
	end1 := strings.IndexByte(s, ']')
	if end1 < 0 {
		return 0, 0, "", false
	}
	rows, ok = parseSignedInt(s[1:end1])
	if !ok || rows < 0 {
		return 0, 0, "", false
	}

	tail := s[end1+1:]
	if len(tail) < 2 || tail[0] != '[' {
		return 0, 0, "", false
	}
	end2 := strings.IndexByte(tail, ']')
	if end2 < 0 {
		return 0, 0, "", false
	}
	cols, ok = parseSignedInt(tail[1:end2])
	if !ok || cols < 0 {
		return 0, 0, "", false
	}

	return rows, cols, tail[end2+1:], true
}
