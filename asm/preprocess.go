package asm

import "strings"

const (
	maxLineLength  = 80
	maxLabelLength = 30
)

// preprocessState tracks whether the preprocessor is reading ordinary
// source or the body of a macro definition.
type preprocessState int

const (
	stateOutside preprocessState = iota
	stateInsideMacro
)

// preprocess expands every macro use in raw and returns the expanded
// (.am) source as a slice of lines. It always reads every line through to
// EOF, even after recording errors, so a single pass reports every
// preprocessing problem in the file rather than stopping at the first one.
// The bool result is false if any error was recorded; the caller must not
// keep an .am file or proceed to the first pass in that case.
func preprocess(raw []string, sink *errorSink) ([]string, bool) {
	macros := newMacroTable()
	state := stateOutside
	activeMacro := ""
	ok := true
	var out []string

	for i, rawLine := range raw {
		line := i + 1

		if !checkNoteSpacing(rawLine, line, sink) {
			ok = false
			continue
		}
		if len(rawLine) > maxLineLength {
			sink.add(ErrLineTooLong, line, "")
			ok = false
			continue
		}

		clean := stripLine(rawLine)

		switch state {
		case stateInsideMacro:
			if isMacroEnd(clean) {
				if rest := clean[len("mcroend"):]; rest != "" {
					sink.add(ErrTextAfterMacroEnd, line, "%q", rest)
					ok = false
				}
				state = stateOutside
				activeMacro = ""
				continue
			}
			if activeMacro != "" {
				macros.append(activeMacro, clean)
			}

		default: // stateOutside
			if isMacroStart(clean) {
				name := clean[len("mcro"):]
				if validateMacroName(name, line, macros, sink) {
					macros.define(name)
					activeMacro = name
				} else {
					ok = false
					// Still enter the macro state so its body lines are
					// consumed rather than mis-parsed as instructions;
					// activeMacro == "" means those lines are discarded.
					activeMacro = ""
				}
				state = stateInsideMacro
				continue
			}

			if clean == "" {
				continue
			}
			if body, isUse := macros.expand(clean); isUse {
				out = append(out, body...)
				continue
			}
			out = append(out, clean)
		}
	}

	if state == stateInsideMacro {
		sink.add(ErrMissingMacroEnd, len(raw), "%s", activeMacro)
		ok = false
	}

	return out, ok
}

func isMacroStart(clean string) bool {
	return strings.HasPrefix(clean, "mcro") && !isMacroEnd(clean)
}

func isMacroEnd(clean string) bool {
	return strings.HasPrefix(clean, "mcroend")
}

// validateMacroName enforces the rules a macro name must satisfy:
// non-empty, at most maxLabelLength characters, starting with a letter or
// underscore, alphanumeric-or-underscore thereafter, not a reserved word, and not
// already the name of another macro.
func validateMacroName(name string, line int, macros *macroTable, sink *errorSink) bool {
	if name == "" {
		sink.add(ErrInvalidMacroName, line, "missing macro name")
		return false
	}
	if len(name) > maxLabelLength {
		sink.add(ErrMacroNameTooLong, line, "%s", name)
		return false
	}
	if macros.has(name) {
		sink.add(ErrMacroAlreadyDefined, line, "%s", name)
		return false
	}
	if isReservedWord(name) {
		sink.add(ErrReservedMacroName, line, "%s", name)
		return false
	}
	if !isMacroNameStart(name[0]) {
		sink.add(ErrInvalidMacroName, line, "%s", name)
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isMacroNameChar(name[i]) {
			sink.add(ErrInvalidMacroName, line, "%s", name)
			return false
		}
	}
	return true
}

// checkNoteSpacing reports ErrNoteWithSpace when a ';' appears after a
// whitespace character anywhere but the start of the line: a comment must
// either open the line or directly follow the text it comments on, never
// trail after a space. This check runs on the unstripped line, before
// stripLine would erase the very whitespace it looks for.
func checkNoteSpacing(rawLine string, line int, sink *errorSink) bool {
	for i := 1; i < len(rawLine); i++ {
		if isSpaceOrTab(rawLine[i-1]) && rawLine[i] == ';' {
			sink.add(ErrNoteWithSpace, line, "")
			return false
		}
	}
	return true
}

func isSpaceOrTab(c byte) bool {
	return c == ' ' || c == '\t'
}

// stripLine removes every space and tab from raw and truncates at the
// first ';', so a line is left with no internal whitespace and no trailing
// comment text.
func stripLine(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == ';' {
			break
		}
		if isSpaceOrTab(c) {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
