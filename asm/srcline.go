package asm

// character classifiers shared by the preprocessor, the label validator,
// and the operand parser.

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDecimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDecimal(c)
}

func isLabelStart(c byte) bool {
	return isAlpha(c)
}

func isLabelChar(c byte) bool {
	return isAlnum(c)
}

// isMacroNameStart and isMacroNameChar classify macro names, which accept
// underscore in addition to the label alphabet: the first character must
// be a letter or underscore, and the rest letters, digits, or underscore.
func isMacroNameStart(c byte) bool {
	return isAlpha(c) || c == '_'
}

func isMacroNameChar(c byte) bool {
	return isAlnum(c) || c == '_'
}
