package keypad

// Display glyphs inserted into the expression buffer. They are rewritten
// into evaluator syntax by the scientific engine's normalization rules.
const (
	TimesGlyph  = "×"
	DivideGlyph = "÷"
	MinusGlyph  = "−" // U+2212, binary subtraction
	NegateGlyph = "-" // ASCII hyphen, unary negation
	PiGlyph     = "π"
	RootGlyph   = "√"
)
