package consts

// Register input limits
const (
	// MaxDigitLength is the longest base-rendered register text that still accepts a digit
	MaxDigitLength = 15
	// BitmapWidth is the number of cells in the memory bitmap visualization
	BitmapWidth = 32
	// MinBinaryDisplayWidth pads the BIN display row to a full byte
	MinBinaryDisplayWidth = 8
)

// Result formatting defaults
const (
	// DefaultPrecision is the number of significant digits kept in a result
	DefaultPrecision = 14
	// MaxPrecision is the largest significant-digit count a float64 can honour
	MaxPrecision = 17
	// DefaultLowerExp is the decimal exponent below which results switch to scientific notation
	DefaultLowerExp = -7
	// DefaultUpperExp is the decimal exponent at which results switch to scientific notation
	DefaultUpperExp = 21
)

// Fraction approximation limits
const (
	// DefaultMaxDenominator bounds the denominators produced by the fraction toggle
	DefaultMaxDenominator = 1_000_000_000
	// FractionTolerance is the relative error accepted when approximating a decimal
	FractionTolerance = 1e-12
	// MaxContinuedFractionTerms caps the continued fraction expansion
	MaxContinuedFractionTerms = 64
)

// SyntaxErrorText is the sentinel result shown when an expression cannot be evaluated
const SyntaxErrorText = "Syntax Error"
