package programmer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Starties/calculators/internal/consts"
	"github.com/Starties/calculators/internal/keypad"
	"github.com/Starties/calculators/internal/logger"
)

// Register is the engine state: a native signed integer and the base it is
// edited in. Operations return a new Register.
type Register struct {
	Value int64
	Base  Base
}

// NewRegister returns a zero register in the given base; an unsupported base
// falls back to DEC.
func NewRegister(base Base) Register {
	if !base.Valid() {
		base = Dec
	}
	return Register{Base: base}
}

// Render formats v in base b with upper-case hex digits. Negative values get
// a leading "-" followed by the magnitude.
func Render(v int64, b Base) string {
	return strings.ToUpper(strconv.FormatInt(v, b.Radix()))
}

// Parse reads s in base b. The empty string and a lone "-" are zero.
func Parse(s string, b Base) (int64, error) {
	if s == "" || s == "-" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, b.Radix(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q in %s", ErrInvalidDigit, s, b)
	}
	return v, nil
}

// Text is the register rendered in its active base, the text being edited.
func (r Register) Text() string {
	return Render(r.Value, r.Base)
}

// CheckDigit reports why d cannot be appended, or nil if it can.
func (r Register) CheckDigit(d rune) error {
	if !r.Base.Accepts(d) {
		return fmt.Errorf("%w: %q in %s", ErrInvalidDigit, d, r.Base)
	}
	if len(r.Text()) >= consts.MaxDigitLength {
		return ErrLengthCap
	}
	return nil
}

// InputDigit appends d to the rendered text and reparses it. Rejected
// digits leave the register unchanged.
func (r Register) InputDigit(d rune) Register {
	if err := r.CheckDigit(d); err != nil {
		logger.Debug("programmer: digit rejected: %v", err)
		return r
	}
	v, err := Parse(r.Text()+string(unicode.ToUpper(d)), r.Base)
	if err != nil {
		logger.Debug("programmer: %v", err)
		return r
	}
	r.Value = v
	return r
}

// Backspace drops the last character of the rendered text and reparses.
func (r Register) Backspace() Register {
	text := r.Text()
	v, err := Parse(text[:len(text)-1], r.Base)
	if err != nil {
		logger.Debug("programmer: %v", err)
		return r
	}
	r.Value = v
	return r
}

// Clear resets the value; the base is kept.
func (r Register) Clear() Register {
	r.Value = 0
	return r
}

// SetBase switches the active base without touching the value.
func (r Register) SetBase(b Base) Register {
	if b.Valid() {
		r.Base = b
	}
	return r
}

// Complement is the native 64-bit NOT, -v-1. It is not masked to the 32
// bits the bitmap shows.
func (r Register) Complement() Register {
	r.Value = ^r.Value
	return r
}

// ShiftLeft shifts one bit left; bits past bit 63 are lost.
func (r Register) ShiftLeft() Register {
	r.Value <<= 1
	return r
}

// ShiftRight is an arithmetic shift; the sign is kept.
func (r Register) ShiftRight() Register {
	r.Value >>= 1
	return r
}

// Row is one line of the programmer display.
type Row struct {
	Base Base
	Text string
}

// Rows renders the value in every base, in display order. The BIN row of a
// non-negative value is padded to a whole byte.
func (r Register) Rows() []Row {
	rows := make([]Row, 0, len(displayOrder))
	for _, b := range displayOrder {
		text := Render(r.Value, b)
		if b == Bin && r.Value >= 0 && len(text) < consts.MinBinaryDisplayWidth {
			text = strings.Repeat("0", consts.MinBinaryDisplayWidth-len(text)) + text
		}
		rows = append(rows, Row{Base: b, Text: text})
	}
	return rows
}

// Bitmap is the low 32 bits of the value in two's complement, most
// significant first. Values outside the 32-bit range are truncated here
// only; the register itself keeps all 64 bits.
func (r Register) Bitmap() string {
	return fmt.Sprintf("%0*b", consts.BitmapWidth, uint32(r.Value))
}

// Bit reports bit i (0 is least significant) of the bitmap.
func (r Register) Bit(i int) bool {
	if i < 0 || i >= consts.BitmapWidth {
		return false
	}
	return uint32(r.Value)&(1<<uint(i)) != 0
}

// Enabled reports whether a button does anything in the current base.
// Digits the base cannot represent are disabled.
func (r Register) Enabled(b keypad.Button) bool {
	a, err := keypad.Lookup(b, false)
	if err != nil || !a.In(keypad.ScopeRegister) {
		return false
	}
	if a.Kind == keypad.KindInsert {
		return r.Base.Accepts([]rune(a.Token)[0])
	}
	return true
}

// Press applies one button. Expression-only buttons are ignored.
func (r Register) Press(b keypad.Button) Register {
	a, err := keypad.Lookup(b, false)
	if err != nil {
		logger.Debug("programmer: %v", err)
		return r
	}
	if !a.In(keypad.ScopeRegister) {
		return r
	}

	switch a.Kind {
	case keypad.KindInsert:
		return r.InputDigit([]rune(a.Token)[0])
	case keypad.KindBase:
		base, err := ParseBase(a.Token)
		if err != nil {
			logger.Warn("programmer: %v", err)
			return r
		}
		return r.SetBase(base)
	case keypad.KindClear:
		return r.Clear()
	case keypad.KindBackspace:
		return r.Backspace()
	case keypad.KindNot:
		return r.Complement()
	case keypad.KindShiftLeft:
		return r.ShiftLeft()
	case keypad.KindShiftRight:
		return r.ShiftRight()
	}
	return r
}
