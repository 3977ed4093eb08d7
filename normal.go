package floatfmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Decimal type is a normalized decimal representation of a finite
// floating-point number.
// The zero value is the numeric value of 0.
//
// A decimal is a struct with three fields:
//
//   - Neg: a boolean indicating whether the value is negative.
//     The flag mirrors the IEEE 754 sign bit, so the decomposition of -0.0
//     is negative even though its digit sequence is empty.
//   - Digits: decimal digit values in the range [0, 9], most significant
//     first. The slice is empty if and only if the value is zero.
//   - Exp: an integer locating the decimal point.
//
// The numerical value of a decimal is calculated as:
//
//	-0.d1d2...dn * 10^Exp, if Neg is true.
//	 0.d1d2...dn * 10^Exp, if Neg is false.
//
// For example, 12459000.0 is represented by the digits [1 2 4 5 9] and
// an exponent of 8.
//
// Decimals produced by [NewFromFloat64] and [NewFromFloat32] are always in
// canonical form: the leading digit is non-zero and there is no trailing
// zero digit, so the digit sequence is the shortest one that parses back
// to the original floating-point value.
// Decimals constructed directly must preserve the canonical leading digit;
// [Decimal.Format] treats a violation as a programming error and panics.
type Decimal struct {
	Neg    bool   // indicates whether the value is negative
	Digits []byte // digit values 0-9, most significant first
	Exp    int    // the position of the floating decimal point
}

var (
	errNotationConflict = errors.New("conflicting notation settings")
	errSpecialValue     = errors.New("special value")
)

// NewFromFloat64 decomposes a float64 into its shortest round-trip decimal
// representation.
// The digit sequence is derived from the standard library's shortest-form
// conversion, so parsing the digits back at the indicated exponent always
// reproduces f exactly.
//
// NewFromFloat64 returns an error if f is NaN or Infinity.
func NewFromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, fmt.Errorf("converting %v: %w", f, errSpecialValue)
	}
	var buf [32]byte
	text := strconv.AppendFloat(buf[:0], math.Abs(f), 'e', -1, 64)
	return newFromScientific(math.Signbit(f), text), nil
}

// NewFromFloat32 is like [NewFromFloat64] but decomposes a float32,
// yielding the shortest digit sequence that round-trips at single precision.
func NewFromFloat32(f float32) (Decimal, error) {
	f64 := float64(f)
	if math.IsNaN(f64) || math.IsInf(f64, 0) {
		return Decimal{}, fmt.Errorf("converting %v: %w", f, errSpecialValue)
	}
	var buf [24]byte
	text := strconv.AppendFloat(buf[:0], math.Abs(f64), 'e', -1, 32)
	return newFromScientific(math.Signbit(f64), text), nil
}

// newFromScientific converts the output of strconv.AppendFloat with the 'e'
// verb, such as "1.2459e+07", into a decimal.
// The mantissa of the shortest form has no trailing zeros and is "0" only
// for zero values, so the result is always canonical.
func newFromScientific(neg bool, text []byte) Decimal {
	d := Decimal{Neg: neg}

	// Mantissa
	pos := 0
	for ; text[pos] != 'e'; pos++ {
		if text[pos] != '.' {
			d.Digits = append(d.Digits, text[pos]-'0')
		}
	}
	if len(d.Digits) == 1 && d.Digits[0] == 0 {
		return Decimal{Neg: neg}
	}

	// Exponent
	pos++
	eneg := false
	switch text[pos] {
	case '+':
		pos++
	case '-':
		eneg = true
		pos++
	}
	exp := 0
	for ; pos < len(text); pos++ {
		exp = exp*10 + int(text[pos]-'0')
	}
	if eneg {
		exp = -exp
	}

	// strconv places the leading digit in the ones place,
	// whereas Exp treats the digits as a fraction in [0.1, 1).
	d.Exp = exp + 1
	return d
}

// IsZero reports whether d represents zero of either sign.
func (d Decimal) IsZero() bool {
	return len(d.Digits) == 0
}

// check verifies the digit contract.
// Formatting trusts the digit generator, so a malformed decimal is a bug in
// the caller, not a recoverable condition.
func (d Decimal) check() {
	for _, dig := range d.Digits {
		if dig > 9 {
			panic(fmt.Sprintf("Decimal contains digit value %d outside [0, 9]", dig))
		}
	}
	if len(d.Digits) > 0 && d.Digits[0] == 0 {
		panic("Decimal contains a leading zero digit")
	}
}
