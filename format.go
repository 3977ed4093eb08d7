package floatfmt

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// Literals emitted for non-finite inputs.
// They are fixed and not subject to the configuration.
const (
	LiteralNaN    = "NaN"
	LiteralInf    = "inf"
	LiteralNegInf = "-inf"
)

// notation is the rendering form resolved once per call,
// after any forced override.
type notation int8

const (
	notationPositional notation = iota
	notationScientific
)

// Format renders a float64 according to the given configuration.
// Under the default configuration (see [Config]) the output parses back
// to the original value.
//
// NaN and Infinity bypass the formatting rules and are rendered as the
// fixed literals [LiteralNaN], [LiteralInf], and [LiteralNegInf].
//
// Format returns an error if the configuration forces both positional and
// scientific notation.
func Format(f float64, cfg Config) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}
	if text, ok := special(f); ok {
		return text, nil
	}
	d, err := NewFromFloat64(f)
	if err != nil {
		return "", err
	}
	return d.Format(cfg)
}

// FormatFloat32 is like [Format] but renders a float32, using the shortest
// digit sequence that round-trips at single precision.
func FormatFloat32(f float32, cfg Config) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}
	if text, ok := special(float64(f)); ok {
		return text, nil
	}
	d, err := NewFromFloat32(f)
	if err != nil {
		return "", err
	}
	return d.Format(cfg)
}

func special(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return LiteralNaN, true
	case math.IsInf(f, 1):
		return LiteralInf, true
	case math.IsInf(f, -1):
		return LiteralNegInf, true
	}
	return "", false
}

// Format renders a pre-decomposed decimal according to the given
// configuration.
// It is the entry point for callers that supply digits from their own
// generator instead of [NewFromFloat64].
//
// The formatting pipeline has three phases, each feeding the next:
// the precision phase trims, rounds, or pads the significant digits,
// the notation phase resolves positional versus scientific form,
// and the assembly phase renders the digits with the configured
// punctuation and sign rules.
//
// Format returns an error if the configuration forces both positional and
// scientific notation.
// It panics if d violates the digit contract described in [Decimal].
func (d Decimal) Format(cfg Config) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}
	d.check()

	digits, exp := applyPrecision(d.Digits, d.Exp, cfg)
	form := cfg.notation(exp)
	return assemble(d.Neg, digits, exp, form, cfg), nil
}

// applyPrecision produces the digits that will actually be rendered.
// It never mutates the input slice.
// Zero is represented as the single digit 0 at exponent 1, so that
// minimum-digit padding naturally renders as "0.00" and the positional
// phase needs no special case.
func applyPrecision(digits []byte, exp int, cfg Config) ([]byte, int) {
	var kept []byte
	if len(digits) == 0 {
		kept = append(kept, 0)
		exp = 1
	} else {
		kept = append(kept, digits...)
		kept, exp = trimExtremes(kept, exp, cfg.trimExtremes)
		if cfg.maxDigits > 0 && len(kept) > cfg.maxDigits {
			first := kept[cfg.maxDigits]
			kept = kept[:cfg.maxDigits]
			if first >= 5 && !cfg.noRound {
				kept, exp = roundUp(kept, exp)
			}
		}
	}
	for len(kept) < cfg.minDigits {
		kept = append(kept, 0)
	}
	return kept, exp
}

// trimExtremes cuts the digit sequence at the first run of limit
// consecutive nines or zeros, per [Config.WithTrimExtremes].
// A run of nines rounds the preceding digits up; a run of zeros drops
// the tail outright.
func trimExtremes(digits []byte, exp, limit int) ([]byte, int) {
	if limit <= 0 {
		return digits, exp
	}
	nines, zeros := 0, 0
	for i, dig := range digits {
		if dig == 9 {
			nines++
		} else {
			nines = 0
		}
		if dig == 0 {
			zeros++
		} else {
			zeros = 0
		}
		switch {
		case nines >= limit:
			return roundUp(digits[:i+1-nines], exp)
		case zeros >= limit:
			return digits[:i+1-zeros], exp
		}
	}
	return digits, exp
}

// roundUp increments the least significant digit, propagating carries
// leftward.
// A carry out of the most significant position shifts the exponent instead
// of growing the digit count: rounding 999 at three digits yields 100 with
// the exponent increased by one.
func roundUp(digits []byte, exp int) ([]byte, int) {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < 9 {
			digits[i]++
			return digits, exp
		}
		digits[i] = 0
	}
	if len(digits) == 0 {
		return append(digits, 1), exp + 1
	}
	digits[0] = 1
	return digits, exp + 1
}

// notation resolves the rendering form for the given exponent:
// forced overrides first, then the exponent-break heuristic.
func (c Config) notation(exp int) notation {
	switch {
	case c.noExp:
		return notationPositional
	case c.forceExp:
		return notationScientific
	}
	lower, upper := c.expBreaks()
	if exp < lower || exp > upper {
		return notationScientific
	}
	return notationPositional
}

func assemble(neg bool, digits []byte, exp int, form notation, cfg Config) string {
	buf := make([]byte, 0, 32)

	// Arithmetic sign
	switch {
	case neg:
		buf = append(buf, '-')
	case cfg.plusSign && digits[0] != 0:
		buf = append(buf, '+')
	}

	if form == notationScientific {
		return string(appendScientific(buf, digits, exp, cfg))
	}
	return string(appendPositional(buf, digits, exp, cfg))
}

func appendPositional(buf, digits []byte, exp int, cfg Config) []byte {
	switch {
	case exp <= 0:
		// 0.00ddd
		buf = append(buf, '0')
		buf = utf8.AppendRune(buf, cfg.radix())
		for i := 0; i < -exp; i++ {
			buf = append(buf, '0')
		}
		buf = appendDigits(buf, digits)
	case exp >= len(digits):
		// ddd00
		buf = appendDigits(buf, digits)
		for i := len(digits); i < exp; i++ {
			buf = append(buf, '0')
		}
		if cfg.pointZero {
			buf = utf8.AppendRune(buf, cfg.radix())
			buf = append(buf, '0')
		}
	default:
		// dd.ddd
		buf = appendDigits(buf, digits[:exp])
		buf = utf8.AppendRune(buf, cfg.radix())
		buf = appendDigits(buf, digits[exp:])
	}
	return buf
}

func appendScientific(buf, digits []byte, exp int, cfg Config) []byte {
	buf = append(buf, '0'+digits[0])
	switch {
	case len(digits) > 1:
		buf = utf8.AppendRune(buf, cfg.radix())
		buf = appendDigits(buf, digits[1:])
	case cfg.pointZero:
		buf = utf8.AppendRune(buf, cfg.radix())
		buf = append(buf, '0')
	}
	buf = utf8.AppendRune(buf, cfg.expMarker())

	// The leading digit sits in the ones place, so the printed exponent is
	// one less than the [Decimal] convention.
	e := exp - 1
	if e < 0 {
		buf = append(buf, '-')
		e = -e
	} else {
		buf = append(buf, '+')
	}
	return strconv.AppendInt(buf, int64(e), 10)
}

func appendDigits(buf, digits []byte) []byte {
	for _, dig := range digits {
		buf = append(buf, '0'+dig)
	}
	return buf
}
