package floatfmt

// Config holds the formatting rules applied by [Format] and [Decimal.Format].
// The zero value is the default configuration:
//
//   - no limit on significant digits,
//   - rounding (rather than truncation) when a limit applies,
//   - automatic notation with breaks at exponents -4 and 7,
//   - '.' as the radix point and a lowercase 'e' as the exponent marker,
//   - no explicit plus sign and no forced trailing ".0".
//
// With those defaults the output of [Format] parses back to the original
// floating-point value.
//
// Config is an immutable value: each With method returns a copy with one
// rule changed, so configurations can be composed by chaining and shared
// freely between goroutines.
//
//	cfg := floatfmt.Config{}.
//		WithMaxDigits(4).
//		WithRadixPoint(',').
//		WithPointZero(true)
type Config struct {
	maxDigits    int
	minDigits    int
	trimExtremes int
	noRound      bool
	noExp        bool
	forceExp     bool
	hasBreaks    bool
	lowerBreak   int
	upperBreak   int
	radixPoint   rune
	expChar      rune
	upperExp     bool
	plusSign     bool
	pointZero    bool
}

// Default exponent breaks for automatic notation selection.
// A value is rendered positionally if its decimal exponent e,
// in the [Decimal] convention value = 0.d1d2...dn * 10^e,
// satisfies lowerExpBreak <= e <= upperExpBreak.
// The bounds mirror the conventional switch points of default float
// printing: 0.00001 is the smallest and 9999999 the largest magnitude
// still written positionally.
const (
	lowerExpBreak = -4
	upperExpBreak = 7
)

// WithMaxDigits sets the maximum number of significant digits kept in the
// output.
// Excess digits are removed by rounding or, see [Config.WithRounding],
// by truncation.
// A non-positive n means no limit.
func (c Config) WithMaxDigits(n int) Config {
	c.maxDigits = n
	return c
}

// WithMinDigits sets the minimum number of significant digits in the output.
// If fewer digits remain after rounding, trailing zero digits are appended.
// A non-positive n means no padding.
// For a zero value the padding produces explicit zero decimals, such as
// "0.00" for n = 3.
func (c Config) WithMinDigits(n int) Config {
	c.minDigits = n
	return c
}

// WithRounding selects between rounding and truncation when digits beyond
// the [Config.WithMaxDigits] limit are removed.
// When enabled (the default), the last kept digit is rounded half-up using
// the first removed digit, with carries propagating leftward.
// When disabled, removed digits are simply dropped, so the result may be
// smaller in magnitude than the correctly rounded value.
func (c Config) WithRounding(round bool) Config {
	c.noRound = !round
	return c
}

// WithTrimExtremes cuts the digit sequence at the first run of n consecutive
// nines or n consecutive zeros.
// A run of nines rounds the preceding digit up; a run of zeros simply drops
// the tail.
// This shortens artifacts of binary floating-point such as 0.30000000000000004
// or 2.9999999999999996.
// A non-positive n disables trimming, which is the default.
func (c Config) WithTrimExtremes(n int) Config {
	c.trimExtremes = n
	return c
}

// WithNoExpNotation forces positional notation for every magnitude.
// It is mutually exclusive with [Config.WithExpNotation]: if both are set,
// formatting fails with a configuration error before any work is done.
func (c Config) WithNoExpNotation(on bool) Config {
	c.noExp = on
	return c
}

// WithExpNotation forces scientific notation for every magnitude.
// It is mutually exclusive with [Config.WithNoExpNotation].
func (c Config) WithExpNotation(on bool) Config {
	c.forceExp = on
	return c
}

// WithExpBreaks overrides the exponent bounds of automatic notation
// selection.
// A value with decimal exponent e, in the [Decimal] convention
// value = 0.d1d2...dn * 10^e, is rendered positionally if
// lower <= e <= upper and scientifically otherwise.
// The defaults are -4 and 7.
func (c Config) WithExpBreaks(lower, upper int) Config {
	c.hasBreaks = true
	c.lowerBreak = lower
	c.upperBreak = upper
	return c
}

// WithRadixPoint sets the rune separating the integer and fractional parts.
// The default is '.'.
func (c Config) WithRadixPoint(r rune) Config {
	c.radixPoint = r
	return c
}

// WithExpChar sets the rune introducing the exponent in scientific notation.
// The default is 'e'.
func (c Config) WithExpChar(r rune) Config {
	c.expChar = r
	return c
}

// WithUpperExp renders the exponent marker in upper case,
// producing "1.5E+8" instead of "1.5e+8".
func (c Config) WithUpperExp(on bool) Config {
	c.upperExp = on
	return c
}

// WithPlusSign prefixes positive non-zero values with an explicit '+'.
// Zero never receives a plus sign, but the decomposition of -0.0 is
// negative and keeps its minus sign.
func (c Config) WithPlusSign(on bool) Config {
	c.plusSign = on
	return c
}

// WithPointZero appends a radix point and a single zero digit when the
// rendered value would otherwise have no fractional part,
// producing "25.0" instead of "25".
func (c Config) WithPointZero(on bool) Config {
	c.pointZero = on
	return c
}

// validate rejects configurations with mutually exclusive notation settings.
func (c Config) validate() error {
	if c.noExp && c.forceExp {
		return errNotationConflict
	}
	return nil
}

func (c Config) expBreaks() (lower, upper int) {
	if c.hasBreaks {
		return c.lowerBreak, c.upperBreak
	}
	return lowerExpBreak, upperExpBreak
}

func (c Config) radix() rune {
	if c.radixPoint == 0 {
		return '.'
	}
	return c.radixPoint
}

func (c Config) expMarker() rune {
	r := c.expChar
	if r == 0 {
		r = 'e'
	}
	if c.upperExp && 'a' <= r && r <= 'z' {
		r -= 'a' - 'A'
	}
	return r
}
