/*
Package floatfmt renders binary floating-point values as configurable
decimal text.
It is designed for callers that need control over notation, precision,
rounding, and punctuation beyond what a plain numeric-to-string conversion
offers.

# Representation

Formatting operates on [Decimal], a normalized decimal decomposition with
three fields:

  - Neg: a boolean indicating whether the value is negative.
  - Digits: the significant decimal digits, most significant first,
    as digit values in the range [0, 9].
  - Exp: an integer locating the decimal point.

The numerical value of a decimal is calculated as:

  - -0.d1d2...dn * 10^Exp, if Neg is true.
  - 0.d1d2...dn * 10^Exp, if Neg is false.

For example, 12459000.0 is represented by the digits [1 2 4 5 9] and an
exponent of 8, and 0.001 by the single digit [1] and an exponent of -2.

[NewFromFloat64] and [NewFromFloat32] produce the shortest digit sequence
that parses back to the original value, using the standard library's
shortest round-trip conversion.
The package never derives digits from the floating-point bit pattern
itself; callers with their own digit generator can construct [Decimal]
values directly and render them with [Decimal.Format].

# Configuration

[Config] is an immutable value built by chaining With methods:

	cfg := floatfmt.Config{}.
		WithMaxDigits(4).
		WithRadixPoint(',').
		WithPointZero(true).
		WithNoExpNotation(true)
	text, err := floatfmt.Format(12459000.0, cfg)
	// text is "12460000,0"

The zero value of Config is the default configuration: all significant
digits, rounding enabled, automatic notation, '.' and 'e' punctuation,
no explicit plus sign, and no forced trailing ".0".
Under the defaults the output of [Format] round-trips: parsing it yields
the original value exactly.

Forcing both positional and scientific notation is a configuration
conflict; formatting fails with an error before any work is done rather
than silently picking one.

# Notation

Unless a notation is forced, the choice between positional and scientific
form follows the exponent of the value being rendered: positional while
-4 <= Exp <= 7, scientific otherwise.
With the default breaks, 0.00001 is the smallest and 9999999 the largest
magnitude still written positionally.
The breaks are adjustable with [Config.WithExpBreaks].

Scientific output places a single digit before the radix point and always
writes an explicit exponent sign, as in "6.02e+23" and "1e-7".

# Rounding

When [Config.WithMaxDigits] removes digits and rounding is enabled, the
last kept digit is rounded half-up using the first removed digit, with
carries propagating toward the most significant digit.
A carry out of the leading position shifts the exponent, so 999 rounded
to two digits becomes 1000 rather than 990.
With rounding disabled the removed digits are simply dropped.

# Special values

NaN and the infinities bypass formatting entirely and are rendered as the
fixed literals "NaN", "inf", and "-inf".
The decomposition of -0.0 is negative, matching its IEEE 754 sign bit, so
negative zero keeps its minus sign.

# Concurrency

All types in this package are immutable values and every function is free
of side effects, so any combination of concurrent calls is safe without
coordination.
*/
package floatfmt
