package floatfmt

import "fmt"

// MustFormat is like [Format] but panics if the configuration is invalid.
// It simplifies formatting with configurations known to be correct at
// compile time.
func MustFormat(f float64, cfg Config) string {
	text, err := Format(f, cfg)
	if err != nil {
		panic(fmt.Sprintf("MustFormat(%v) failed: %v", f, err))
	}
	return text
}

// MustNewFromFloat64 is like [NewFromFloat64] but panics if f is not finite.
// It simplifies safe initialization of global variables holding decimals.
func MustNewFromFloat64(f float64) Decimal {
	d, err := NewFromFloat64(f)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromFloat64(%v) failed: %v", f, err))
	}
	return d
}
