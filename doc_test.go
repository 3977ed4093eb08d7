package floatfmt_test

import (
	"fmt"
	"math"

	"github.com/govalues/floatfmt"
)

func ExampleFormat() {
	text, err := floatfmt.Format(123.45678, floatfmt.Config{})
	if err != nil {
		panic(err)
	}
	fmt.Println(text)
	// Output: 123.45678
}

func ExampleConfig() {
	cfg := floatfmt.Config{}.
		WithNoExpNotation(true).
		WithPointZero(true).
		WithMaxDigits(4).
		WithRadixPoint(',')
	fmt.Println(floatfmt.MustFormat(12459000.0, cfg))
	// Output: 12460000,0
}

func ExampleConfig_WithMaxDigits() {
	cfg := floatfmt.Config{}.WithMaxDigits(4)
	fmt.Println(floatfmt.MustFormat(math.E, cfg))
	// Output: 2.718
}

func ExampleConfig_WithMinDigits() {
	cfg := floatfmt.Config{}.WithMinDigits(4)
	fmt.Println(floatfmt.MustFormat(1.5, cfg))
	// Output: 1.500
}

func ExampleConfig_WithExpNotation() {
	cfg := floatfmt.Config{}.WithExpNotation(true)
	fmt.Println(floatfmt.MustFormat(6.02e23, cfg))
	// Output: 6.02e+23
}

func ExampleConfig_WithTrimExtremes() {
	a, b := 0.1, 0.2
	cfg := floatfmt.Config{}.WithTrimExtremes(4)
	fmt.Println(floatfmt.MustFormat(a+b, floatfmt.Config{}))
	fmt.Println(floatfmt.MustFormat(a+b, cfg))
	// Output:
	// 0.30000000000000004
	// 0.3
}

func ExampleDecimal_Format() {
	// Digits supplied by an external generator: 0.12459 * 10^8.
	d := floatfmt.Decimal{Digits: []byte{1, 2, 4, 5, 9}, Exp: 8}
	cfg := floatfmt.Config{}.WithNoExpNotation(true).WithPointZero(true)
	text, err := d.Format(cfg)
	if err != nil {
		panic(err)
	}
	fmt.Println(text)
	// Output: 12459000.0
}

func ExampleNewFromFloat64() {
	d, err := floatfmt.NewFromFloat64(0.001)
	if err != nil {
		panic(err)
	}
	fmt.Println(d.Neg, d.Digits, d.Exp)
	// Output: false [1] -2
}

func ExampleMustFormat() {
	cfg := floatfmt.Config{}.WithMaxDigits(6)
	fmt.Println(floatfmt.MustFormat(1234.5678, cfg))
	// Output: 1234.57
}
