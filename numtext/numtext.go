// Package numtext spells out numbers as English text, e.g. "123" becomes
// "One Hundred and Twenty Three".
package numtext

import (
	"strconv"
	"strings"
)

var numberWords = []string{
	"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen",
	"Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen", "Twenty",
	"Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// hundredsTensUnits converts a value in 0..999 to words. useAnd inserts the
// spoken "and" before the tens and units.
func hundredsTensUnits(value int, useAnd bool) string {
	var b strings.Builder

	if value > 99 {
		cardinal := value / 100
		b.WriteString(numberWords[cardinal])
		b.WriteString(" Hundred ")
		value -= cardinal * 100
	}

	if useAnd {
		b.WriteString("and ")
	}

	if value > 20 {
		cardinal := value / 10
		b.WriteString(numberWords[cardinal+18])
		b.WriteString(" ")
		value -= cardinal * 10
	}

	if value > 0 {
		b.WriteString(numberWords[value])
		b.WriteString(" ")
	}

	return b.String()
}

// NumberAsText converts a decimal number, given as text, to its English
// representation. Signs, comma grouping and a fractional part are supported;
// the fractional digits are spelled individually after "Point". Malformed or
// oversized input yields an error message string rather than an error value,
// so a conversion can always be embedded in generated output.
func NumberAsText(numberIn string) string {
	numberStr := strings.TrimSpace(numberIn)

	if _, err := strconv.ParseFloat(strings.ReplaceAll(numberStr, ",", ""), 64); err != nil {
		return "Error - Number improperly formed"
	}

	sign := ""
	switch {
	case strings.HasPrefix(numberStr, "-"):
		sign = "Minus "
		numberStr = numberStr[1:]
	case strings.HasPrefix(numberStr, "+"):
		sign = "Plus "
		numberStr = numberStr[1:]
	}

	wholePart := numberStr
	decimalPart := ""
	if dot := strings.IndexByte(numberStr, '.'); dot != -1 {
		wholePart = numberStr[:dot]
		decimalPart = numberStr[dot+1:]
	}
	wholePart = strings.ReplaceAll(wholePart, ",", "")

	// Digits above the first nine are handled separately so the regular
	// path only ever parses int-sized values.
	bigWholePart := ""
	if len(wholePart) > 9 {
		bigWholePart = wholePart[:len(wholePart)-9]
		wholePart = wholePart[len(wholePart)-9:]
	}
	if len(bigWholePart) > 9 {
		return "Error - Number too large"
	}

	var b strings.Builder

	if bigWholePart != "" {
		testValue, _ := strconv.Atoi(bigWholePart)

		if testValue > 999999 {
			cardinal := testValue / 1000000
			b.WriteString(hundredsTensUnits(cardinal, false))
			b.WriteString("Quadrillion ")
			testValue -= cardinal * 1000000
		}
		if testValue > 999 {
			cardinal := testValue / 1000
			b.WriteString(hundredsTensUnits(cardinal, false))
			b.WriteString("Trillion ")
			testValue -= cardinal * 1000
		}
		if testValue > 0 {
			b.WriteString(hundredsTensUnits(testValue, false))
			b.WriteString("Billion ")
		}
	}

	testValue := 0
	if wholePart != "" {
		testValue, _ = strconv.Atoi(wholePart)
	}

	if testValue == 0 && bigWholePart == "" {
		b.WriteString("Zero ")
	}

	if testValue > 999999 {
		cardinal := testValue / 1000000
		b.WriteString(hundredsTensUnits(cardinal, false))
		b.WriteString("Million ")
		testValue -= cardinal * 1000000
	}
	if testValue > 999 {
		cardinal := testValue / 1000
		b.WriteString(hundredsTensUnits(cardinal, false))
		b.WriteString("Thousand ")
		testValue -= cardinal * 1000
	}
	if testValue > 0 {
		whole, _ := strconv.Atoi(wholePart)
		useAnd := whole >= 100 || bigWholePart != ""
		b.WriteString(hundredsTensUnits(testValue, useAnd))
	}

	if decimalPart != "" {
		b.WriteString("Point")
		for _, digit := range decimalPart {
			if digit >= '0' && digit <= '9' {
				b.WriteString(" ")
				b.WriteString(numberWords[digit-'0'])
			}
		}
	}

	return sign + strings.TrimSpace(b.String())
}
