package lend

import (
	"safelend/fixedpoint"
)

// displayPlaces is the number of fractional digits shown for balances.
// Rendering truncates, it never rounds up.
const displayPlaces = 4

// ToHuman converts a base-unit integer string into a human-readable decimal
// with four truncated fractional digits. The scaling is exact; only the final
// rendering drops digits.
func ToHuman(raw string, decimals int) (string, error) {
	value, err := parseRaw(raw, decimals)
	if err != nil {
		return "", err
	}
	return value.ShiftPow10(int32(-decimals)).StringFixedTrunc(displayPlaces), nil
}

// ToRaw converts a human decimal string into base units, truncating anything
// below one base unit.
func ToRaw(human string, decimals int) (string, error) {
	if decimals < 0 {
		return "", &FormatError{Value: human, Reason: "negative decimals"}
	}
	value, err := fixedpoint.New(human)
	if err != nil {
		return "", &FormatError{Value: human, Reason: "not a decimal"}
	}
	if value.IsNegative() {
		return "", &FormatError{Value: human, Reason: "negative amount"}
	}
	return value.ShiftPow10(int32(decimals)).Truncate(0).String(), nil
}

func parseRaw(raw string, decimals int) (fixedpoint.Decimal, error) {
	if decimals < 0 {
		return fixedpoint.Zero(), &FormatError{Value: raw, Reason: "negative decimals"}
	}
	value, err := fixedpoint.New(raw)
	if err != nil {
		return fixedpoint.Zero(), &FormatError{Value: raw, Reason: "not a number"}
	}
	if value.IsNegative() {
		return fixedpoint.Zero(), &FormatError{Value: raw, Reason: "negative balance"}
	}
	if !value.IsInteger() {
		return fixedpoint.Zero(), &FormatError{Value: raw, Reason: "not a base-unit integer"}
	}
	return value, nil
}
