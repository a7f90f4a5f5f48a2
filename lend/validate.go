package lend

import (
	"errors"
	"strings"

	"safelend/fixedpoint"
)

// Validate parses a user-entered human-denominated amount and checks it
// against the ceiling for the operation: the wallet balance for a deposit,
// the locked balance for a withdrawal. The comparison runs at full precision;
// the ceiling is only truncated to display precision when reported inside an
// ExceedsMaxError.
//
// An empty or zero amount returns ErrNotActionable, which disables submission
// without surfacing a validation message.
func Validate(op Operation, amountText string, snapshot PositionSnapshot) (fixedpoint.Decimal, error) {
	trimmed := strings.TrimSpace(amountText)
	if trimmed == "" {
		return fixedpoint.Zero(), ErrNotActionable
	}

	amount, err := fixedpoint.New(trimmed)
	if err != nil {
		return fixedpoint.Zero(), &ParseError{Input: amountText}
	}
	if amount.IsNegative() {
		return fixedpoint.Zero(), &ParseError{Input: amountText}
	}
	if amount.IsZero() {
		return fixedpoint.Zero(), ErrNotActionable
	}

	ceilingRaw := snapshot.RawWalletBalance
	if op == OpWithdraw {
		ceilingRaw = snapshot.RawLockedBalance
	}
	ceiling, err := parseRaw(ceilingRaw, snapshot.Asset.Decimals)
	if err != nil {
		return fixedpoint.Zero(), err
	}
	ceilingHuman := ceiling.ShiftPow10(int32(-snapshot.Asset.Decimals))

	if amount.GreaterThan(ceilingHuman) {
		return fixedpoint.Zero(), &ExceedsMaxError{
			Operation: op,
			Max:       ceilingHuman.StringFixedTrunc(displayPlaces),
		}
	}
	return amount, nil
}

// Actionable reports whether the current input should enable the submit
// controls: non-empty, non-zero, and free of validation errors.
func Actionable(op Operation, amountText string, snapshot PositionSnapshot) bool {
	_, err := Validate(op, amountText, snapshot)
	return err == nil
}

// AmountInput tracks the raw user text together with its latest validation
// error. Editing the text clears the error until Validate runs again.
type AmountInput struct {
	Text string
	Err  error
}

// Set replaces the input text and clears any previous validation error.
func (in *AmountInput) Set(text string) {
	in.Text = text
	in.Err = nil
}

// Reset clears both the text and the error, as happens on asset change and
// after a successful submission.
func (in *AmountInput) Reset() {
	in.Text = ""
	in.Err = nil
}

// Validate checks the current text against the snapshot, recording any
// user-facing validation error on the input. ErrNotActionable is returned
// but not recorded: an empty or zero field shows no message.
func (in *AmountInput) Validate(op Operation, snapshot PositionSnapshot) (fixedpoint.Decimal, error) {
	amount, err := Validate(op, in.Text, snapshot)
	if err != nil && !errors.Is(err, ErrNotActionable) {
		in.Err = err
	} else {
		in.Err = nil
	}
	return amount, err
}

// Actionable reports whether submission should be enabled for the current
// field state.
func (in *AmountInput) Actionable(op Operation, snapshot PositionSnapshot) bool {
	if in.Err != nil {
		return false
	}
	return Actionable(op, in.Text, snapshot)
}
