package lend

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ErrNotActionable marks an empty or zero amount. It disables submission but
// is never surfaced as a user-facing validation message.
var ErrNotActionable = errors.New("lend: amount not actionable")

// FormatError reports a malformed raw balance or an invalid decimals count.
// It indicates a broken caller contract rather than bad user input.
type FormatError struct {
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("lend: format %q: %s", e.Value, e.Reason)
}

// ParseError reports an unparsable user-entered amount and surfaces directly
// as a validation message.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("lend: %q is not a valid amount", e.Input)
}

// ExceedsMaxError reports an amount above the operation's ceiling. Max holds
// the ceiling formatted for display.
type ExceedsMaxError struct {
	Operation Operation
	Max       string
}

func (e *ExceedsMaxError) Error() string {
	return fmt.Sprintf("lend: %s amount exceeds max value %s", e.Operation, e.Max)
}

// InvalidAssetStateError reports a contract handle whose address no longer
// matches the selected asset, blocking submission against a stale binding.
type InvalidAssetStateError struct {
	Handle string
	Want   common.Address
	Got    common.Address
}

func (e *InvalidAssetStateError) Error() string {
	return fmt.Sprintf("lend: %s handle bound to %s, selected asset expects %s",
		e.Handle, e.Got.Hex(), e.Want.Hex())
}

// ReadFailure wraps an external contract-state query error. It aborts the
// refresh cycle that observed it and is never retried.
type ReadFailure struct {
	Op  string
	Err error
}

func (e *ReadFailure) Error() string {
	return fmt.Sprintf("lend: read %s: %v", e.Op, e.Err)
}

func (e *ReadFailure) Unwrap() error { return e.Err }
