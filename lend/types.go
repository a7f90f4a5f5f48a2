package lend

import (
	"github.com/ethereum/go-ethereum/common"
)

// Asset describes one entry of the per-network token catalog. Records are
// immutable; the catalog hands out copies.
type Asset struct {
	// ID is the catalog identifier, e.g. "DAI" or "ETH".
	ID string
	// Label is the display name shown next to balances.
	Label string
	// Decimals is the number of base-unit digits of the underlying token.
	Decimals int
	// TokenAddr is the underlying ERC20 contract. Zero for the native asset.
	TokenAddr common.Address
	// CTokenAddr is the interest-bearing market contract accepting deposits
	// of the underlying.
	CTokenAddr common.Address
	// Native marks the network's native coin, which is supplied by value
	// transfer rather than through an allowance.
	Native bool
}

// WalletContext carries the session details pushed by the wallet bridge on
// every connection or network change.
type WalletContext struct {
	// Owner is the custodial wallet address holding the position.
	Owner common.Address
	// Network identifies the chain the session is bound to.
	Network string
	// NativeBalance is the native-coin balance as a human decimal string,
	// e.g. "0.99".
	NativeBalance string
}

// PositionSnapshot is the latest consistent read of the selected asset's
// position. Snapshots are immutable and replaced wholesale: a refresh either
// publishes a complete new snapshot or leaves the previous one untouched.
type PositionSnapshot struct {
	// Asset the snapshot was taken for.
	Asset Asset
	// RawWalletBalance is the owner's balance of the underlying asset in
	// base units.
	RawWalletBalance string
	// RawLockedBalance is the redeemable amount held by the market contract,
	// already denominated in underlying base units.
	RawLockedBalance string
	// SupplyRatePerBlock is the market's per-block supply rate scaled by
	// 1e18.
	SupplyRatePerBlock string
	// SupplyAPY is the derived annual percentage yield with two decimal
	// places.
	SupplyAPY string
}

// NeutralSnapshot returns the reset state published the instant the selected
// asset changes, before any refresh completes.
func NeutralSnapshot(asset Asset) PositionSnapshot {
	return PositionSnapshot{
		Asset:              asset,
		RawWalletBalance:   "0",
		RawLockedBalance:   "0",
		SupplyRatePerBlock: "0",
		SupplyAPY:          "0",
	}
}

// Operation enumerates the two user actions the widget submits.
type Operation int

const (
	// OpDeposit supplies the underlying asset into the market.
	OpDeposit Operation = iota
	// OpWithdraw redeems underlying from the market.
	OpWithdraw
)

func (op Operation) String() string {
	switch op {
	case OpDeposit:
		return "deposit"
	case OpWithdraw:
		return "withdraw"
	default:
		return "unknown"
	}
}

// TransactionRequest is one entry of the ordered batch handed to the wallet
// bridge for signing. Value and Data are opaque to the core once encoded.
type TransactionRequest struct {
	// To is the contract receiving the call.
	To common.Address
	// Value is the native amount attached to the call, encoded as a 32-byte
	// big-endian unsigned integer. All-zero when no value is transferred.
	Value []byte
	// Data is the ABI-encoded call payload.
	Data []byte
}
