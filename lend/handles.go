package lend

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// MarketHandle binds the interest-bearing market contract for one asset. The
// encode operations produce call data only; nothing is signed or broadcast
// here.
type MarketHandle interface {
	// Address is the bound market contract.
	Address() common.Address
	// SupplyRatePerBlock reads the current 1e18-scaled per-block supply rate.
	SupplyRatePerBlock(ctx context.Context) (*big.Int, error)
	// BalanceOfUnderlying reads the owner's redeemable amount denominated in
	// underlying base units.
	BalanceOfUnderlying(ctx context.Context, owner common.Address) (*big.Int, error)
	// EncodeMint encodes the deposit call. Markets for the native asset take
	// the amount as attached value and encode mint without arguments.
	EncodeMint(amount *uint256.Int) ([]byte, error)
	// EncodeRedeemUnderlying encodes a withdrawal of amount underlying units.
	EncodeRedeemUnderlying(amount *uint256.Int) ([]byte, error)
}

// TokenHandle binds the underlying ERC20 contract for one asset.
type TokenHandle interface {
	// Address is the bound token contract.
	Address() common.Address
	// BalanceOf reads the owner's token balance in base units.
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
	// EncodeApprove encodes an allowance grant letting spender pull amount
	// base units.
	EncodeApprove(spender common.Address, amount *uint256.Int) ([]byte, error)
}

// HandleFactory binds fresh contract handles whenever the selected asset
// changes.
type HandleFactory interface {
	Market(asset Asset) MarketHandle
	Token(asset Asset) TokenHandle
}
