package lend

import (
	"github.com/holiman/uint256"
)

// EncodeUint256 parses a base-unit decimal string into its canonical 32-byte
// big-endian representation, the form amounts travel in both as call
// arguments and as native value.
func EncodeUint256(value string) (*uint256.Int, []byte, error) {
	amount, err := uint256.FromDecimal(value)
	if err != nil {
		return nil, nil, &FormatError{Value: value, Reason: "not a uint256"}
	}
	encoded := amount.Bytes32()
	return amount, encoded[:], nil
}

var zeroValue = make([]byte, 32)

// Build assembles the ordered transaction batch for one operation. Amount
// validation is the caller's job (see Validate); Build only refuses handles
// whose addresses no longer match the selected asset, which would mean the
// batch targets contracts for a previously selected asset.
//
// Deposit of the native asset is a single mint() carrying the amount as
// value. Deposit of an ERC20 is approve followed by mint, in that order: the
// market pulls the tokens through the allowance the first call grants.
// Withdrawal is a single redeemUnderlying for either kind.
func Build(op Operation, asset Asset, amountRaw string, market MarketHandle, token TokenHandle) ([]TransactionRequest, error) {
	if market == nil {
		return nil, &InvalidAssetStateError{Handle: "market", Want: asset.CTokenAddr}
	}
	if market.Address() != asset.CTokenAddr {
		return nil, &InvalidAssetStateError{Handle: "market", Want: asset.CTokenAddr, Got: market.Address()}
	}
	if !asset.Native {
		if token == nil {
			return nil, &InvalidAssetStateError{Handle: "token", Want: asset.TokenAddr}
		}
		if token.Address() != asset.TokenAddr {
			return nil, &InvalidAssetStateError{Handle: "token", Want: asset.TokenAddr, Got: token.Address()}
		}
	}

	amount, encodedAmount, err := EncodeUint256(amountRaw)
	if err != nil {
		return nil, err
	}

	var batch []TransactionRequest
	switch op {
	case OpDeposit:
		mintData, err := market.EncodeMint(amount)
		if err != nil {
			return nil, err
		}
		if asset.Native {
			batch = []TransactionRequest{
				{To: asset.CTokenAddr, Value: encodedAmount, Data: mintData},
			}
			break
		}
		approveData, err := token.EncodeApprove(asset.CTokenAddr, amount)
		if err != nil {
			return nil, err
		}
		batch = []TransactionRequest{
			{To: asset.TokenAddr, Value: zeroValue, Data: approveData},
			{To: asset.CTokenAddr, Value: zeroValue, Data: mintData},
		}
	case OpWithdraw:
		redeemData, err := market.EncodeRedeemUnderlying(amount)
		if err != nil {
			return nil, err
		}
		batch = []TransactionRequest{
			{To: asset.CTokenAddr, Value: zeroValue, Data: redeemData},
		}
	default:
		return nil, &FormatError{Value: op.String(), Reason: "unknown operation"}
	}

	Metrics().ObserveBatch(op)
	return batch, nil
}
