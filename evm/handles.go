package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"safelend/lend"
)

// Market binds a cToken market contract. The native-coin market carries the
// payable mint ABI, every other market the uint256 variant.
type Market struct {
	addr   common.Address
	abi    abi.ABI
	native bool
	caller ContractCaller
}

// NewMarket binds the market contract for asset.
func NewMarket(caller ContractCaller, asset lend.Asset) *Market {
	contractABI := parsedCErc20ABI
	if asset.Native {
		contractABI = parsedCEtherABI
	}
	return &Market{
		addr:   asset.CTokenAddr,
		abi:    contractABI,
		native: asset.Native,
		caller: caller,
	}
}

func (m *Market) Address() common.Address { return m.addr }

// SupplyRatePerBlock reads the market's current 1e18-scaled per-block supply
// rate.
func (m *Market) SupplyRatePerBlock(ctx context.Context) (*big.Int, error) {
	return m.readUint256(ctx, "supplyRatePerBlock")
}

// BalanceOfUnderlying reads the owner's redeemable amount in underlying base
// units. The method mutates state on-chain but is evaluated here as a
// read-only call.
func (m *Market) BalanceOfUnderlying(ctx context.Context, owner common.Address) (*big.Int, error) {
	return m.readUint256(ctx, "balanceOfUnderlying", owner)
}

// EncodeMint encodes the deposit call. For the native market the amount
// travels as attached value, so the call takes no arguments.
func (m *Market) EncodeMint(amount *uint256.Int) ([]byte, error) {
	if m.native {
		return m.abi.Pack("mint")
	}
	if amount == nil {
		return nil, fmt.Errorf("mint amount required")
	}
	return m.abi.Pack("mint", amount.ToBig())
}

// EncodeRedeemUnderlying encodes a withdrawal of amount underlying units.
func (m *Market) EncodeRedeemUnderlying(amount *uint256.Int) ([]byte, error) {
	if amount == nil {
		return nil, fmt.Errorf("redeem amount required")
	}
	return m.abi.Pack("redeemUnderlying", amount.ToBig())
}

func (m *Market) readUint256(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	return readUint256(ctx, m.caller, m.addr, m.abi, method, args...)
}

// Token binds the underlying ERC20 contract.
type Token struct {
	addr   common.Address
	caller ContractCaller
}

// NewToken binds the underlying token contract for asset.
func NewToken(caller ContractCaller, asset lend.Asset) *Token {
	return &Token{addr: asset.TokenAddr, caller: caller}
}

func (t *Token) Address() common.Address { return t.addr }

// BalanceOf reads the owner's token balance in base units.
func (t *Token) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	return readUint256(ctx, t.caller, t.addr, parsedERC20ABI, "balanceOf", owner)
}

// EncodeApprove encodes an allowance grant for spender.
func (t *Token) EncodeApprove(spender common.Address, amount *uint256.Int) ([]byte, error) {
	if amount == nil {
		return nil, fmt.Errorf("approve amount required")
	}
	return parsedERC20ABI.Pack("approve", spender, amount.ToBig())
}

// Factory binds handles for whichever asset the position service selects.
type Factory struct {
	caller ContractCaller
}

// NewFactory wraps a contract caller as a lend.HandleFactory.
func NewFactory(caller ContractCaller) *Factory {
	return &Factory{caller: caller}
}

func (f *Factory) Market(asset lend.Asset) lend.MarketHandle {
	return NewMarket(f.caller, asset)
}

func (f *Factory) Token(asset lend.Asset) lend.TokenHandle {
	return NewToken(f.caller, asset)
}

func readUint256(ctx context.Context, caller ContractCaller, addr common.Address, contractABI abi.ABI, method string, args ...interface{}) (*big.Int, error) {
	if caller == nil {
		return nil, fmt.Errorf("contract caller not initialised")
	}
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	out, err := caller.CallContract(ctx, ethereum.CallMsg{To: &addr, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s on %s: %w", method, addr.Hex(), err)
	}
	values, err := contractABI.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("unpack %s: empty result", method)
	}
	result, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unpack %s: unexpected type %T", method, values[0])
	}
	return result, nil
}
