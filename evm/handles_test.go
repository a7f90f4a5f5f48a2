package evm

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"safelend/lend"
)

type fakeCaller struct {
	lastCall ethereum.CallMsg
	result   []byte
	err      error
}

func (f *fakeCaller) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.lastCall = call
	return f.result, f.err
}

func encodeUint(value int64) []byte {
	return common.LeftPadBytes(big.NewInt(value).Bytes(), 32)
}

func selector(signature string) []byte {
	return crypto.Keccak256([]byte(signature))[:4]
}

var (
	marketAddr = common.HexToAddress("0x5d3a536E4D6DbD6114cc1Ead35777bAB948E3643")
	tokenAddr  = common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
	owner      = common.HexToAddress("0x00000000000000000000000000000000000000fe")
)

func daiAsset() lend.Asset {
	return lend.Asset{ID: "DAI", Decimals: 18, TokenAddr: tokenAddr, CTokenAddr: marketAddr}
}

func ethAsset() lend.Asset {
	return lend.Asset{ID: "ETH", Decimals: 18, CTokenAddr: marketAddr, Native: true}
}

func TestMarketSupplyRatePerBlock(t *testing.T) {
	caller := &fakeCaller{result: encodeUint(9512937595)}
	market := NewMarket(caller, daiAsset())

	rate, err := market.SupplyRatePerBlock(context.Background())
	require.NoError(t, err)
	require.Equal(t, big.NewInt(9512937595), rate)

	require.Equal(t, &marketAddr, caller.lastCall.To)
	require.Equal(t, selector("supplyRatePerBlock()"), caller.lastCall.Data)
}

func TestMarketBalanceOfUnderlying(t *testing.T) {
	caller := &fakeCaller{result: encodeUint(1_500_000)}
	market := NewMarket(caller, daiAsset())

	locked, err := market.BalanceOfUnderlying(context.Background(), owner)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1_500_000), locked)

	want := append(selector("balanceOfUnderlying(address)"), common.LeftPadBytes(owner.Bytes(), 32)...)
	require.Equal(t, want, caller.lastCall.Data)
}

func TestTokenBalanceOf(t *testing.T) {
	caller := &fakeCaller{result: encodeUint(42)}
	token := NewToken(caller, daiAsset())

	balance, err := token.BalanceOf(context.Background(), owner)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), balance)
	require.Equal(t, &tokenAddr, caller.lastCall.To)
}

func TestReadErrorsCarryContext(t *testing.T) {
	caller := &fakeCaller{err: errors.New("connection refused")}
	token := NewToken(caller, daiAsset())

	_, err := token.BalanceOf(context.Background(), owner)
	require.Error(t, err)
	require.Contains(t, err.Error(), "balanceOf")
	require.Contains(t, err.Error(), "connection refused")
}

func TestEncodeMintVariants(t *testing.T) {
	amount := uint256.NewInt(1000)

	erc20Market := NewMarket(nil, daiAsset())
	data, err := erc20Market.EncodeMint(amount)
	require.NoError(t, err)
	want := append(selector("mint(uint256)"), encodeUint(1000)...)
	require.Equal(t, want, data)

	nativeMarket := NewMarket(nil, ethAsset())
	data, err = nativeMarket.EncodeMint(amount)
	require.NoError(t, err)
	require.True(t, bytes.Equal(data, selector("mint()")), "native mint takes no arguments")
}

func TestEncodeRedeemAndApprove(t *testing.T) {
	amount := uint256.NewInt(77)

	market := NewMarket(nil, daiAsset())
	data, err := market.EncodeRedeemUnderlying(amount)
	require.NoError(t, err)
	want := append(selector("redeemUnderlying(uint256)"), encodeUint(77)...)
	require.Equal(t, want, data)

	token := NewToken(nil, daiAsset())
	data, err = token.EncodeApprove(marketAddr, amount)
	require.NoError(t, err)
	want = append(selector("approve(address,uint256)"), common.LeftPadBytes(marketAddr.Bytes(), 32)...)
	want = append(want, encodeUint(77)...)
	require.Equal(t, want, data)
}

func TestNilCallerRejected(t *testing.T) {
	market := NewMarket(nil, daiAsset())
	_, err := market.SupplyRatePerBlock(context.Background())
	require.Error(t, err)
}
