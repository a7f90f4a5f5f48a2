// Package evm implements the contract-state query capability and call
// encoder over the Ethereum JSON-RPC, binding cToken markets and their
// underlying ERC20 tokens behind the handle interfaces the core consumes.
package evm

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ABI fragments covering the calls the widget reads and encodes. The market
// comes in two flavours: the ERC20-backed cToken takes the mint amount as an
// argument, the native-coin market takes it as attached value and mints with
// no arguments.

const cErc20ABI = `[
	{
		"inputs": [{"name": "mintAmount", "type": "uint256"}],
		"name": "mint",
		"outputs": [{"name": "", "type": "uint256"}],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [{"name": "redeemAmount", "type": "uint256"}],
		"name": "redeemUnderlying",
		"outputs": [{"name": "", "type": "uint256"}],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "supplyRatePerBlock",
		"outputs": [{"name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"name": "owner", "type": "address"}],
		"name": "balanceOfUnderlying",
		"outputs": [{"name": "", "type": "uint256"}],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

const cEtherABI = `[
	{
		"inputs": [],
		"name": "mint",
		"outputs": [],
		"stateMutability": "payable",
		"type": "function"
	},
	{
		"inputs": [{"name": "redeemAmount", "type": "uint256"}],
		"name": "redeemUnderlying",
		"outputs": [{"name": "", "type": "uint256"}],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "supplyRatePerBlock",
		"outputs": [{"name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"name": "owner", "type": "address"}],
		"name": "balanceOfUnderlying",
		"outputs": [{"name": "", "type": "uint256"}],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

const erc20ABI = `[
	{
		"inputs": [
			{"name": "spender", "type": "address"},
			{"name": "amount", "type": "uint256"}
		],
		"name": "approve",
		"outputs": [{"name": "", "type": "bool"}],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [{"name": "owner", "type": "address"}],
		"name": "balanceOf",
		"outputs": [{"name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	}
]`

var (
	parsedCErc20ABI abi.ABI
	parsedCEtherABI abi.ABI
	parsedERC20ABI  abi.ABI
)

func init() {
	parsedCErc20ABI = mustParseABI(cErc20ABI)
	parsedCEtherABI = mustParseABI(cEtherABI)
	parsedERC20ABI = mustParseABI(erc20ABI)
}

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(err)
	}
	return parsed
}
