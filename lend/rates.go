package lend

import (
	"safelend/fixedpoint"
)

// BlocksPerDay is the network constant used to annualise per-block rates,
// assuming ~15 second blocks.
const BlocksPerDay = 5760

const daysPerYear = 365

var (
	one     = fixedpoint.One()
	hundred = fixedpoint.FromInt64(100)
)

// AnnualYield converts a 1e18-scaled per-block supply rate into an annual
// percentage yield rendered with two decimal places. The rate compounds
// daily: apy = ((1 + rate*blocksPerDay/1e18)^365 - 1) * 100.
func AnnualYield(perBlockRate string, blocksPerDay int64) (string, error) {
	rate, err := fixedpoint.New(perBlockRate)
	if err != nil {
		return "", err
	}
	if rate.IsNegative() {
		return "", &fixedpoint.ArithmeticError{Op: "annual yield", Reason: "negative rate " + perBlockRate}
	}

	daily := rate.Mul(fixedpoint.FromInt64(blocksPerDay)).ShiftPow10(-18)
	compounded, err := one.Add(daily).PowInt(daysPerYear)
	if err != nil {
		return "", err
	}
	apy := compounded.Sub(one).Mul(hundred)
	return apy.StringFixed(2), nil
}
