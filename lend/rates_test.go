package lend

import (
	"testing"

	"safelend/fixedpoint"
)

func TestAnnualYieldZeroRate(t *testing.T) {
	for _, blocks := range []int64{1, BlocksPerDay, 100_000} {
		apy, err := AnnualYield("0", blocks)
		if err != nil {
			t.Fatalf("annual yield: %v", err)
		}
		if apy != "0.00" {
			t.Fatalf("zero rate at %d blocks/day: got %s", blocks, apy)
		}
	}
}

func TestAnnualYieldCompoundScenario(t *testing.T) {
	// A per-block rate of 9512937595 at 5760 blocks/day gives a daily rate of
	// 0.0000547945205472 and a compounded annual yield just above 2.02%.
	apy, err := AnnualYield("9512937595", BlocksPerDay)
	if err != nil {
		t.Fatalf("annual yield: %v", err)
	}
	if apy != "2.02" {
		t.Fatalf("expected 2.02, got %s", apy)
	}
}

func TestAnnualYieldMonotonic(t *testing.T) {
	rates := []string{
		"0",
		"1",
		"1000000",
		"9512937595",
		"9512937596",
		"50000000000",
		"100000000000",
	}
	prev := fixedpoint.Zero()
	for i, rate := range rates {
		apy, err := AnnualYield(rate, BlocksPerDay)
		if err != nil {
			t.Fatalf("annual yield for %s: %v", rate, err)
		}
		current := fixedpoint.MustNew(apy)
		if current.LessThan(prev) {
			t.Fatalf("apy decreased at step %d: %s -> %s", i, prev, current)
		}
		prev = current
	}
}

func TestAnnualYieldRejectsBadInput(t *testing.T) {
	if _, err := AnnualYield("not-a-rate", BlocksPerDay); err == nil {
		t.Fatal("expected error for malformed rate")
	}
	if _, err := AnnualYield("-1", BlocksPerDay); err == nil {
		t.Fatal("expected error for negative rate")
	}
}
