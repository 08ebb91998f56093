package engine

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestComputeKPIsBudgetSaving covers the plain budget-mode scenario: budget
// 1000 against a best proposal of 800.
func TestComputeKPIsBudgetSaving(t *testing.T) {
	r := ComputeKPIs(true, false, dec("1000"), dec("0"), dec("800"), dec("0"), dec("0"))

	if !r.SavingAmount.Equal(dec("200")) {
		t.Fatalf("expected saving 200, got %s", r.SavingAmount)
	}
	if !r.SavingPercent.Equal(dec("25")) {
		t.Fatalf("expected saving percent 25, got %s", r.SavingPercent)
	}
	for name, v := range map[string]decimal.Decimal{
		"baseline amount":  r.CostAvoidanceBaselineAmount,
		"baseline percent": r.CostAvoidanceBaselinePercent,
		"ce amount":        r.CostAvoidanceAmount,
		"ce percent":       r.CostAvoidancePercent,
	} {
		if !v.IsZero() {
			t.Fatalf("expected %s to be zero, got %s", name, v)
		}
	}
}

// TestComputeKPIsZeroDenominators checks the division guards: a zero
// denominator yields a zero percentage, never an error.
func TestComputeKPIsZeroDenominators(t *testing.T) {
	r := ComputeKPIs(true, true, dec("5000"), dec("4000"), dec("0"), dec("300"), dec("0"))

	if !r.SavingAmount.Equal(dec("5000")) {
		t.Fatalf("expected saving 5000, got %s", r.SavingAmount)
	}
	if !r.SavingPercent.IsZero() {
		t.Fatalf("expected saving percent 0 with zero proposal, got %s", r.SavingPercent)
	}
	if !r.CostAvoidanceBaselinePercent.IsZero() {
		t.Fatalf("expected baseline percent 0 with zero proposal, got %s", r.CostAvoidanceBaselinePercent)
	}
	if !r.CostAvoidanceAmount.Equal(dec("300")) {
		t.Fatalf("expected ce amount 300, got %s", r.CostAvoidanceAmount)
	}
	if !r.CostAvoidancePercent.IsZero() {
		t.Fatalf("expected ce percent 0 with zero final price, got %s", r.CostAvoidancePercent)
	}
}

// TestComputeKPIsModesOff: with both flags off only cost avoidance is
// computed; it does not depend on any mode.
func TestComputeKPIsModesOff(t *testing.T) {
	r := ComputeKPIs(false, false, dec("1000"), dec("900"), dec("800"), dec("500"), dec("400"))

	if !r.SavingAmount.IsZero() || !r.SavingPercent.IsZero() {
		t.Fatalf("expected saving fields zero, got %s / %s", r.SavingAmount, r.SavingPercent)
	}
	if !r.CostAvoidanceBaselineAmount.IsZero() || !r.CostAvoidanceBaselinePercent.IsZero() {
		t.Fatalf("expected baseline fields zero, got %s / %s", r.CostAvoidanceBaselineAmount, r.CostAvoidanceBaselinePercent)
	}
	if !r.CostAvoidanceAmount.Equal(dec("100")) {
		t.Fatalf("expected ce amount 100, got %s", r.CostAvoidanceAmount)
	}
	if !r.CostAvoidancePercent.Equal(dec("25")) {
		t.Fatalf("expected ce percent 25, got %s", r.CostAvoidancePercent)
	}
}

// TestComputeKPIsNegativePropagation: a proposal above budget is a cost
// overrun and must come out negative, not clamped.
func TestComputeKPIsNegativePropagation(t *testing.T) {
	r := ComputeKPIs(true, false, dec("500"), dec("0"), dec("800"), dec("100"), dec("250"))

	if !r.SavingAmount.Equal(dec("-300")) {
		t.Fatalf("expected saving -300, got %s", r.SavingAmount)
	}
	if !r.SavingPercent.Equal(dec("-37.5")) {
		t.Fatalf("expected saving percent -37.5, got %s", r.SavingPercent)
	}
	if !r.CostAvoidanceAmount.Equal(dec("-150")) {
		t.Fatalf("expected ce amount -150, got %s", r.CostAvoidanceAmount)
	}
	if !r.CostAvoidancePercent.Equal(dec("-60")) {
		t.Fatalf("expected ce percent -60, got %s", r.CostAvoidancePercent)
	}
}

// TestComputeKPIsIdempotent: same inputs, bit-identical outputs.
func TestComputeKPIsIdempotent(t *testing.T) {
	a := ComputeKPIs(true, true, dec("1234.56"), dec("1100.10"), dec("987.65"), dec("800"), dec("750.25"))
	b := ComputeKPIs(true, true, dec("1234.56"), dec("1100.10"), dec("987.65"), dec("800"), dec("750.25"))

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical results, got %+v vs %+v", a, b)
	}
}
