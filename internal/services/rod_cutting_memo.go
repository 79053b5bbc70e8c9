package services

import (
	"fmt"
	"print-optimizer-service/internal/domain"
)

// RodCuttingMemo finds the most profitable cuts with top-down recursion.
//
// Sub-results are cached per call, so concurrent callers never share state.
// prices[i] is the price of a piece of length i+1.
func RodCuttingMemo(length int, prices []float64) (*domain.CuttingResult, error) {
	if err := validateRod(length, prices); err != nil {
		return nil, fmt.Errorf("rod cutting memo: %w", err)
	}

	plan := newCutPlan(length)
	solved := make([]bool, length+1)
	solved[0] = true

	var solve func(n int) float64
	solve = func(n int) float64 {
		if solved[n] {
			return plan.profit[n]
		}
		plan.profit[n], plan.firstCut[n] = bestCut(n, prices, solve)
		solved[n] = true
		return plan.profit[n]
	}

	solve(length)
	return plan.result(length), nil
}
