package services

import (
	"fmt"
	"print-optimizer-service/internal/domain"
)

// RodCuttingTable finds the most profitable cuts by filling a table for every
// length from 1 up to length. It returns exactly what RodCuttingMemo returns.
func RodCuttingTable(length int, prices []float64) (*domain.CuttingResult, error) {
	if err := validateRod(length, prices); err != nil {
		return nil, fmt.Errorf("rod cutting table: %w", err)
	}

	plan := newCutPlan(length)
	lookup := func(n int) float64 { return plan.profit[n] }

	for n := 1; n <= length; n++ {
		plan.profit[n], plan.firstCut[n] = bestCut(n, prices, lookup)
	}

	return plan.result(length), nil
}
