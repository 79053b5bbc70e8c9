package services

import (
	"fmt"
	"math"
	"print-optimizer-service/internal/domain"
)

// cutPlan holds, for every rod length n, the best profit and the first piece
// length that achieves it. firstCut[n] == 0 means "do not cut".
type cutPlan struct {
	profit   []float64
	firstCut []int
}

func newCutPlan(length int) *cutPlan {
	return &cutPlan{
		profit:   make([]float64, length+1),
		firstCut: make([]int, length+1),
	}
}

// bestCut evaluates every first piece for a rod of length n against already
// solved sub-lengths. Only a strictly greater profit replaces the current best,
// so the shortest first piece wins ties.
func bestCut(n int, prices []float64, sub func(int) float64) (float64, int) {
	best := 0.0
	cut := 0
	for i := 1; i <= n; i++ {
		candidate := prices[i-1] + sub(n-i)
		if candidate > best {
			best = candidate
			cut = i
		}
	}
	return best, cut
}

// result walks the first-cut choices from length down to zero.
func (p *cutPlan) result(length int) *domain.CuttingResult {
	cuts := []int{}
	for n := length; n > 0 && p.firstCut[n] > 0; n -= p.firstCut[n] {
		cuts = append(cuts, p.firstCut[n])
	}

	return &domain.CuttingResult{
		MaxProfit:    p.profit[length],
		Cuts:         cuts,
		NumberOfCuts: len(cuts),
	}
}

func validateRod(length int, prices []float64) error {
	if length < 0 {
		return fmt.Errorf("%w: rod length must be non-negative (got %d)", domain.ErrInvalidInput, length)
	}
	if len(prices) < length {
		return fmt.Errorf("%w: price table has %d entries, rod length is %d", domain.ErrInvalidInput, len(prices), length)
	}
	for i := 0; i < length; i++ {
		if math.IsNaN(prices[i]) || math.IsInf(prices[i], 0) {
			return fmt.Errorf("%w: price for length %d is not a finite number", domain.ErrInvalidInput, i+1)
		}
	}
	return nil
}
