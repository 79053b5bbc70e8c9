package services

import (
	"cmp"
	"fmt"
	"math"
	"print-optimizer-service/internal/domain"
	"slices"
	"strings"
)

// OptimizePrinting orders the print queue and groups it into batches.
//
// Jobs are stable-sorted by priority, then by print time, and plates are
// filled greedily: each pass scans the remaining jobs in that order and takes
// every job that still fits. Skipped jobs wait for the next plate. This is a
// deterministic heuristic, not an optimal bin packing.
func OptimizePrinting(jobs []domain.PrintJob, constraints domain.PrinterConstraints) (*domain.ScheduleResult, error) {
	if err := constraints.Validate(); err != nil {
		return nil, fmt.Errorf("optimize printing: %w", err)
	}
	if err := validateJobs(jobs, constraints); err != nil {
		return nil, fmt.Errorf("optimize printing: %w", err)
	}

	batches, err := planBatches(sortJobs(jobs), constraints)
	if err != nil {
		return nil, fmt.Errorf("optimize printing: %w", err)
	}

	res := &domain.ScheduleResult{PrintOrder: make([]string, 0, len(jobs))}
	for _, b := range batches {
		res.PrintOrder = append(res.PrintOrder, b.IDs()...)
		res.TotalTime += b.Duration
	}

	return res, nil
}

// sortJobs returns a copy ordered by (priority asc, print time asc).
// Equal keys keep their input order.
func sortJobs(jobs []domain.PrintJob) []domain.PrintJob {
	sorted := slices.Clone(jobs)
	slices.SortStableFunc(sorted, func(a, b domain.PrintJob) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.PrintTime, b.PrintTime)
	})
	return sorted
}

// planBatches fills plates from the sorted queue until it is empty.
func planBatches(queue []domain.PrintJob, constraints domain.PrinterConstraints) ([]*domain.Batch, error) {
	var batches []*domain.Batch

	for len(queue) > 0 {
		batch := domain.NewBatch(constraints)
		remaining := make([]domain.PrintJob, 0, len(queue))

		for _, job := range queue {
			if !batch.TryAdd(job) {
				remaining = append(remaining, job)
			}
		}

		// An empty plate after a full scan means the head of the queue can never be placed.
		if batch.Len() == 0 {
			head := queue[0]
			return nil, &domain.UnschedulableJobError{
				JobID:     head.ID,
				Volume:    head.Volume,
				MaxVolume: constraints.MaxVolume,
			}
		}

		batches = append(batches, batch)
		queue = remaining
	}

	return batches, nil
}

func validateJobs(jobs []domain.PrintJob, constraints domain.PrinterConstraints) error {
	seen := make(map[string]struct{}, len(jobs))

	for i, job := range jobs {
		id := strings.TrimSpace(job.ID)
		if id == "" {
			return fmt.Errorf("%w: job at index %d has empty id", domain.ErrInvalidInput, i)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate job id %q", domain.ErrInvalidInput, id)
		}
		seen[id] = struct{}{}

		if !isPositive(job.Volume) {
			return fmt.Errorf("%w: job %q volume must be positive (got %v)", domain.ErrInvalidInput, job.ID, job.Volume)
		}
		if !isPositive(job.PrintTime) {
			return fmt.Errorf("%w: job %q print_time must be positive (got %v)", domain.ErrInvalidInput, job.ID, job.PrintTime)
		}

		if job.Volume > constraints.MaxVolume {
			return &domain.UnschedulableJobError{
				JobID:     job.ID,
				Volume:    job.Volume,
				MaxVolume: constraints.MaxVolume,
			}
		}
	}

	return nil
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
