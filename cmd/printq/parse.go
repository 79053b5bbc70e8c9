package main

import (
	"fmt"
	"strconv"
	"strings"

	"print-optimizer-service/internal/domain"
)

// parseJob reads a job given as ID:VOLUME:PRIORITY:TIME.
func parseJob(raw string) (domain.PrintJob, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 4 {
		return domain.PrintJob{}, fmt.Errorf("parse job %q: want ID:VOLUME:PRIORITY:TIME", raw)
	}

	volume, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.PrintJob{}, fmt.Errorf("parse job %q: volume: %w", raw, err)
	}
	priority, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return domain.PrintJob{}, fmt.Errorf("parse job %q: priority: %w", raw, err)
	}
	printTime, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		return domain.PrintJob{}, fmt.Errorf("parse job %q: print time: %w", raw, err)
	}

	return domain.PrintJob{
		ID:        strings.TrimSpace(parts[0]),
		Volume:    volume,
		Priority:  priority,
		PrintTime: printTime,
	}, nil
}
