package domain

// Output of the print queue optimizer.
// PrintOrder lists job identifiers batch by batch; TotalTime is the sum of
// every batch duration in minutes.
type ScheduleResult struct {
	PrintOrder []string
	TotalTime  float64
}
