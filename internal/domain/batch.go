package domain

// Group of jobs printed simultaneously on one build plate.
// A Batch only exists while a schedule is being built; its duration is the
// longest print time among its members, not their sum.
type Batch struct {
	Constraints PrinterConstraints
	Jobs        []PrintJob
	Volume      float64
	Duration    float64
}

func NewBatch(c PrinterConstraints) *Batch {
	return &Batch{Constraints: c}
}

// Fits reports whether job can join the batch without breaking either limit.
func (b *Batch) Fits(job PrintJob) bool {
	if len(b.Jobs) >= b.Constraints.MaxItems {
		return false
	}
	return b.Volume+job.Volume <= b.Constraints.MaxVolume
}

// TryAdd places job on the plate when it fits and reports whether it did.
func (b *Batch) TryAdd(job PrintJob) bool {
	if !b.Fits(job) {
		return false
	}
	b.Jobs = append(b.Jobs, job)
	b.Volume += job.Volume
	if job.PrintTime > b.Duration {
		b.Duration = job.PrintTime
	}
	return true
}

func (b *Batch) Len() int { return len(b.Jobs) }

// IDs returns member identifiers in the order they were added.
func (b *Batch) IDs() []string {
	ids := make([]string, 0, len(b.Jobs))
	for _, j := range b.Jobs {
		ids = append(ids, j.ID)
	}
	return ids
}
