package obs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

const RunIDKey ctxKey = "run_id"

// WithRunID tags ctx with a fresh run identifier so every timing line of one
// CLI invocation can be correlated.
func WithRunID(ctx context.Context) context.Context {
	return context.WithValue(ctx, RunIDKey, uuid.NewString())
}

func RunID(ctx context.Context) string {
	id, _ := ctx.Value(RunIDKey).(string)
	return id
}

// Time logs how long the named operation took once the returned func runs.
// Pass a pointer to the caller's named error to record failures.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	runID := RunID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("run_id=%s op=%s dur=%dus err=%v", runID, name, dur.Microseconds(), *errp)
			return
		}
		log.Printf("run_id=%s op=%s dur=%dus", runID, name, dur.Microseconds())
	}
}
