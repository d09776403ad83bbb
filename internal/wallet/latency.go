package wallet

import (
	"context"
	"time"
)

// Step names a flow that pauses before committing.
type Step string

const (
	StepKYC        Step = "kyc"
	StepWithdrawal Step = "withdrawal"
	StepRequest    Step = "request"
)

// Latency paces a flow step. It stands in for the round trip a real
// backend would make and must return promptly when ctx is done.
type Latency interface {
	Wait(ctx context.Context, step Step) error
}

// Fixed waits a configured duration per step. Steps without an entry do
// not wait.
type Fixed map[Step]time.Duration

// DefaultLatency returns the pacing used by the interactive CLI.
func DefaultLatency() Fixed {
	return Fixed{
		StepKYC:        1500 * time.Millisecond,
		StepWithdrawal: 1500 * time.Millisecond,
		StepRequest:    800 * time.Millisecond,
	}
}

func (f Fixed) Wait(ctx context.Context, step Step) error {
	d := f[step]
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoLatency never waits.
type NoLatency struct{}

func (NoLatency) Wait(ctx context.Context, _ Step) error {
	return ctx.Err()
}
