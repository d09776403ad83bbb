// Package wallet implements the user-facing flows on top of the state
// store: signup and KYC, linking bank accounts, withdrawals and payment
// requests.
package wallet

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/sentra-dev/sentra/internal/activity"
	"github.com/sentra-dev/sentra/internal/demo"
	"github.com/sentra-dev/sentra/internal/id"
	"github.com/sentra-dev/sentra/internal/logging"
	"github.com/sentra-dev/sentra/internal/money"
	"github.com/sentra-dev/sentra/internal/state"
)

// Service runs wallet flows against a Store.
type Service struct {
	store         *state.Store
	calc          money.Calculator
	latency       Latency
	minWithdrawal decimal.Decimal
	now           func() time.Time
	newID         id.Generator
	log           *pterm.Logger
	activity      Recorder
}

// Recorder keeps a history of completed actions.
type Recorder interface {
	Append(entries ...activity.Entry) error
}

// Option configures a Service.
type Option func(*Service)

// WithLatency sets the pacing applied before flows commit.
func WithLatency(l Latency) Option {
	return func(s *Service) { s.latency = l }
}

// WithMinWithdrawal sets the smallest amount that may be withdrawn.
func WithMinWithdrawal(amount decimal.Decimal) Option {
	return func(s *Service) { s.minWithdrawal = amount }
}

// WithClock sets the time source for new users and receipt references.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDs sets the generator for new user ids.
func WithIDs(gen id.Generator) Option {
	return func(s *Service) { s.newID = gen }
}

// WithLogger sets the logger.
func WithLogger(log *pterm.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithActivity records completed flows to rec.
func WithActivity(rec Recorder) Option {
	return func(s *Service) { s.activity = rec }
}

// NewService creates a wallet Service.
func NewService(store *state.Store, calc money.Calculator, opts ...Option) *Service {
	s := &Service{
		store:         store,
		calc:          calc,
		latency:       DefaultLatency(),
		minWithdrawal: demo.MinWithdrawal,
		now:           func() time.Time { return time.Now().UTC() },
		newID:         id.New,
		log:           logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// record appends to the activity history. Failures are logged only; the
// flow has already committed.
func (s *Service) record(action, details, ref string) {
	if s.activity == nil {
		return
	}
	err := s.activity.Append(activity.Entry{Timestamp: s.now(), Action: action, Details: details, Ref: ref})
	if err != nil {
		s.log.Error("failed to record activity", s.log.Args("action", action, "err", err))
	}
}

// Store returns the underlying store.
func (s *Service) Store() *state.Store { return s.store }

// Calculator returns the quote calculator in use.
func (s *Service) Calculator() money.Calculator { return s.calc }
