// Package state owns the single AppState of a session. Every read and
// write of users, accounts and transactions goes through a Store, which
// persists the full state after each mutation.
package state

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/sentra-dev/sentra/internal/demo"
	"github.com/sentra-dev/sentra/internal/id"
	"github.com/sentra-dev/sentra/internal/logging"
	"github.com/sentra-dev/sentra/internal/model"
	"github.com/sentra-dev/sentra/internal/storage"
)

// ErrNoUser is returned by mutations that must be attributed to a user
// when none is set.
var ErrNoUser = errors.New("no current user")

// ErrNotFound is returned by lookups for an id that does not exist.
var ErrNotFound = errors.New("not found")

// Listener receives a private copy of the state after every mutation.
type Listener func(model.AppState)

// Store is the authoritative holder of AppState.
type Store struct {
	mu        sync.Mutex
	state     model.AppState
	kv        storage.KV
	session   storage.KV
	now       func() time.Time
	newID     id.Generator
	log       *pterm.Logger
	seed      func() model.AppState
	promote   bool
	listeners map[int]Listener
	nextSub   int
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the source of creation and completion timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs sets the id generator.
func WithIDs(gen id.Generator) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLogger sets the logger used for persistence problems.
func WithLogger(log *pterm.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithSession sets the session-scoped area holding in-progress signup data.
func WithSession(kv storage.KV) Option {
	return func(s *Store) { s.session = kv }
}

// WithSeed sets the dataset loaded by SkipKYC.
func WithSeed(seed func() model.AppState) Option {
	return func(s *Store) { s.seed = seed }
}

// WithPromoteOnRemove controls whether removing the default bank account
// makes the oldest remaining account the new default. Enabled by default.
func WithPromoteOnRemove(promote bool) Option {
	return func(s *Store) { s.promote = promote }
}

// New returns a Store backed by kv, restoring any previously saved state.
func New(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:        kv,
		session:   storage.NewMemory(),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     id.New,
		log:       logging.Discard(),
		seed:      demo.Dataset,
		promote:   true,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = s.load()
	return s
}

// State returns a copy of the current state.
func (s *Store) State() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// User returns a copy of the current user, or nil.
func (s *Store) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

// BankAccount returns the local bank account with accountID.
func (s *Store) BankAccount(accountID string) (model.LocalBankAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.state.BankAccount(accountID)
	if !ok {
		return model.LocalBankAccount{}, fmt.Errorf("bank account %q: %w", accountID, ErrNotFound)
	}
	return a, nil
}

// VirtualAccount returns the virtual account with accountID.
func (s *Store) VirtualAccount(accountID string) (model.VirtualAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.state.VirtualAccount(accountID)
	if !ok {
		return model.VirtualAccount{}, fmt.Errorf("virtual account %q: %w", accountID, ErrNotFound)
	}
	return a, nil
}

// Transaction returns the transaction with txnID.
func (s *Store) Transaction(txnID string) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.state.Transaction(txnID)
	if !ok {
		return model.Transaction{}, fmt.Errorf("transaction %q: %w", txnID, ErrNotFound)
	}
	return t, nil
}

// Subscribe registers l for change notifications and returns a func that
// unregisters it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := s.nextSub
	s.nextSub++
	s.listeners[key] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, key)
	}
}

// mutate applies fn under the lock, persists, then notifies listeners.
// When fn fails nothing is persisted or announced.
func (s *Store) mutate(fn func(st *model.AppState) error) (model.AppState, error) {
	s.mu.Lock()
	if err := fn(&s.state); err != nil {
		s.mu.Unlock()
		return model.AppState{}, err
	}
	s.save(s.state)
	snap := s.state.Clone()
	keys := make([]int, 0, len(s.listeners))
	for k := range s.listeners {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	ls := make([]Listener, len(keys))
	for i, k := range keys {
		ls[i] = s.listeners[k]
	}
	s.mu.Unlock()

	for _, l := range ls {
		l(snap.Clone())
	}
	return snap, nil
}

func (s *Store) apply(fn func(st *model.AppState)) model.AppState {
	st, _ := s.mutate(func(st *model.AppState) error {
		fn(st)
		return nil
	})
	return st
}

// SetUser replaces the current user wholesale.
func (s *Store) SetUser(u model.User) model.AppState {
	return s.apply(func(st *model.AppState) {
		st.User = &u
	})
}

// SetOnboarded sets the onboarding flag.
func (s *Store) SetOnboarded(onboarded bool) model.AppState {
	return s.apply(func(st *model.AppState) {
		st.IsOnboarded = onboarded
	})
}

// SkipKYC replaces the whole state with the demo dataset.
func (s *Store) SkipKYC() model.AppState {
	return s.apply(func(st *model.AppState) {
		*st = s.seed()
		st.IsOnboarded = true
	})
}

// Reset clears persisted state and returns to an empty session.
func (s *Store) Reset() model.AppState {
	return s.apply(func(st *model.AppState) {
		if err := s.kv.Remove(StateKey); err != nil {
			s.log.Error("failed to clear saved state", s.log.Args("key", StateKey, "err", err))
		}
		*st = model.Empty()
	})
}

// Logout resets the session and discards any in-progress signup.
func (s *Store) Logout() model.AppState {
	st := s.Reset()
	s.ClearSignup()
	return st
}

// AddBankAccount links a new local bank account for the current user.
// The first account linked is always default; otherwise the caller's
// IsDefault is kept as given.
func (s *Store) AddBankAccount(nb model.NewBankAccount) (model.LocalBankAccount, error) {
	var created model.LocalBankAccount
	_, err := s.mutate(func(st *model.AppState) error {
		if st.User == nil {
			return ErrNoUser
		}
		created = model.LocalBankAccount{
			ID:                s.uniqueID(id.PrefixBankAccount, st),
			UserID:            st.User.ID,
			BankName:          nb.BankName,
			BankLogo:          nb.BankLogo,
			AccountNumber:     nb.AccountNumber,
			IFSCCode:          nb.IFSCCode,
			AccountHolderName: nb.AccountHolderName,
			AccountType:       nb.AccountType,
			IsDefault:         nb.IsDefault || len(st.LocalBankAccounts) == 0,
			CreatedAt:         s.now(),
		}
		st.LocalBankAccounts = append(st.LocalBankAccounts, created)
		return nil
	})
	return created, err
}

// RemoveBankAccount unlinks the account with accountID. Unknown ids are
// ignored. If the default account is removed, promotion is enabled and no
// other account is flagged default, the oldest remaining account becomes
// default.
func (s *Store) RemoveBankAccount(accountID string) model.AppState {
	return s.apply(func(st *model.AppState) {
		kept := make([]model.LocalBankAccount, 0, len(st.LocalBankAccounts))
		wasDefault := false
		for _, a := range st.LocalBankAccounts {
			if a.ID == accountID {
				wasDefault = a.IsDefault
				continue
			}
			kept = append(kept, a)
		}
		st.LocalBankAccounts = kept

		if wasDefault && s.promote && len(kept) > 0 && st.DefaultCount() == 0 {
			oldest := 0
			for i, a := range kept {
				if a.CreatedAt.Before(kept[oldest].CreatedAt) {
					oldest = i
				}
			}
			kept[oldest].IsDefault = true
		}
	})
}

// SetDefaultBankAccount makes accountID the only default account. Unknown
// ids leave the collection untouched.
func (s *Store) SetDefaultBankAccount(accountID string) model.AppState {
	return s.apply(func(st *model.AppState) {
		if _, ok := st.BankAccount(accountID); !ok {
			return
		}
		for i := range st.LocalBankAccounts {
			st.LocalBankAccounts[i].IsDefault = st.LocalBankAccounts[i].ID == accountID
		}
	})
}

// AddTransaction records a new transaction for the current user at the
// front of the list and returns it.
func (s *Store) AddTransaction(nt model.NewTransaction) (model.Transaction, error) {
	var created model.Transaction
	_, err := s.mutate(func(st *model.AppState) error {
		if st.User == nil {
			return ErrNoUser
		}
		now := s.now()
		created = model.Transaction{
			ID:                   s.uniqueID(id.PrefixTransaction, st),
			UserID:               st.User.ID,
			Type:                 nt.Type,
			SourceAccountID:      nt.SourceAccountID,
			DestinationAccountID: nt.DestinationAccountID,
			AmountSource:         nt.AmountSource,
			CurrencySource:       nt.CurrencySource,
			AmountDestination:    nt.AmountDestination,
			CurrencyDestination:  nt.CurrencyDestination,
			ExchangeRate:         nt.ExchangeRate,
			Fee:                  nt.Fee,
			Status:               nt.Status,
			Description:          nt.Description,
			CreatedAt:            now,
			CompletedAt:          nt.CompletedAt,
		}
		switch {
		case created.Status != model.StatusCompleted:
			created.CompletedAt = nil
		case created.CompletedAt == nil:
			created.CompletedAt = &now
		}
		st.Transactions = append([]model.Transaction{created}, st.Transactions...)
		return nil
	})
	if err != nil {
		return model.Transaction{}, err
	}
	return created, nil
}

// UpdateTransactionStatus sets the status of txnID. Completing stamps
// CompletedAt; any other status clears it. Any transition is allowed and
// unknown ids are ignored.
func (s *Store) UpdateTransactionStatus(txnID string, status model.TransactionStatus) model.AppState {
	return s.apply(func(st *model.AppState) {
		for i := range st.Transactions {
			t := &st.Transactions[i]
			if t.ID != txnID {
				continue
			}
			t.Status = status
			if status == model.StatusCompleted {
				now := s.now()
				t.CompletedAt = &now
			} else {
				t.CompletedAt = nil
			}
			return
		}
	})
}

// UpdateVirtualAccountBalance overwrites the balance of accountID. The
// value is not checked; callers validate before debiting.
func (s *Store) UpdateVirtualAccountBalance(accountID string, balance decimal.Decimal) model.AppState {
	return s.apply(func(st *model.AppState) {
		for i := range st.VirtualAccounts {
			if st.VirtualAccounts[i].ID == accountID {
				st.VirtualAccounts[i].Balance = balance
				return
			}
		}
	})
}

func (s *Store) uniqueID(prefix string, st *model.AppState) string {
	for {
		candidate := s.newID(prefix)
		if !idTaken(st, candidate) {
			return candidate
		}
	}
}

func idTaken(st *model.AppState, candidate string) bool {
	switch id.Prefix(candidate) {
	case id.PrefixBankAccount:
		_, ok := st.BankAccount(candidate)
		return ok
	case id.PrefixTransaction:
		_, ok := st.Transaction(candidate)
		return ok
	}
	_, bank := st.BankAccount(candidate)
	_, txn := st.Transaction(candidate)
	return bank || txn
}
