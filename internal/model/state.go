package model

// AppState is the aggregate root persisted by the store.
// Transactions are ordered newest first.
type AppState struct {
	User              *User              `json:"user"`
	VirtualAccounts   []VirtualAccount   `json:"virtualAccounts"`
	LocalBankAccounts []LocalBankAccount `json:"localBankAccounts"`
	Transactions      []Transaction      `json:"transactions"`
	IsOnboarded       bool               `json:"isOnboarded"`
}

// Empty returns the state of a fresh, un-onboarded session.
func Empty() AppState {
	return AppState{
		VirtualAccounts:   []VirtualAccount{},
		LocalBankAccounts: []LocalBankAccount{},
		Transactions:      []Transaction{},
	}
}

// Clone returns a deep copy that shares no memory with s.
func (s AppState) Clone() AppState {
	out := AppState{
		VirtualAccounts:   append([]VirtualAccount{}, s.VirtualAccounts...),
		LocalBankAccounts: append([]LocalBankAccount{}, s.LocalBankAccounts...),
		Transactions:      make([]Transaction, len(s.Transactions)),
		IsOnboarded:       s.IsOnboarded,
	}
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	for i, t := range s.Transactions {
		out.Transactions[i] = t.clone()
	}
	return out
}

// DefaultBankAccount returns the account flagged as default, if any.
func (s AppState) DefaultBankAccount() (LocalBankAccount, bool) {
	for _, a := range s.LocalBankAccounts {
		if a.IsDefault {
			return a, true
		}
	}
	return LocalBankAccount{}, false
}

// DefaultCount returns how many local accounts carry the default flag.
func (s AppState) DefaultCount() int {
	n := 0
	for _, a := range s.LocalBankAccounts {
		if a.IsDefault {
			n++
		}
	}
	return n
}

// BankAccount looks up a local bank account by id.
func (s AppState) BankAccount(id string) (LocalBankAccount, bool) {
	for _, a := range s.LocalBankAccounts {
		if a.ID == id {
			return a, true
		}
	}
	return LocalBankAccount{}, false
}

// VirtualAccount looks up a virtual account by id.
func (s AppState) VirtualAccount(id string) (VirtualAccount, bool) {
	for _, a := range s.VirtualAccounts {
		if a.ID == id {
			return a, true
		}
	}
	return VirtualAccount{}, false
}

// Transaction looks up a transaction by id.
func (s AppState) Transaction(id string) (Transaction, bool) {
	for _, t := range s.Transactions {
		if t.ID == id {
			return t.clone(), true
		}
	}
	return Transaction{}, false
}
