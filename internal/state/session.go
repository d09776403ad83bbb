package state

// Session keys for data captured before onboarding completes.
const (
	SignupNameKey  = "signup_name"
	SignupEmailKey = "signup_email"
)

// SetSignup remembers the name and email typed on the signup screen.
func (s *Store) SetSignup(name, email string) {
	if err := s.session.Set(SignupNameKey, name); err != nil {
		s.log.Error("failed to store signup name", s.log.Args("err", err))
	}
	if err := s.session.Set(SignupEmailKey, email); err != nil {
		s.log.Error("failed to store signup email", s.log.Args("err", err))
	}
}

// Signup returns the in-progress signup name and email, empty if unset.
func (s *Store) Signup() (name, email string) {
	name, _, err := s.session.Get(SignupNameKey)
	if err != nil {
		s.log.Error("failed to read signup name", s.log.Args("err", err))
	}
	email, _, err = s.session.Get(SignupEmailKey)
	if err != nil {
		s.log.Error("failed to read signup email", s.log.Args("err", err))
	}
	return name, email
}

// ClearSignup forgets any in-progress signup.
func (s *Store) ClearSignup() {
	for _, k := range []string{SignupNameKey, SignupEmailKey} {
		if err := s.session.Remove(k); err != nil {
			s.log.Error("failed to clear signup data", s.log.Args("key", k, "err", err))
		}
	}
}
