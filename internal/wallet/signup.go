package wallet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sentra-dev/sentra/internal/activity"
	"github.com/sentra-dev/sentra/internal/id"
	"github.com/sentra-dev/sentra/internal/model"
)

// StartSignup remembers the name and email entered on the signup screen
// so the KYC form can be pre-filled.
func (s *Service) StartSignup(name, email string) error {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)

	var errs ValidationErrors
	if name == "" {
		errs.add("name", "Please enter your name")
	}
	if email == "" {
		errs.add("email", "Please enter your email")
	}
	if err := errs.err(); err != nil {
		return err
	}

	s.store.SetSignup(name, email)
	return nil
}

// KYCForm holds the identity details submitted for verification.
type KYCForm struct {
	FullName    string
	Email       string
	Phone       string
	DateOfBirth string // YYYY-MM-DD
	Address     string
}

// Prefill returns a KYC form seeded from an in-progress signup.
func (s *Service) Prefill() KYCForm {
	name, email := s.store.Signup()
	return KYCForm{FullName: name, Email: email}
}

// Validate reports every missing or malformed field.
func (f KYCForm) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(f.FullName) == "" {
		errs.add("fullName", "Full name is required")
	}
	if strings.TrimSpace(f.Email) == "" {
		errs.add("email", "Email is required")
	}
	if strings.TrimSpace(f.Phone) == "" {
		errs.add("phone", "Phone number is required")
	}
	if f.DateOfBirth == "" {
		errs.add("dateOfBirth", "Date of birth is required")
	} else if _, err := time.Parse(time.DateOnly, f.DateOfBirth); err != nil {
		errs.add("dateOfBirth", "Enter a valid date of birth (YYYY-MM-DD)")
	}
	if strings.TrimSpace(f.Address) == "" {
		errs.add("address", "Address is required")
	}
	return errs.err()
}

// SubmitKYC verifies the form, waits for the simulated review and signs
// the user in. Any in-progress signup data is discarded.
func (s *Service) SubmitKYC(ctx context.Context, form KYCForm) (model.User, error) {
	if err := form.Validate(); err != nil {
		return model.User{}, err
	}
	if err := s.latency.Wait(ctx, StepKYC); err != nil {
		return model.User{}, fmt.Errorf("verifying identity: %w", err)
	}

	u := model.User{
		ID:          s.newID(id.PrefixUser),
		FullName:    strings.TrimSpace(form.FullName),
		Email:       strings.TrimSpace(form.Email),
		Phone:       strings.TrimSpace(form.Phone),
		DateOfBirth: form.DateOfBirth,
		Address:     strings.TrimSpace(form.Address),
		Country:     model.CountryIN,
		KYCStatus:   model.KYCVerified,
		CreatedAt:   s.now(),
	}
	s.store.SetUser(u)
	s.store.SetOnboarded(true)
	s.store.ClearSignup()

	s.log.Info("identity verified", s.log.Args("user", u.ID))
	s.record(activity.ActionKYCVerified, u.FullName, u.ID)
	return u, nil
}
