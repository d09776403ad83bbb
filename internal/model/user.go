package model

import (
	"strings"
	"time"
)

// KYCStatus is the identity-verification state of a user.
type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCVerified KYCStatus = "verified"
	KYCRejected KYCStatus = "rejected"
)

// Country is a supported residence country.
type Country string

const (
	CountryIN Country = "IN"
	CountryUS Country = "US"
	CountryUK Country = "UK"
	CountryDE Country = "DE"
)

// User is the single identity owning every account in a session.
type User struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	DateOfBirth string    `json:"dateOfBirth"` // YYYY-MM-DD
	Address     string    `json:"address"`
	Country     Country   `json:"country"`
	KYCStatus   KYCStatus `json:"kycStatus"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FirstName returns the first word of the full name, or "User" when unknown.
func (u *User) FirstName() string {
	if u == nil {
		return "User"
	}
	if f := strings.Fields(u.FullName); len(f) > 0 {
		return f[0]
	}
	return "User"
}
