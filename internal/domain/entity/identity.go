package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// Identity is the authenticated caller as supplied by the external identity provider
type Identity struct {
	Subject     string
	Email       string
	DisplayName string
	Phone       string
}

// Normalize trims every field and lower-cases the email
func (i Identity) Normalize() Identity {
	return Identity{
		Subject:     strings.TrimSpace(i.Subject),
		Email:       NormalizeEmail(i.Email),
		DisplayName: strings.TrimSpace(i.DisplayName),
		Phone:       strings.TrimSpace(i.Phone),
	}
}

// Validate requires a plausible email, the identity key of an account
func (i Identity) Validate() error {
	at := strings.Index(i.Email, "@")
	if at <= 0 || at == len(i.Email)-1 {
		return errs.ErrInvalidIdentity
	}
	return nil
}

// ResolvedDisplayName falls back to the local part of the email
func (i Identity) ResolvedDisplayName() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	local, _, _ := strings.Cut(i.Email, "@")
	return local
}

// NormalizeEmail returns the canonical form used for lookups and uniqueness
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
