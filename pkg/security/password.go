package security

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownHashFormat = errors.New("unknown password hash format")

// Hasher is a single password hashing scheme
type Hasher interface {
	GenerateFromPassword(p string) (string, error)
	VerifyPasswd(p, e string) (bool, error)
}

// Passwords hashes new passwords with one scheme and verifies stored
// hashes with whichever scheme produced them, so switching the configured
// scheme doesn't lock out existing users.
type Passwords struct {
	primary Hasher
	argon   *ArgonHash
	bcrypt  *BcryptHash
	dummy   string
}

func NewPasswords(primary Hasher) (*Passwords, error) {
	p := &Passwords{
		primary: primary,
		argon:   NewArgon(),
		bcrypt:  NewBcrypt(0),
	}

	switch h := primary.(type) {
	case *ArgonHash:
		p.argon = h
	case *BcryptHash:
		p.bcrypt = h
	}

	dummy, err := primary.GenerateFromPassword("dummy-password-for-timing")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash, %w", err)
	}
	p.dummy = dummy

	return p, nil
}

// NewPasswordsFor builds Passwords from a configured scheme name
func NewPasswordsFor(scheme string, bcryptCost int) (*Passwords, error) {
	switch scheme {
	case "argon2id", "":
		return NewPasswords(NewArgon())
	case "bcrypt":
		return NewPasswords(NewBcrypt(bcryptCost))
	default:
		return nil, fmt.Errorf("unsupported password hasher %q", scheme)
	}
}

func (p *Passwords) Hash(password string) (string, error) {
	return p.primary.GenerateFromPassword(password)
}

func (p *Passwords) Verify(password, encoded string) (bool, error) {
	switch {
	case strings.HasPrefix(encoded, argonPrefix):
		return p.argon.VerifyPasswd(password, encoded)
	case isBcryptHash(encoded):
		return p.bcrypt.VerifyPasswd(password, encoded)
	default:
		return false, ErrUnknownHashFormat
	}
}

// VerifyDummy runs a full verification against a throwaway hash. It is
// used when no user matched so that the lookup miss costs as much as a
// wrong password.
func (p *Passwords) VerifyDummy(password string) {
	p.Verify(password, p.dummy)
}
