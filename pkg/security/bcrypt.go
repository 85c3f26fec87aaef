package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type BcryptHash struct {
	Cost int
}

func NewBcrypt(cost int) *BcryptHash {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &BcryptHash{Cost: cost}
}

func (b *BcryptHash) GenerateFromPassword(p string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p), b.Cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func (b *BcryptHash) VerifyPasswd(p, e string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(e), []byte(p))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func isBcryptHash(e string) bool {
	return len(e) > 4 && e[0] == '$' && e[1] == '2' && e[3] == '$'
}
