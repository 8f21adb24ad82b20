package utils

import "golang.org/x/crypto/bcrypt"

// HashPassphrase hashes the shared dashboard passphrase using bcrypt.
func HashPassphrase(passphrase string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassphraseHash compares a plaintext passphrase with a bcrypt hash.
func CheckPassphraseHash(passphrase, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passphrase)) == nil
}
