package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	keyBytes   = 64
	iterations = 210_000
)

var errEmptyDigest = errors.New("empty password digest or salt")

// HashPassword derives a keyed digest of the plain password using a fresh
// random salt. The salt is generated anew on every call and is never
// reused. Both values are returned hex encoded for storage.
func HashPassword(plain string) (digest, salt string, err error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(plain), raw, iterations, keyBytes, sha512.New)
	return hex.EncodeToString(key), hex.EncodeToString(raw), nil
}

// VerifyPassword recomputes the digest of plain with the stored salt and
// compares it against the stored digest in constant time. A malformed or
// missing digest/salt is reported as an error, never as a silent false.
func VerifyPassword(plain, digest, salt string) (bool, error) {
	if digest == "" || salt == "" {
		return false, errEmptyDigest
	}
	rawSalt, err := hex.DecodeString(salt)
	if err != nil {
		return false, fmt.Errorf("decode salt: %w", err)
	}
	rawDigest, err := hex.DecodeString(digest)
	if err != nil {
		return false, fmt.Errorf("decode digest: %w", err)
	}
	key := pbkdf2.Key([]byte(plain), rawSalt, iterations, keyBytes, sha512.New)
	return hmac.Equal(key, rawDigest), nil
}
