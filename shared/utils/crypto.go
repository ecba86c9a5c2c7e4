package utils

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	cookieHashKeyLen  = 64 // HMAC-SHA256 authentication key
	cookieBlockKeyLen = 32 // AES-256 encryption key
	csrfKeyLen        = 32
)

// DeriveCookieKeys expands one configured secret into the authentication and
// encryption keys of the session cookie.
func DeriveCookieKeys(secret string) (hashKey, blockKey []byte, err error) {
	hashKey, err = deriveKey(secret, "session-cookie-hash", cookieHashKeyLen)
	if err != nil {
		return nil, nil, err
	}
	blockKey, err = deriveKey(secret, "session-cookie-block", cookieBlockKeyLen)
	if err != nil {
		return nil, nil, err
	}
	return hashKey, blockKey, nil
}

func deriveKey(secret, info string, n int) ([]byte, error) {
	key := make([]byte, n)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(info))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("deriving %s key: %w", info, err)
	}
	return key, nil
}

// DeriveCSRFKey derives the key CSRF tokens are signed with.
func DeriveCSRFKey(secret string) ([]byte, error) {
	return deriveKey(secret, "csrf-token", csrfKeyLen)
}
