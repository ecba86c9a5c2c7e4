// Package csrf mints and checks signed double-submit tokens.
//
// A token is "<nonce>.<mac>" with mac = HMAC-SHA256(key, nonce), both parts
// base64url encoded. A request passes only when the cookie and form tokens are
// equal and the token was minted with the server key, so a cookie planted by a
// sibling subdomain is not enough.
package csrf

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"
)

const nonceLength = 32 // bytes

var ErrEmptyKey = errors.New("csrf: signing key is empty")

var encoding = base64.RawURLEncoding

type Signer struct {
	key []byte
}

func NewSigner(key []byte) (*Signer, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	return &Signer{key: key}, nil
}

// Issue returns a fresh signed token.
func (s *Signer) Issue() (string, error) {
	nonce := make([]byte, nonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	return encoding.EncodeToString(nonce) + "." + encoding.EncodeToString(s.mac(nonce)), nil
}

// Valid reports whether token is well formed and carries our signature.
func (s *Signer) Valid(token string) bool {
	encNonce, encMac, ok := strings.Cut(token, ".")
	if !ok {
		return false
	}
	nonce, err := encoding.DecodeString(encNonce)
	if err != nil || len(nonce) != nonceLength {
		return false
	}
	mac, err := encoding.DecodeString(encMac)
	if err != nil {
		return false
	}
	return hmac.Equal(mac, s.mac(nonce))
}

// Verify compares the cookie token with the form token in constant time and
// checks the signature.
func (s *Signer) Verify(cookieToken, formToken string) bool {
	if cookieToken == "" || formToken == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(cookieToken), []byte(formToken)) != 1 {
		return false
	}
	return s.Valid(cookieToken)
}

func (s *Signer) mac(nonce []byte) []byte {
	h := hmac.New(sha256.New, s.key)
	h.Write(nonce)
	return h.Sum(nil)
}
