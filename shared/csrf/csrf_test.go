package csrf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSigner(t *testing.T, key string) *Signer {
	t.Helper()
	s, err := NewSigner([]byte(key))
	require.NoError(t, err)
	return s
}

func flipFirst(s string) string {
	if s[0] == 'A' {
		return "B" + s[1:]
	}
	return "A" + s[1:]
}

func TestNewSignerEmptyKey(t *testing.T) {
	_, err := NewSigner(nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestIssue(t *testing.T) {
	s := newSigner(t, "key")

	token1, err := s.Issue()
	require.NoError(t, err)
	token2, err := s.Issue()
	require.NoError(t, err)

	assert.NotEqual(t, token1, token2)
	assert.Len(t, strings.Split(token1, "."), 2)
	assert.True(t, s.Valid(token1))
}

func TestValid(t *testing.T) {
	s := newSigner(t, "key")
	other := newSigner(t, "other-key")
	token, err := s.Issue()
	require.NoError(t, err)
	nonce, mac, _ := strings.Cut(token, ".")

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"issued token", token, true},
		{"no separator", nonce + mac, false},
		{"tampered mac", nonce + "." + flipFirst(mac), false},
		{"short nonce", "AAAA." + mac, false},
		{"not base64", "!!!." + mac, false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Valid(tt.token))
		})
	}

	assert.False(t, other.Valid(token), "token minted with another key")
}

func TestVerify(t *testing.T) {
	s := newSigner(t, "key")
	token, err := s.Issue()
	require.NoError(t, err)
	another, err := s.Issue()
	require.NoError(t, err)

	tests := []struct {
		name        string
		cookieToken string
		formToken   string
		want        bool
	}{
		{"matching tokens", token, token, true},
		{"different signed tokens", token, another, false},
		{"prefix of token", token, token[:4], false},
		{"matching unsigned tokens", "forged", "forged", false},
		{"empty cookie", "", token, false},
		{"empty form", token, "", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Verify(tt.cookieToken, tt.formToken))
		})
	}
}
