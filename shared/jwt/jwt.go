package jwt

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dondesang/dondesang/shared/domain"
	internal_errors "github.com/dondesang/dondesang/shared/errors"
	"github.com/golang-jwt/jwt/v5"
)

// ErrIncompleteIdentity is returned when a token decodes but lacks one of id, email or role.
var ErrIncompleteIdentity = errors.New("token does not carry a complete identity")

// TokenDecoder turns the access token returned by the login endpoint into a Session.
type TokenDecoder interface {
	Decode(token string) (domain.Session, error)
}

// New returns a verifying HS256 decoder when secretKey is set and a plain
// JSON decoder otherwise.
func New(secretKey string) TokenDecoder {
	if secretKey == "" {
		return plainDecoder{}
	}
	return &Jwt{secretKey: secretKey}
}

// plainDecoder trusts the token body: the API serialises {id, email, role}
// directly into access_token.
type plainDecoder struct{}

func (plainDecoder) Decode(token string) (domain.Session, error) {
	var s domain.Session
	if err := json.Unmarshal([]byte(token), &s); err != nil {
		return domain.Session{}, &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusBadGateway}
	}
	if !s.Complete() {
		return domain.Session{}, ErrIncompleteIdentity
	}
	return s, nil
}

type Jwt struct {
	secretKey string
}

func (j *Jwt) Decode(jwtStr string) (domain.Session, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		// Verify signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		return domain.Session{}, &internal_errors.ErrorWithStatusCode{Message: "Invalid token signature", StatusCode: http.StatusUnauthorized}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Session{}, ErrIncompleteIdentity
	}
	id, _ := claims["id"].(float64)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	s := domain.Session{Id: int64(id), Email: email, Role: domain.Role(role)}
	if !s.Complete() {
		return domain.Session{}, ErrIncompleteIdentity
	}
	return s, nil
}
