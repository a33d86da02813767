package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var (
	// ErrTokenInvalid Token 不合法（签名错误、格式错误等）
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired Token 已过期
	ErrTokenExpired = errors.New("token expired")
)

// Signer 签发 / 校验用户 Token（HS256），Subject 为用户名
type Signer struct {
	secret []byte
	issuer string
}

// NewSigner ...
func NewSigner(secret, issuer string) *Signer {
	return &Signer{secret: []byte(secret), issuer: issuer}
}

// Issue 为用户签发 Token
func (s *Signer) Issue(username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse 校验 Token 并返回用户名
func (s *Signer) Parse(tokenString string) (string, error) {
	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", errors.Wrap(ErrTokenInvalid, err.Error())
	}
	if claims.Subject == "" {
		return "", errors.Wrap(ErrTokenInvalid, "subject is empty")
	}
	return claims.Subject, nil
}
