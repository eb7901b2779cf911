package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

const issuer = "finance-church-personal"

var ErrInvalidToken = fmt.Errorf("%w: the token is invalid or expired", models.ErrAuthentication)

// Claims are the claims of a department token.
type Claims struct {
	Department models.Department `json:"department"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 signed department tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens returns a token issuer. Without a secret, a random one is generated
// and tokens stop being valid on restart.
func NewTokens(secret []byte, ttl time.Duration) (*Tokens, error) {
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("could not generate token secret: %w", err)
		}
	}

	return &Tokens{secret: secret, ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token for the department.
func (t *Tokens) Issue(department models.Department) (string, error) {
	now := t.now()
	claims := Claims{
		Department: department,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   department.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify returns the department the token was issued for.
func (t *Tokens) Verify(token string) (models.Department, error) {
	keyFunc := func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return t.secret, nil
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, keyFunc, jwt.WithIssuer(issuer), jwt.WithExpirationRequired(), jwt.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	if !claims.Department.Valid() {
		return "", ErrInvalidToken
	}

	return claims.Department, nil
}
