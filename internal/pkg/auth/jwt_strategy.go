package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/polkiloo/ridepoints/internal/domain/model"
)

type jwtClaims struct {
	AccountID int64  `json:"id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// JWTStrategy signs HS256 JSON Web Tokens.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	opts = opts.withDefaults()
	return &JWTStrategy{
		secret: []byte(secret),
		ttl:    opts.TTL,
		now:    opts.Now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(opts.Now),
		),
	}
}

// IssueToken generates a signed token for the identity.
func (s *JWTStrategy) IssueToken(identity model.Identity) (string, error) {
	now := s.now()
	claims := jwtClaims{
		AccountID: identity.AccountID,
		Email:     identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.AccountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates signature and expiry and returns the embedded identity.
func (s *JWTStrategy) ParseToken(token string) (model.Identity, error) {
	var claims jwtClaims
	parsed, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.AccountID <= 0 {
		return model.Identity{}, ErrInvalidToken
	}
	return model.Identity{AccountID: claims.AccountID, Email: claims.Email}, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
