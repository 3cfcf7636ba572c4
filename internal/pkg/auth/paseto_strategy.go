package auth

import (
	"crypto/sha256"
	"fmt"
	"io"
	"strconv"
	"time"

	"aidanwoods.dev/go-paseto"
	"golang.org/x/crypto/hkdf"

	"github.com/polkiloo/ridepoints/internal/domain/model"
)

const (
	pasetoKeyInfo    = "ridepoints session v4.local"
	pasetoEmailClaim = "email"
)

// PasetoStrategy issues v4.local PASETO tokens keyed from the shared secret.
type PasetoStrategy struct {
	key paseto.V4SymmetricKey
	ttl time.Duration
	now func() time.Time
}

// NewPasetoStrategy derives a 32 byte symmetric key from secret via HKDF-SHA256.
func NewPasetoStrategy(secret string, opts Options) (*PasetoStrategy, error) {
	opts = opts.withDefaults()

	material := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(pasetoKeyInfo)), material); err != nil {
		return nil, fmt.Errorf("derive paseto key: %w", err)
	}
	key, err := paseto.V4SymmetricKeyFromBytes(material)
	if err != nil {
		return nil, fmt.Errorf("build paseto key: %w", err)
	}

	return &PasetoStrategy{key: key, ttl: opts.TTL, now: opts.Now}, nil
}

// IssueToken encrypts the identity with issue and expiry timestamps.
func (s *PasetoStrategy) IssueToken(identity model.Identity) (string, error) {
	now := s.now()
	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetExpiration(now.Add(s.ttl))
	token.SetSubject(strconv.FormatInt(identity.AccountID, 10))
	token.SetString(pasetoEmailClaim, identity.Email)
	return token.V4Encrypt(s.key, nil), nil
}

// ParseToken decrypts the token and checks expiry against the strategy clock.
func (s *PasetoStrategy) ParseToken(token string) (model.Identity, error) {
	parser := paseto.NewParserWithoutExpiryCheck()
	parsed, err := parser.ParseV4Local(s.key, token, nil)
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	expires, err := parsed.GetExpiration()
	if err != nil || !s.now().Before(expires) {
		return model.Identity{}, ErrInvalidToken
	}

	subject, err := parsed.GetSubject()
	if err != nil {
		return model.Identity{}, ErrInvalidToken
	}
	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || accountID <= 0 {
		return model.Identity{}, ErrInvalidToken
	}

	email, err := parsed.GetString(pasetoEmailClaim)
	if err != nil {
		return model.Identity{}, ErrInvalidToken
	}

	return model.Identity{AccountID: accountID, Email: email}, nil
}

func (s *PasetoStrategy) Name() string {
	return "paseto"
}
