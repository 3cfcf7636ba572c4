package auth

import (
	"errors"
	"time"

	"github.com/polkiloo/ridepoints/internal/domain/model"
)

// ErrInvalidToken covers every token rejection: malformed, forged or expired.
var ErrInvalidToken = errors.New("invalid auth token")

// DefaultTTL is the session token lifetime used when none is configured.
const DefaultTTL = time.Hour

// Strategy issues and verifies session tokens.
type Strategy interface {
	IssueToken(identity model.Identity) (string, error)
	ParseToken(token string) (model.Identity, error)
	Name() string
}

// Options tune token strategies.
type Options struct {
	TTL time.Duration
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
