package usecase

import (
	"strings"

	"github.com/google/uuid"
)

const referralCodeLength = 10

// NewReferralCode returns a 10 character upper-case hex code drawn from a random UUID.
func NewReferralCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:referralCodeLength])
}
