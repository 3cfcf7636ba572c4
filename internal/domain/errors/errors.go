package errors

import "errors"

var (
	ErrAlreadyExists     = errors.New("already exists")
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidPoints     = errors.New("invalid points")
	ErrReferralCodeTaken = errors.New("referral code taken")
)
