package dto

// Client facing error messages.
const (
	MsgCredentialsRequired = "Email and Password are required"
	MsgUserExists          = "User already exists"
	MsgUserNotFound        = "User not found"
	MsgInvalidPassword     = "Invalid password"
	MsgInvalidPoints       = "Invalid points"
	MsgInvalidReferral     = "Referral code must be a string"
	MsgAccessDenied        = "Access Denied"
	MsgInvalidToken        = "Invalid Token"
	MsgInternal            = "Something broke!"
	MsgServiceUnavailable  = "Service Unavailable"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
