package constants

// Context keys
const (
	ContextKeyUserID = "user_id"
	ContextKeyUser   = "user"
)

// Validation limits
const (
	MinPasswordLength = 6
	MaxNameLength     = 255
)

// TokenByteLength is the number of random bytes in an access token.
// The plaintext token is the hex encoding, twice this length.
const TokenByteLength = 32
