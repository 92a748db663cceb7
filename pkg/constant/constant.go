package constant

const (
	// DefaultUserRoleName is the role granted to every newly registered user.
	DefaultUserRoleName = "USER"

	// ActivationCodeLength is the number of digits in an activation code.
	ActivationCodeLength = 6

	// ActivationCodeMaxAttempts bounds the redraws when a freshly generated
	// code collides with a historical token row.
	ActivationCodeMaxAttempts = 5

	// ActivationCodeAlphabet intentionally excludes '0' so codes are never
	// misread as octal or truncated by leading-zero stripping.
	ActivationCodeAlphabet = "123456789"

	// ActivationTokenTTLMinutes is how long an activation code stays valid.
	ActivationTokenTTLMinutes = 5
)
