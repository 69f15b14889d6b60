package dynamo

// Attribute names of the registration_verifications table.
const (
	fieldEmail     = "email"
	fieldType      = "type"
	fieldExpiresAt = "expires_at"
	fieldFailures  = "failures"
)

// Sort key values.
const (
	typeOTP     = "otp"
	typePending = "pending"
)
