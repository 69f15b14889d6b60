package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RegistrationPayload is a submitted registration held until its OTP is confirmed.
// It is never written to the users table directly. PasswordHash is already the bcrypt
// digest, so the pending stores never see a plaintext password.
type RegistrationPayload struct {
	Email        string `json:"email" dynamodbav:"email"`
	FirstName    string `json:"first_name" dynamodbav:"first_name"`
	LastName     string `json:"last_name" dynamodbav:"last_name"`
	Username     string `json:"username" dynamodbav:"username"`
	PhoneNumber  string `json:"phone_number" dynamodbav:"phone_number"`
	NICPassport  string `json:"nic_passport" dynamodbav:"nic_passport"`
	Location     string `json:"location" dynamodbav:"location"`
	PasswordHash string `json:"password_hash" dynamodbav:"password_hash"`
}

// DeriveUsername returns the lowercased first name followed by the lowercased last name.
func DeriveUsername(firstName, lastName string) string {
	return strings.ToLower(firstName) + strings.ToLower(lastName)
}

// PhoneNumber decodes from either a JSON string or a JSON number.
type PhoneNumber string

func (p *PhoneNumber) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = PhoneNumber(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("phone_number must be a number or a string: %w", err)
	}
	*p = PhoneNumber(n.String())
	return nil
}

// RegisterRequest is the /register body. Password is capped at bcrypt's 72-byte input limit.
type RegisterRequest struct {
	Email       string      `json:"email" validate:"required,email"`
	FirstName   string      `json:"first_name" validate:"required"`
	LastName    string      `json:"last_name" validate:"required"`
	Username    string      `json:"username"`
	PhoneNumber PhoneNumber `json:"phone_number" validate:"required"`
	NICPassport string      `json:"nic_passport" validate:"required"`
	Location    string      `json:"location" validate:"required"`
	Password    string      `json:"password" validate:"required,max=72"`
}

// Payload converts the request into a pending registration carrying passwordHash. The
// submitted username is ignored in favour of the derived one.
func (r RegisterRequest) Payload(passwordHash string) *RegistrationPayload {
	return &RegistrationPayload{
		Email:        r.Email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Username:     DeriveUsername(r.FirstName, r.LastName),
		PhoneNumber:  string(r.PhoneNumber),
		NICPassport:  r.NICPassport,
		Location:     r.Location,
		PasswordHash: passwordHash,
	}
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// AuthResult is returned by every successful token-issuing operation.
type AuthResult struct {
	AccessToken string
	TokenType   string
	Email       string
	UserID      int64
	UserType    int
}

const TokenTypeBearer = "bearer"
