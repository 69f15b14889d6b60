package domain

import "time"

// DefaultUserType is the value the users.type column defaults to.
const DefaultUserType = 1

type User struct {
	UserID       int64      `json:"id" db:"id"`
	FirstName    string     `json:"first_name" db:"first_name"`
	LastName     string     `json:"last_name" db:"last_name"`
	Username     string     `json:"username" db:"username"`
	PhoneNumber  string     `json:"phone_number" db:"phone_number"`
	Location     string     `json:"location" db:"location"`
	PasswordHash string     `json:"-" db:"password"`
	NICPassport  string     `json:"nic_passport" db:"nic_passport"`
	Email        string     `json:"email" db:"email"`
	Type         int        `json:"type" db:"type"`
	DateOfBirth  *time.Time `json:"date_of_birth" db:"date_of_birth"`
	ProfilePic   *string    `json:"profile_pic" db:"profile_pic"`
	Bio          *string    `json:"bio" db:"bio"`
	CreatedAt    time.Time  `json:"created" db:"created_at"`
}

// Profile is the public view of a user, enriched with follow counts relative to a viewer.
type Profile struct {
	FirstName   string  `json:"firstname"`
	LastName    string  `json:"lastname"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	ContactInfo string  `json:"contactInfo"`
	DateOfBirth *string `json:"dateOfBirth"`
	ProfilePic  *string `json:"profilePic"`
	Bio         *string `json:"bio"`
	Type        int     `json:"type"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	IsFollowed  bool    `json:"is_followed"`
}

// UpdateProfileRequest carries the optional fields of a profile update. Nil fields are left unchanged.
type UpdateProfileRequest struct {
	UserID      int64   `validate:"required,gt=0"`
	Username    *string `validate:"omitempty,min=1"`
	Email       *string `validate:"omitempty,email"`
	ContactInfo *string
	DateOfBirth *string // expected format: YYYY-MM-DD
	Bio         *string
	ProfilePic  *Upload
}
