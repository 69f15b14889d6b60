package domain

import "time"

// Listing status values shared by guides, equipment, vehicles and authorities.
const (
	ListingStatusPending  = "pending"
	ListingStatusApproved = "approved"
	ListingStatusRejected = "rejected"
)

type Guide struct {
	GuideID      int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PhoneNumber  string    `json:"phone_number" db:"phone_number"`
	ProfilePic   *string   `json:"profile_pic" db:"profile_pic"`
	Language     string    `json:"language" db:"language"`
	Location     string    `json:"location" db:"location"`
	Preference   string    `json:"preference" db:"preference"`
	Description  *string   `json:"description" db:"description"`
	Price        *float64  `json:"price" db:"price"`
	Availability bool      `json:"availability" db:"availability"`
	DocumentPath *string   `json:"document_path" db:"document_path"`
	PhotoPath    *string   `json:"photo_path" db:"photo_path"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type CreateGuideRequest struct {
	UserID      int64  `validate:"required,gt=0"`
	Language    string `validate:"required"`
	Location    string `validate:"required"`
	Preference  string `validate:"required"`
	Description *string
	Price       *float64 `validate:"omitempty,gte=0"`
	Document    *Upload
	Photo       *Upload
}

type UpdateGuideRequest struct {
	Language     *string
	Location     *string
	Preference   *string
	Description  *string
	Price        *float64 `validate:"omitempty,gte=0"`
	Availability *bool
}

type Equipment struct {
	EquipmentID int64     `json:"id" db:"id"`
	OwnerID     int64     `json:"owner_id" db:"owner_id"`
	Name        string    `json:"name" db:"name"`
	Type        string    `json:"type" db:"type"`
	Description *string   `json:"description" db:"description"`
	Condition   *string   `json:"condition" db:"condition"`
	PricePerDay *float64  `json:"price_per_day" db:"price_per_day"`
	PhotoPath   *string   `json:"photo_path" db:"photo_path"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type CreateEquipmentRequest struct {
	OwnerID     int64  `validate:"required,gt=0"`
	Name        string `validate:"required"`
	Type        string `validate:"required"`
	Description *string
	Condition   *string
	PricePerDay *float64 `validate:"omitempty,gte=0"`
	Photo       *Upload
}

type UpdateEquipmentRequest struct {
	Name        *string
	Type        *string
	Condition   *string
	Description *string
	PricePerDay *float64 `validate:"omitempty,gte=0"`
}

type Vehicle struct {
	VehicleID    int64     `json:"id" db:"id"`
	OwnerID      int64     `json:"owner_id" db:"owner_id"`
	Type         string    `json:"type" db:"type"`
	Capacity     int       `json:"capacity" db:"capacity"`
	Milage       float64   `json:"milage" db:"milage"`
	Price        float64   `json:"price" db:"price"`
	Description  *string   `json:"description" db:"description"`
	DocumentPath *string   `json:"document_path" db:"document_path"`
	PhotoPath    *string   `json:"photo_path" db:"photo_path"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type CreateVehicleRequest struct {
	OwnerID     int64   `validate:"required,gt=0"`
	Type        string  `validate:"required"`
	Capacity    int     `validate:"required,gt=0"`
	Milage      float64 `validate:"gte=0"`
	Price       float64 `validate:"gte=0"`
	Description *string
	Document    *Upload
	Photo       *Upload
}

type UpdateVehicleRequest struct {
	Type        *string
	Capacity    *int     `validate:"omitempty,gt=0"`
	Milage      *float64 `validate:"omitempty,gte=0"`
	Price       *float64 `validate:"omitempty,gte=0"`
	Description *string
}

type Authority struct {
	AuthorityID  int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Location     string    `json:"location" db:"location"`
	Description  *string   `json:"description" db:"description"`
	DocumentPath *string   `json:"document_path" db:"document_path"`
	PhotoPath    *string   `json:"photo_path" db:"photo_path"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type CreateAuthorityRequest struct {
	UserID      int64  `validate:"required,gt=0"`
	Name        string `validate:"required"`
	Location    string `validate:"required"`
	Description *string
	Document    *Upload
	Photo       *Upload
}

type UpdateAuthorityRequest struct {
	Name        *string
	Location    *string
	Description *string
}
