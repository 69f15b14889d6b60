package domain

import "time"

const (
	BookingTypeGuide     = "guide"
	BookingTypeEquipment = "equipment"
	BookingTypeVehicle   = "vehicle"

	StatusPending = "pending"
)

// Booking dates are YYYY-MM-DD and times are HH:MM.
type Booking struct {
	BookingID   int64     `json:"id" db:"id"`
	Type        string    `json:"type" db:"type"`
	ProviderID  int64     `json:"provider_id" db:"provider_id"`
	CustomerID  int64     `json:"customer_id" db:"customer_id"`
	ItemID      int64     `json:"item_id" db:"item_id"`
	BookDate    string    `json:"book_date" db:"book_date"`
	BookTime    string    `json:"book_time" db:"book_time"`
	ServiceDate *string   `json:"service_date" db:"service_date"`
	ServiceTime *string   `json:"service_time" db:"service_time"`
	DeliverDate *string   `json:"deliver_date" db:"deliver_date"`
	DeliverTime *string   `json:"deliver_time" db:"deliver_time"`
	Quantity    int       `json:"quantity" db:"quantity"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type CreateBookingRequest struct {
	Type        string  `json:"type" validate:"required,oneof=guide equipment vehicle"`
	ProviderID  int64   `json:"provider_id" validate:"required,gt=0"`
	CustomerID  int64   `json:"customer_id" validate:"required,gt=0"`
	ItemID      int64   `json:"item_id" validate:"required,gt=0"`
	BookDate    string  `json:"book_date" validate:"required,datetime=2006-01-02"`
	BookTime    string  `json:"book_time" validate:"required,datetime=15:04"`
	ServiceDate *string `json:"service_date" validate:"omitempty,datetime=2006-01-02"`
	ServiceTime *string `json:"service_time" validate:"omitempty,datetime=15:04"`
	DeliverDate *string `json:"deliver_date" validate:"omitempty,datetime=2006-01-02"`
	DeliverTime *string `json:"deliver_time" validate:"omitempty,datetime=15:04"`
	Quantity    int     `json:"quantity" validate:"required,gte=1"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}
