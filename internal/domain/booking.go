package domain

import "time"

// BookingStatus is the booking lifecycle state.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusProcessing BookingStatus = "processing"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Valid reports whether the status is a known value.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusProcessing, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// SecurityLevel is the service tier of a booking.
type SecurityLevel string

const (
	SecurityLevelStandard  SecurityLevel = "standard"
	SecurityLevelEnhanced  SecurityLevel = "enhanced"
	SecurityLevelExecutive SecurityLevel = "executive"
	SecurityLevelVIP       SecurityLevel = "vip"
)

// Valid reports whether the security level is a known value.
func (l SecurityLevel) Valid() bool {
	switch l {
	case SecurityLevelStandard, SecurityLevelEnhanced, SecurityLevelExecutive, SecurityLevelVIP:
		return true
	}
	return false
}

// DefaultServiceType is applied when a booking request omits the service type.
const DefaultServiceType = "private-hire"

// Booking represents a transport booking owned by exactly one user.
type Booking struct {
	ID              string        `json:"id" db:"id"`
	UserID          string        `json:"user_id" db:"user_id"`
	ServiceType     string        `json:"service_type" db:"service_type"`
	PickupLocation  string        `json:"pickup_location" db:"pickup_location"`
	Destination     string        `json:"destination" db:"destination"`
	PickupTime      time.Time     `json:"pickup_time" db:"pickup_time"`
	EstimatedPrice  float64       `json:"estimated_price" db:"estimated_price"`
	Currency        string        `json:"currency" db:"currency"`
	Status          BookingStatus `json:"status" db:"status"`
	SecurityLevel   SecurityLevel `json:"security_level" db:"security_level"`
	PaymentIntentID *string       `json:"payment_intent_id,omitempty" db:"payment_intent_id"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}
