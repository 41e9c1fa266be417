package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// allowedBookingTransitions is the directed graph of permitted status
// changes. Completed and Cancelled are terminal.
var allowedBookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

// CanBookingTransition reports whether from -> to is a permitted booking
// status change.
func CanBookingTransition(from, to BookingStatus) bool {
	for _, s := range allowedBookingTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Booking struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	UserID    int64  `json:"user_id"`
	// A booking references a vehicle, a driver (driver-only hire), or both.
	VehicleID       *int64        `json:"vehicle_id,omitempty"`
	DriverID        *int64        `json:"driver_id,omitempty"`
	StartDate       string        `json:"start_date"` // YYYY-MM-DD
	StartTime       string        `json:"start_time"` // HH:MM
	EndDate         string        `json:"end_date"`
	EndTime         string        `json:"end_time"`
	TotalCostInr    int64         `json:"total_cost_inr"`
	Status          BookingStatus `json:"status"`
	PickupLocation  string        `json:"pickup_location"`
	DropoffLocation string        `json:"dropoff_location"`
	DistanceKm      float64       `json:"distance_km,omitempty"`
	WithDriver      bool          `json:"with_driver,omitempty"`
	// Version guards concurrent updates; every successful update
	// increments it.
	Version   int32  `json:"version"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

const bookingDateTimeLayout = "2006-01-02T15:04"

// StartAt combines the booking's start date and time.
func (b *Booking) StartAt() (time.Time, error) {
	return time.Parse(bookingDateTimeLayout, b.StartDate+"T"+b.StartTime)
}

// EndAt combines the booking's end date and time.
func (b *Booking) EndAt() (time.Time, error) {
	return time.Parse(bookingDateTimeLayout, b.EndDate+"T"+b.EndTime)
}

// Transition applies a status change, rejecting anything the state machine
// does not permit.
func (b *Booking) Transition(to BookingStatus) error {
	if !CanBookingTransition(b.Status, to) {
		return ErrInvalidTransition
	}
	b.Status = to
	return nil
}

// BookingDecision is a driver's response to a pending hire request.
type BookingDecision string

const (
	BookingDecisionAccept  BookingDecision = "Accept"
	BookingDecisionDecline BookingDecision = "Decline"
)
