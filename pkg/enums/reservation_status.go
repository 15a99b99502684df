package enums

import "fmt"

// ReservationStatus tracks a table reservation request.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCanceled  ReservationStatus = "canceled"
	ReservationStatusDone      ReservationStatus = "done"
)

var validReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCanceled,
	ReservationStatusDone,
}

var reservationStatusTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCanceled},
	ReservationStatusConfirmed: {ReservationStatusDone, ReservationStatusCanceled},
	ReservationStatusCanceled:  {},
	ReservationStatusDone:      {},
}

// String implements fmt.Stringer.
func (r ReservationStatus) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ReservationStatus.
func (r ReservationStatus) IsValid() bool {
	for _, candidate := range validReservationStatuses {
		if candidate == r {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
func (r ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, candidate := range reservationStatusTransitions[r] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ParseReservationStatus converts the raw string to ReservationStatus.
func ParseReservationStatus(value string) (ReservationStatus, error) {
	for _, candidate := range validReservationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid reservation status %q", value)
}
