package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrVenueNotFound = errors.New("venue not found")

var ErrCourtNotFound = errors.New("court not found")

// ErrSlotTaken reports an overlap with an existing non-cancelled
// booking on the same court.
var ErrSlotTaken = errors.New("slot already booked")

var ErrInvalidSlot = errors.New("invalid booking time slot")

var ErrInvalidBookingState = errors.New("invalid booking state")

var ErrNotAllowed = errors.New("not allowed to perform this operation")
