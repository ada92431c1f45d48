package tickets

import "errors"

var (
	// ErrTicketNotFound is returned when the ticket does not exist
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrNotOwner is returned when a user operates on another user's ticket
	ErrNotOwner = errors.New("ticket belongs to another user")

	// ErrSeatContended is returned when the seat is currently held by
	// someone else. Expected under load; the client should pick another
	// seat or retry later.
	ErrSeatContended = errors.New("seat is currently held by another user")

	// ErrInvalidSeat is returned when the seat number is outside the show's range
	ErrInvalidSeat = errors.New("seat number is not valid for this show")

	// ErrShowStarted is returned when reserving a seat for a show that already began
	ErrShowStarted = errors.New("show has already started")

	// ErrHoldExpired is returned when the payment window closed before the operation
	ErrHoldExpired = errors.New("seat hold has expired")

	// ErrInvalidTransition is returned when the ticket state forbids the operation
	ErrInvalidTransition = errors.New("operation not allowed in current ticket state")

	// ErrAlreadyConfirmed is returned on a second confirmation attempt
	ErrAlreadyConfirmed = errors.New("ticket is already confirmed")

	// ErrPaymentNotConfirmed is returned when confirming before the payment settled
	ErrPaymentNotConfirmed = errors.New("payment has not been confirmed")

	// ErrPaymentFailed is returned when the payment settled as failed
	ErrPaymentFailed = errors.New("payment failed")
)
