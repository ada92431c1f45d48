package tickets

// State is the lifecycle state of a ticket.
//
// HOLDING and AWAITING_PAYMENT are the only states a ticket can leave.
// CONFIRMED, CANCELLED, EXPIRED and PAYMENT_FAILED are terminal; a user
// whose ticket lands in a terminal state other than CONFIRMED must reserve
// the seat again from scratch.
type State string

const (
	StateHolding         State = "HOLDING"
	StateAwaitingPayment State = "AWAITING_PAYMENT"
	StateConfirmed       State = "CONFIRMED"
	StateCancelled       State = "CANCELLED"
	StateExpired         State = "EXPIRED"
	StatePaymentFailed   State = "PAYMENT_FAILED"
)

// IsValid checks if the state is a known lifecycle state
func (s State) IsValid() bool {
	switch s {
	case StateHolding, StateAwaitingPayment, StateConfirmed,
		StateCancelled, StateExpired, StatePaymentFailed:
		return true
	}
	return false
}

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// CanBeginPayment reports whether a payment can be opened from this state
func (s State) CanBeginPayment() bool {
	return s == StateHolding
}

// CanConfirm reports whether the ticket can move to CONFIRMED
func (s State) CanConfirm() bool {
	return s == StateAwaitingPayment
}

// CanCancel reports whether the user can still cancel
func (s State) CanCancel() bool {
	return s == StateHolding || s == StateAwaitingPayment
}

// CanExpire reports whether the sweeper may expire the ticket
func (s State) CanExpire() bool {
	return s == StateHolding || s == StateAwaitingPayment
}

// IsTerminal reports whether no further transition is possible
func (s State) IsTerminal() bool {
	switch s {
	case StateConfirmed, StateCancelled, StateExpired, StatePaymentFailed:
		return true
	}
	return false
}

// IsActive reports whether the ticket still occupies its seat. Active
// tickets are what the partial unique index and the demand counter see.
func (s State) IsActive() bool {
	return s == StateHolding || s == StateAwaitingPayment || s == StateConfirmed
}

// ActiveStates lists the states counted as seat occupancy
func ActiveStates() []State {
	return []State{StateHolding, StateAwaitingPayment, StateConfirmed}
}
