package tickets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateValidity(t *testing.T) {
	for _, s := range []State{
		StateHolding, StateAwaitingPayment, StateConfirmed,
		StateCancelled, StateExpired, StatePaymentFailed,
	} {
		require.Truef(t, s.IsValid(), "state %s", s)
	}

	require.False(t, State("BOOKED").IsValid())
	require.False(t, State("").IsValid())
}

func TestStateGuards(t *testing.T) {
	tests := []struct {
		state           State
		canBeginPayment bool
		canConfirm      bool
		canCancel       bool
		canExpire       bool
		terminal        bool
		active          bool
	}{
		{StateHolding, true, false, true, true, false, true},
		{StateAwaitingPayment, false, true, true, true, false, true},
		{StateConfirmed, false, false, false, false, true, true},
		{StateCancelled, false, false, false, false, true, false},
		{StateExpired, false, false, false, false, true, false},
		{StatePaymentFailed, false, false, false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			require.Equal(t, tt.canBeginPayment, tt.state.CanBeginPayment())
			require.Equal(t, tt.canConfirm, tt.state.CanConfirm())
			require.Equal(t, tt.canCancel, tt.state.CanCancel())
			require.Equal(t, tt.canExpire, tt.state.CanExpire())
			require.Equal(t, tt.terminal, tt.state.IsTerminal())
			require.Equal(t, tt.active, tt.state.IsActive())
		})
	}
}

func TestActiveStatesMatchGuard(t *testing.T) {
	for _, s := range ActiveStates() {
		require.True(t, s.IsActive())
	}
}
