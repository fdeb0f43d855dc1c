package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_HappyPath(t *testing.T) {
	steps := []struct {
		event RequestEvent
		want  RequestStatus
	}{
		{EventApprove, RequestStatusApproved},
		{EventRequestNDA, RequestStatusNDARequested},
		{EventConfirmNDA, RequestStatusNDAReceived},
		{EventShareInformation, RequestStatusInformationShared},
	}

	current := RequestStatusPending
	for _, step := range steps {
		next, err := Transition(current, step.event)
		require.NoError(t, err, "event %s from %s", step.event, current)
		assert.Equal(t, step.want, next)
		current = next
	}
}

func TestTransition_RejectPaths(t *testing.T) {
	for _, from := range []RequestStatus{RequestStatusPending, RequestStatusApproved} {
		next, err := Transition(from, EventReject)
		require.NoError(t, err)
		assert.Equal(t, RequestStatusRejected, next)
	}

	// Terminal and NDA-phase states cannot be rejected.
	for _, from := range []RequestStatus{RequestStatusRejected, RequestStatusNDARequested, RequestStatusNDAReceived, RequestStatusInformationShared} {
		_, err := Transition(from, EventReject)
		assert.ErrorIs(t, err, ErrInvalidTransition, "from %s", from)
	}
}

func TestTransition_GuardsInvalidCombinations(t *testing.T) {
	cases := []struct {
		from  RequestStatus
		event RequestEvent
	}{
		{RequestStatusRejected, EventApprove},
		{RequestStatusApproved, EventApprove},
		{RequestStatusPending, EventRequestNDA},
		{RequestStatusPending, EventConfirmNDA},
		{RequestStatusApproved, EventShareInformation},
		{RequestStatusInformationShared, EventShareInformation},
	}
	for _, tc := range cases {
		next, err := Transition(tc.from, tc.event)
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s from %s", tc.event, tc.from)
		assert.Equal(t, tc.from, next, "status must be unchanged on rejection")
	}
}

func TestActionsFor_NDARequestedHasNoActions(t *testing.T) {
	assert.Empty(t, ActionsFor(RequestStatusNDARequested, ViewerRequester))
	assert.Empty(t, ActionsFor(RequestStatusNDARequested, ViewerAdmin))
}

func TestActionsFor_AdminSurface(t *testing.T) {
	assert.Equal(t, []RequestEvent{EventApprove, EventReject}, ActionsFor(RequestStatusPending, ViewerAdmin))
	assert.Equal(t, []RequestEvent{EventRequestNDA, EventReject}, ActionsFor(RequestStatusApproved, ViewerAdmin))
	assert.Equal(t, []RequestEvent{EventShareInformation}, ActionsFor(RequestStatusNDAReceived, ViewerAdmin))
	assert.Empty(t, ActionsFor(RequestStatusRejected, ViewerAdmin))
}

func TestStatusMessage_WaitingOnCounterpart(t *testing.T) {
	msg := StatusMessage(RequestStatusNDARequested, ViewerRequester)
	assert.Equal(t, "Esperando la firma del acuerdo de confidencialidad.", msg)
}

func TestRequestKey(t *testing.T) {
	assert.Equal(t, "asset-1#user-9", RequestKey("asset-1", "user-9"))
}
