package entities

import (
	"errors"
	"time"
)

// RequestStatus is the lifecycle of an information request against an asset.
//
// Happy path: pending → approved → nda_requested → nda_received →
// information_shared, with rejected reachable from pending or approved as a
// terminal alternative.

type RequestStatus string

const (
	RequestStatusPending           RequestStatus = "pending"
	RequestStatusApproved          RequestStatus = "approved"
	RequestStatusRejected          RequestStatus = "rejected"
	RequestStatusNDARequested      RequestStatus = "nda_requested"
	RequestStatusNDAReceived       RequestStatus = "nda_received"
	RequestStatusInformationShared RequestStatus = "information_shared"
)

// RequestEvent names a transition trigger on an information request.
type RequestEvent string

const (
	EventApprove          RequestEvent = "approve"
	EventReject           RequestEvent = "reject"
	EventRequestNDA       RequestEvent = "request_nda"
	EventConfirmNDA       RequestEvent = "confirm_nda"
	EventShareInformation RequestEvent = "share_information"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// InformationRequest tracks a member's ask for additional information about a
// listed asset, gated by an NDA exchange before anything sensitive is shared.
//
// Storage model (DynamoDB):
//   - PK: id = "<asset_id>#<requester_id>", which makes the one-request-per
//     (asset, requester) rule a conditional-put concern
//   - GSI1 (requester_id-index): requester_id

type InformationRequest struct {
	ID          string        `json:"id"`
	AssetID     string        `json:"asset_id"`
	RequesterID string        `json:"requester_id"`
	Status      RequestStatus `json:"status"`
	Note        string        `json:"note,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// RequestKey builds the deterministic primary key for an (asset, requester)
// pair. Creating twice for the same pair fails the put condition.
func RequestKey(assetID, requesterID string) string {
	return assetID + "#" + requesterID
}

// Transition is the guarded state machine for request statuses. Any
// event/state combination outside the table returns ErrInvalidTransition;
// callers must persist the result with a compare-and-swap on the prior status
// so concurrent actors cannot overwrite each other.
func Transition(current RequestStatus, event RequestEvent) (RequestStatus, error) {
	switch event {
	case EventApprove:
		if current == RequestStatusPending {
			return RequestStatusApproved, nil
		}
	case EventReject:
		if current == RequestStatusPending || current == RequestStatusApproved {
			return RequestStatusRejected, nil
		}
	case EventRequestNDA:
		if current == RequestStatusApproved {
			return RequestStatusNDARequested, nil
		}
	case EventConfirmNDA:
		if current == RequestStatusNDARequested {
			return RequestStatusNDAReceived, nil
		}
	case EventShareInformation:
		if current == RequestStatusNDAReceived {
			return RequestStatusInformationShared, nil
		}
	}
	return current, ErrInvalidTransition
}

// RequestViewer distinguishes the two surfaces that render a request.
type RequestViewer string

const (
	ViewerRequester RequestViewer = "requester"
	ViewerAdmin     RequestViewer = "admin"
)

// ActionsFor reproduces the button set each surface offers for a given
// status. This is the view-model guard; the API endpoints separately enforce
// Transition, so a stale surface can never force an invalid write.
//
// Note the nda_requested hole: neither surface offers an action there — the
// NDA exchange happens off-platform and the row is advanced by the back
// office once the signed document arrives.
func ActionsFor(status RequestStatus, viewer RequestViewer) []RequestEvent {
	if viewer == ViewerAdmin {
		switch status {
		case RequestStatusPending:
			return []RequestEvent{EventApprove, EventReject}
		case RequestStatusApproved:
			return []RequestEvent{EventRequestNDA, EventReject}
		case RequestStatusNDAReceived:
			return []RequestEvent{EventShareInformation}
		}
	}
	return nil
}

// StatusMessage is the explanatory line each surface shows for a status.
func StatusMessage(status RequestStatus, viewer RequestViewer) string {
	if viewer == ViewerRequester {
		switch status {
		case RequestStatusPending:
			return "Tu solicitud está pendiente de revisión."
		case RequestStatusApproved:
			return "Solicitud aprobada. Pronto recibirás el acuerdo de confidencialidad."
		case RequestStatusRejected:
			return "Tu solicitud ha sido rechazada."
		case RequestStatusNDARequested:
			return "Esperando la firma del acuerdo de confidencialidad."
		case RequestStatusNDAReceived:
			return "Acuerdo recibido. El propietario preparará la información."
		case RequestStatusInformationShared:
			return "La información del activo ha sido compartida contigo."
		}
		return ""
	}

	switch status {
	case RequestStatusPending:
		return "Solicitud pendiente de aprobación."
	case RequestStatusApproved:
		return "Aprobada. Puedes solicitar el NDA."
	case RequestStatusRejected:
		return "Solicitud rechazada."
	case RequestStatusNDARequested:
		return "NDA enviado. A la espera del documento firmado."
	case RequestStatusNDAReceived:
		return "NDA recibido. Puedes compartir la información."
	case RequestStatusInformationShared:
		return "Información compartida."
	}
	return ""
}
