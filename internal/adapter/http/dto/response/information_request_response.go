package response

import (
	"time"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
)

// InformationRequestResponse is the viewer-dependent rendering of a request:
// the same row carries a different status line and action set depending on
// which surface asked for it.
type InformationRequestResponse struct {
	ID            string    `json:"id"`
	AssetID       string    `json:"asset_id"`
	RequesterID   string    `json:"requester_id"`
	Status        string    `json:"status"`
	StatusMessage string    `json:"status_message"`
	Actions       []string  `json:"actions"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromInformationRequest(r entities.InformationRequest, viewer entities.RequestViewer) InformationRequestResponse {
	actions := make([]string, 0)
	for _, ev := range entities.ActionsFor(r.Status, viewer) {
		actions = append(actions, string(ev))
	}
	return InformationRequestResponse{
		ID:            r.ID,
		AssetID:       r.AssetID,
		RequesterID:   r.RequesterID,
		Status:        string(r.Status),
		StatusMessage: entities.StatusMessage(r.Status, viewer),
		Actions:       actions,
		Note:          r.Note,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func FromInformationRequests(requests []entities.InformationRequest, viewer entities.RequestViewer) []InformationRequestResponse {
	out := make([]InformationRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromInformationRequest(r, viewer))
	}
	return out
}
