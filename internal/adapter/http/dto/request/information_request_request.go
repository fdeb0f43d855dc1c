package request

// InformationRequestCreate asks for additional information about a listed
// asset. The requester is always the authenticated member.
type InformationRequestCreate struct {
	AssetID string `json:"asset_id" binding:"required"`
	Note    string `json:"note"`
}
