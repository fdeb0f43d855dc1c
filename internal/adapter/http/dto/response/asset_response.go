package response

import (
	"time"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
)

type AssetResponse struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	Purpose        string    `json:"purpose"`
	Category       string    `json:"category"`
	Subcategory    string    `json:"subcategory,omitempty"`
	Country        string    `json:"country"`
	City           string    `json:"city"`
	Area           string    `json:"area,omitempty"`
	PriceAmount    float64   `json:"price_amount"`
	PriceCurrency  string    `json:"price_currency"`
	ExpectedReturn float64   `json:"expected_return,omitempty"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromAsset(a entities.Asset) AssetResponse {
	return AssetResponse{
		ID:             a.ID,
		OwnerID:        a.OwnerID,
		Purpose:        string(a.Purpose),
		Category:       a.Category,
		Subcategory:    a.Subcategory,
		Country:        a.Country,
		City:           a.City,
		Area:           a.Area,
		PriceAmount:    a.PriceAmount,
		PriceCurrency:  a.PriceCurrency,
		ExpectedReturn: a.ExpectedReturn,
		Description:    a.Description,
		CreatedAt:      a.CreatedAt,
	}
}

func FromAssets(assets []entities.Asset) []AssetResponse {
	out := make([]AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, FromAsset(a))
	}
	return out
}
