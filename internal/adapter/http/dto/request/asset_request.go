package request

import (
	"strings"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
)

// AssetRequest is the create/update payload for club listings. The owner is
// never taken from the payload; handlers fill it from the session.
type AssetRequest struct {
	Purpose        string  `json:"purpose" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	Subcategory    string  `json:"subcategory"`
	Country        string  `json:"country" binding:"required"`
	City           string  `json:"city" binding:"required"`
	Area           string  `json:"area"`
	PriceAmount    float64 `json:"price_amount" binding:"required"`
	PriceCurrency  string  `json:"price_currency" binding:"required"`
	ExpectedReturn float64 `json:"expected_return"`
	Description    string  `json:"description"`
}

func (r AssetRequest) ToEntity(ownerID string) entities.Asset {
	return entities.Asset{
		OwnerID:        ownerID,
		Purpose:        entities.AssetPurpose(strings.TrimSpace(r.Purpose)),
		Category:       strings.TrimSpace(r.Category),
		Subcategory:    strings.TrimSpace(r.Subcategory),
		Country:        strings.TrimSpace(r.Country),
		City:           strings.TrimSpace(r.City),
		Area:           strings.TrimSpace(r.Area),
		PriceAmount:    r.PriceAmount,
		PriceCurrency:  strings.ToUpper(strings.TrimSpace(r.PriceCurrency)),
		ExpectedReturn: r.ExpectedReturn,
		Description:    strings.TrimSpace(r.Description),
	}
}

// AssetSearchQuery mirrors the catalog filter controls. Bound from the query
// string; zero values mean "no constraint".
type AssetSearchQuery struct {
	Location   string  `form:"location"`
	Category   string  `form:"category"`
	Purpose    string  `form:"purpose"`
	PriceRange string  `form:"price_range"`
	MinReturn  float64 `form:"min_return"`
	MaxReturn  float64 `form:"max_return"`
}

func (q AssetSearchQuery) ToFilter() entities.AssetFilter {
	return entities.AssetFilter{
		Location:   strings.TrimSpace(q.Location),
		Category:   strings.TrimSpace(q.Category),
		Purpose:    entities.AssetPurpose(strings.TrimSpace(q.Purpose)),
		PriceRange: strings.TrimSpace(q.PriceRange),
		MinReturn:  q.MinReturn,
		MaxReturn:  q.MaxReturn,
	}
}
