package entities

import (
	"strconv"
	"strings"
	"time"
)

// AssetPurpose says which side of the market a listing sits on.
type AssetPurpose string

const (
	PurposeSale     AssetPurpose = "sale"
	PurposePurchase AssetPurpose = "purchase"
	PurposeNeed     AssetPurpose = "need"
)

// Asset is a club listing. Mutable and deletable only by its owner or an
// admin; everything else about it is free-form seller input.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id

type Asset struct {
	ID             string       `json:"id"`
	OwnerID        string       `json:"owner_id"`
	Purpose        AssetPurpose `json:"purpose"`
	Category       string       `json:"category"`
	Subcategory    string       `json:"subcategory"`
	Country        string       `json:"country"`
	City           string       `json:"city"`
	Area           string       `json:"area"`
	PriceAmount    float64      `json:"price_amount"`
	PriceCurrency  string       `json:"price_currency"`
	ExpectedReturn float64      `json:"expected_return"`
	Description    string       `json:"description"`
	CreatedAt      time.Time    `json:"created_at"`
}

// AssetFilter holds the catalog filter criteria. Zero values mean "no
// constraint". PriceRange uses the "min-max" form the catalog UI sends
// ("100000-500000"); either bound may be left empty ("-500000", "100000-").
type AssetFilter struct {
	Location   string
	Category   string
	Purpose    AssetPurpose
	PriceRange string
	MinReturn  float64
	MaxReturn  float64
}

// FilterAssets returns the subset of assets matching every set criterion.
// Pure in-memory filtering over whatever the caller was authorized to fetch.
func FilterAssets(assets []Asset, f AssetFilter) []Asset {
	minPrice, maxPrice, priceBounded := parsePriceRange(f.PriceRange)

	out := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if f.Location != "" && !matchesLocation(a, f.Location) {
			continue
		}
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if f.Purpose != "" && a.Purpose != f.Purpose {
			continue
		}
		if priceBounded && (a.PriceAmount < minPrice || a.PriceAmount > maxPrice) {
			continue
		}
		if f.MinReturn > 0 && a.ExpectedReturn < f.MinReturn {
			continue
		}
		if f.MaxReturn > 0 && a.ExpectedReturn > f.MaxReturn {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesLocation(a Asset, loc string) bool {
	loc = strings.ToLower(loc)
	for _, field := range []string{a.Country, a.City, a.Area} {
		if strings.Contains(strings.ToLower(field), loc) {
			return true
		}
	}
	return false
}

func parsePriceRange(r string) (min, max float64, ok bool) {
	r = strings.TrimSpace(r)
	if r == "" {
		return 0, 0, false
	}
	parts := strings.SplitN(r, "-", 2)
	min = 0
	max = float64(1<<63 - 1)
	if v, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err == nil {
		min = v
	}
	if len(parts) == 2 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
			max = v
		}
	}
	return min, max, true
}
