package response

import "github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"

// KPIListResponse wraps the open-data catalog so the payload stays an object.
type KPIListResponse struct {
	Total   int                  `json:"total"`
	Records []entities.KPIRecord `json:"records"`
}

func FromKPIRecords(records []entities.KPIRecord) KPIListResponse {
	if records == nil {
		records = []entities.KPIRecord{}
	}
	return KPIListResponse{Total: len(records), Records: records}
}
