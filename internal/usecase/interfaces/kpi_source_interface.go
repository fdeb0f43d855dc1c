package interfaces

import (
	"context"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
)

// IKPISource loads the two static semicolon-delimited datasets backing the
// open-data page and the chat assistant. Implementations cache after the
// first load; there is no invalidation within a process lifetime.
type IKPISource interface {
	KPIs(ctx context.Context) ([]entities.KPIRecord, error)
	Indicators(ctx context.Context) ([]entities.KPIRecord, error)
}
