package usecase

import (
	"context"
	"strings"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"
)

// IKPICatalogUseCase backs the open-data page: the full catalog plus a
// substring search over both datasets.

type IKPICatalogUseCase interface {
	List(ctx context.Context) ([]entities.KPIRecord, error)
	Search(ctx context.Context, query string) ([]entities.KPIRecord, error)
}

type KPICatalogUseCase struct {
	source interfaces.IKPISource
}

var _ IKPICatalogUseCase = (*KPICatalogUseCase)(nil)

func NewKPICatalogUseCase(source interfaces.IKPISource) *KPICatalogUseCase {
	return &KPICatalogUseCase{source: source}
}

func (u *KPICatalogUseCase) List(ctx context.Context) ([]entities.KPIRecord, error) {
	kpis, err := u.source.KPIs(ctx)
	if err != nil {
		return nil, err
	}
	indicators, err := u.source.Indicators(ctx)
	if err != nil {
		return nil, err
	}
	return append(kpis, indicators...), nil
}

func (u *KPICatalogUseCase) Search(ctx context.Context, query string) ([]entities.KPIRecord, error) {
	all, err := u.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	out := make([]entities.KPIRecord, 0)
	for _, r := range all {
		if r.MatchesQuery(q) {
			out = append(out, r)
		}
	}
	return out, nil
}
