package kpistore

import (
	"context"
	"encoding/csv"
	"os"
	"sync"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"
)

// CSVSource reads the two semicolon-delimited datasets from disk and caches
// them for the process lifetime. The files are shipped with the service and
// never change while it runs.
type CSVSource struct {
	kpiPath       string
	indicatorPath string

	kpiOnce sync.Once
	kpis    []entities.KPIRecord
	kpiErr  error

	indicatorOnce sync.Once
	indicators    []entities.KPIRecord
	indicatorErr  error
}

var _ interfaces.IKPISource = (*CSVSource)(nil)

func NewCSVSource(kpiPath, indicatorPath string) *CSVSource {
	return &CSVSource{kpiPath: kpiPath, indicatorPath: indicatorPath}
}

func (s *CSVSource) KPIs(_ context.Context) ([]entities.KPIRecord, error) {
	s.kpiOnce.Do(func() {
		s.kpis, s.kpiErr = loadDataset(s.kpiPath)
	})
	return s.kpis, s.kpiErr
}

func (s *CSVSource) Indicators(_ context.Context) ([]entities.KPIRecord, error) {
	s.indicatorOnce.Do(func() {
		s.indicators, s.indicatorErr = loadDataset(s.indicatorPath)
	})
	return s.indicators, s.indicatorErr
}

func loadDataset(path string) ([]entities.KPIRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.LazyQuotes = true
	// Rows with a stray semicolon in free text vary in width; short rows are
	// dropped below instead of failing the whole file.
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	records := make([]entities.KPIRecord, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if rec, ok := entities.KPIRecordFromRow(row); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}
