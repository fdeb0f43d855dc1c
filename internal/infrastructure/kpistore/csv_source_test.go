package kpistore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const sampleDataset = `Dimensión;Subdimensión;Indicador;Descripción;Unidad;Fuente;Frecuencia;Año;Valor;Meta;Región;Categoría;Notas
Economía digital;Comercio;Ventas online;Volumen de ventas;EUR;INE;Anual;2024;1200000;1500000;Madrid;comercio;
Talento;Formación;Graduados TIC;Titulados al año;personas;Ministerio;Anual;2024;5400;6000;Madrid;talento;nota
fila;corta;sin;campos;suficientes
`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestCSVSource_LoadsRowsAndDropsShortOnes(t *testing.T) {
	t.Parallel()

	src := NewCSVSource(writeDataset(t, sampleDataset), "")

	records, err := src.KPIs(context.Background())
	if err != nil {
		t.Fatalf("KPIs error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Indicator != "Ventas online" {
		t.Errorf("unexpected first indicator: %q", records[0].Indicator)
	}
	if records[1].Value != "5400" {
		t.Errorf("unexpected second value: %q", records[1].Value)
	}
}

func TestCSVSource_CachesFirstLoad(t *testing.T) {
	t.Parallel()

	path := writeDataset(t, sampleDataset)
	src := NewCSVSource(path, "")

	first, err := src.KPIs(context.Background())
	if err != nil {
		t.Fatalf("KPIs error: %v", err)
	}

	// Removing the file must not affect later reads.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove dataset: %v", err)
	}

	second, err := src.KPIs(context.Background())
	if err != nil {
		t.Fatalf("KPIs after remove error: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("cache miss: got %d records, want %d", len(second), len(first))
	}
}

func TestCSVSource_MissingFile(t *testing.T) {
	t.Parallel()

	src := NewCSVSource(filepath.Join(t.TempDir(), "absent.csv"), "")
	if _, err := src.KPIs(context.Background()); err == nil {
		t.Fatalf("expected error for missing dataset, got nil")
	}
}

func TestCSVSource_IndicatorsIndependentOfKPIs(t *testing.T) {
	t.Parallel()

	src := NewCSVSource(writeDataset(t, sampleDataset), writeDataset(t, sampleDataset))

	kpis, err := src.KPIs(context.Background())
	if err != nil {
		t.Fatalf("KPIs error: %v", err)
	}
	indicators, err := src.Indicators(context.Background())
	if err != nil {
		t.Fatalf("Indicators error: %v", err)
	}
	if len(kpis) != 2 || len(indicators) != 2 {
		t.Fatalf("expected 2+2 records, got %d and %d", len(kpis), len(indicators))
	}
}
