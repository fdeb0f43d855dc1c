package entities

import "strings"

// KPIRecord is one row of the semicolon-delimited KPI/indicator datasets.
// Rows carry at least 13 positional fields; shorter rows are dropped at load
// time.
type KPIRecord struct {
	Dimension    string `json:"dimension"`
	Subdimension string `json:"subdimension"`
	Indicator    string `json:"indicator"`
	Description  string `json:"description"`
	Unit         string `json:"unit"`
	Source       string `json:"source"`
	Frequency    string `json:"frequency"`
	Year         string `json:"year"`
	Value        string `json:"value"`
	Target       string `json:"target"`
	Region       string `json:"region"`
	Category     string `json:"category"`
	Notes        string `json:"notes"`
}

// KPIFieldCount is the minimum number of semicolon-separated fields a data
// row must carry to be usable.
const KPIFieldCount = 13

// KPIRecordFromRow maps a parsed row positionally. Returns false when the row
// is too short.
func KPIRecordFromRow(fields []string) (KPIRecord, bool) {
	if len(fields) < KPIFieldCount {
		return KPIRecord{}, false
	}
	return KPIRecord{
		Dimension:    fields[0],
		Subdimension: fields[1],
		Indicator:    fields[2],
		Description:  fields[3],
		Unit:         fields[4],
		Source:       fields[5],
		Frequency:    fields[6],
		Year:         fields[7],
		Value:        fields[8],
		Target:       fields[9],
		Region:       fields[10],
		Category:     fields[11],
		Notes:        fields[12],
	}, true
}

// MatchesQuery reports whether the lower-cased term appears in any of the
// record's descriptive text fields.
func (r KPIRecord) MatchesQuery(term string) bool {
	for _, field := range []string{r.Dimension, r.Subdimension, r.Indicator, r.Description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
