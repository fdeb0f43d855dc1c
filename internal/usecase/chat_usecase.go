package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"
)

const (
	chatMaxResults   = 5
	chatFallbackText = "No he entendido tu pregunta. Puedes preguntarme por encuestas, estadísticas, KPIs o indicadores del observatorio."
)

// chatTopics is the ordered keyword routing table. The first group containing
// a substring of the lower-cased question wins; order matters (a question
// mentioning both "encuesta" and "kpi" is a survey question).
var chatTopics = []struct {
	name  string
	words []string
}{
	{"survey", []string{"encuesta", "survey", "cuestionario"}},
	{"statistics", []string{"estadística", "estadistica", "solicitudes", "respuestas", "statistics"}},
	{"kpi", []string{"kpi"}},
	{"indicator", []string{"indicador", "indicator"}},
}

// chatStopwords are tokens too generic to search the datasets with.
var chatStopwords = map[string]bool{
	"sobre": true, "para": true, "cual": true, "cuál": true, "cuales": true,
	"cuáles": true, "como": true, "cómo": true, "donde": true, "dónde": true,
	"tiene": true, "tienen": true, "valor": true, "dime": true, "dame": true,
	"existe": true, "datos": true, "información": true, "informacion": true,
	"indicador": true, "indicadores": true, "kpis": true, "what": true,
	"which": true, "about": true, "there": true,
}

// IChatUseCase answers free-text questions from the cached KPI/indicator
// datasets plus live aggregate counts.

type IChatUseCase interface {
	Answer(ctx context.Context, question string) (string, error)
}

type ChatUseCase struct {
	source   interfaces.IKPISource
	requests interfaces.IInformationRequestRepository
	surveys  interfaces.ISurveyRepository
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(source interfaces.IKPISource, requests interfaces.IInformationRequestRepository, surveys interfaces.ISurveyRepository) *ChatUseCase {
	return &ChatUseCase{source: source, requests: requests, surveys: surveys}
}

func (u *ChatUseCase) Answer(ctx context.Context, question string) (string, error) {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return chatFallbackText, nil
	}

	for _, topic := range chatTopics {
		if !containsAny(q, topic.words) {
			continue
		}
		switch topic.name {
		case "survey":
			return u.surveyInfo(ctx)
		case "statistics":
			return u.statistics(ctx)
		case "kpi":
			return u.datasetSearch(ctx, q, true, false)
		case "indicator":
			return u.datasetSearch(ctx, q, false, true)
		}
	}

	// No topic matched: blended search over both datasets before giving up.
	return u.datasetSearch(ctx, q, true, true)
}

func (u *ChatUseCase) surveyInfo(ctx context.Context) (string, error) {
	surveys, err := u.surveys.ListSurveys(ctx)
	if err != nil {
		return "", err
	}

	published := 0
	for _, s := range surveys {
		if s.Status == entities.SurveyStatusPublished {
			published++
		}
	}
	if published == 0 {
		return "Ahora mismo no hay encuestas abiertas. Las nuevas encuestas se anuncian en la página de encuestas del observatorio.", nil
	}
	return fmt.Sprintf("Hay %d encuesta(s) abierta(s). Puedes responderlas desde la página de encuestas del observatorio.", published), nil
}

func (u *ChatUseCase) statistics(ctx context.Context) (string, error) {
	byStatus, err := u.requests.CountByStatus(ctx)
	if err != nil {
		return "", err
	}
	responses, err := u.surveys.CountResponses(ctx)
	if err != nil {
		return "", err
	}

	total := 0
	for _, n := range byStatus {
		total += n
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Estadísticas actuales: %d solicitudes de información", total)
	if total > 0 {
		parts := make([]string, 0, len(byStatus))
		for status, n := range byStatus {
			parts = append(parts, fmt.Sprintf("%s: %d", status, n))
		}
		sort.Strings(parts)
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	}
	fmt.Fprintf(&b, " y %d respuestas de encuesta.", responses)
	return b.String(), nil
}

func (u *ChatUseCase) datasetSearch(ctx context.Context, q string, useKPIs, useIndicators bool) (string, error) {
	var records []entities.KPIRecord
	if useKPIs {
		kpis, err := u.source.KPIs(ctx)
		if err != nil {
			return "", err
		}
		records = append(records, kpis...)
	}
	if useIndicators {
		indicators, err := u.source.Indicators(ctx)
		if err != nil {
			return "", err
		}
		records = append(records, indicators...)
	}

	matches := searchRecords(records, q)
	switch len(matches) {
	case 0:
		return chatFallbackText, nil
	case 1:
		return formatRecord(matches[0]), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "He encontrado %d indicadores relacionados:\n", len(matches))
	shown := matches
	if len(shown) > chatMaxResults {
		shown = shown[:chatMaxResults]
	}
	for _, r := range shown {
		fmt.Fprintf(&b, "- %s\n", formatRecord(r))
	}
	if rest := len(matches) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "…y %d más.", rest)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// searchRecords matches question tokens against the descriptive fields of
// each record and deduplicates by indicator name.
func searchRecords(records []entities.KPIRecord, q string) []entities.KPIRecord {
	terms := searchTerms(q)
	if len(terms) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var out []entities.KPIRecord
	for _, r := range records {
		for _, term := range terms {
			if r.MatchesQuery(term) {
				key := strings.ToLower(r.Indicator)
				if !seen[key] {
					seen[key] = true
					out = append(out, r)
				}
				break
			}
		}
	}
	return out
}

func searchTerms(q string) []string {
	fields := strings.FieldsFunc(q, func(r rune) bool {
		return !isWordRune(r)
	})
	var terms []string
	for _, f := range fields {
		if len([]rune(f)) < 4 || chatStopwords[f] {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}

func isWordRune(r rune) bool {
	return r == 'ñ' || r == 'á' || r == 'é' || r == 'í' || r == 'ó' || r == 'ú' ||
		(r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

func formatRecord(r entities.KPIRecord) string {
	out := fmt.Sprintf("%s (%s / %s)", r.Indicator, r.Dimension, r.Subdimension)
	if r.Value != "" {
		out += fmt.Sprintf(": %s %s", r.Value, r.Unit)
		if r.Year != "" {
			out += fmt.Sprintf(" (%s)", r.Year)
		}
	}
	return strings.TrimSpace(out)
}

func containsAny(q string, words []string) bool {
	for _, w := range words {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}
