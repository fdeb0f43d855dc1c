package response

import (
	"time"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
)

type SurveyResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromSurvey(s entities.Survey) SurveyResponse {
	return SurveyResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Status:      string(s.Status),
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromSurveys(surveys []entities.Survey) []SurveyResponse {
	out := make([]SurveyResponse, 0, len(surveys))
	for _, s := range surveys {
		out = append(out, FromSurvey(s))
	}
	return out
}

type SurveyQuestionResponse struct {
	ID       string   `json:"id"`
	SurveyID string   `json:"survey_id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Position int      `json:"position"`
}

func FromSurveyQuestion(q entities.SurveyQuestion) SurveyQuestionResponse {
	return SurveyQuestionResponse{
		ID:       q.ID,
		SurveyID: q.SurveyID,
		Text:     q.Text,
		Type:     string(q.Type),
		Options:  q.Options,
		Position: q.Position,
	}
}

// SurveyDetailResponse bundles a survey with its questions for the answer
// page.
type SurveyDetailResponse struct {
	Survey    SurveyResponse           `json:"survey"`
	Questions []SurveyQuestionResponse `json:"questions"`
}

func FromSurveyDetail(s entities.Survey, questions []entities.SurveyQuestion) SurveyDetailResponse {
	qs := make([]SurveyQuestionResponse, 0, len(questions))
	for _, q := range questions {
		qs = append(qs, FromSurveyQuestion(q))
	}
	return SurveyDetailResponse{Survey: FromSurvey(s), Questions: qs}
}

// SurveyAnswerResponse is one respondent's stored submission.
type SurveyAnswerResponse struct {
	ID           string            `json:"id"`
	SurveyID     string            `json:"survey_id"`
	RespondentID string            `json:"respondent_id"`
	Answers      map[string]string `json:"answers"`
	CreatedAt    time.Time         `json:"created_at"`
}

func FromSurveyAnswer(r entities.SurveyResponse) SurveyAnswerResponse {
	return SurveyAnswerResponse{
		ID:           r.ID,
		SurveyID:     r.SurveyID,
		RespondentID: r.RespondentID,
		Answers:      r.Answers,
		CreatedAt:    r.CreatedAt,
	}
}

func FromSurveyAnswers(responses []entities.SurveyResponse) []SurveyAnswerResponse {
	out := make([]SurveyAnswerResponse, 0, len(responses))
	for _, r := range responses {
		out = append(out, FromSurveyAnswer(r))
	}
	return out
}
