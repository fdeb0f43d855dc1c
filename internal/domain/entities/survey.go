package entities

import "time"

// SurveyStatus gates who can see and answer a survey.
type SurveyStatus string

const (
	SurveyStatusDraft     SurveyStatus = "draft"
	SurveyStatusPublished SurveyStatus = "published"
)

// Survey is an observatory questionnaire authored by editors.
//
// Storage model (DynamoDB):
//   - surveys PK: id
//   - survey_questions PK: id, GSI1 (survey_id-index): survey_id
//   - survey_responses PK: id = "<survey_id>#<respondent_id>",
//     GSI1 (survey_id-index): survey_id

type Survey struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      SurveyStatus `json:"status"`
	CreatedBy   string       `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// QuestionType enumerates the supported answer widgets.
type QuestionType string

const (
	QuestionTypeText   QuestionType = "text"
	QuestionTypeSingle QuestionType = "single_choice"
	QuestionTypeMulti  QuestionType = "multi_choice"
	QuestionTypeScale  QuestionType = "scale"
)

type SurveyQuestion struct {
	ID       string       `json:"id"`
	SurveyID string       `json:"survey_id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
	Position int          `json:"position"`
}

// SurveyResponse holds one respondent's answers keyed by question id. One
// response per (survey, respondent) — same deterministic-key trick as
// information requests.
type SurveyResponse struct {
	ID           string            `json:"id"`
	SurveyID     string            `json:"survey_id"`
	RespondentID string            `json:"respondent_id"`
	Answers      map[string]string `json:"answers"`
	CreatedAt    time.Time         `json:"created_at"`
}

// ResponseKey builds the deterministic primary key for a (survey, respondent)
// pair.
func ResponseKey(surveyID, respondentID string) string {
	return surveyID + "#" + respondentID
}
