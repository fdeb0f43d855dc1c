package request

import (
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
)

type SurveyCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type SurveyQuestionRequest struct {
	Text     string   `json:"text" binding:"required"`
	Type     string   `json:"type" binding:"required"`
	Options  []string `json:"options"`
	Position int      `json:"position"`
}

func (r SurveyQuestionRequest) ToEntity(surveyID string) entities.SurveyQuestion {
	return entities.SurveyQuestion{
		SurveyID: surveyID,
		Text:     r.Text,
		Type:     entities.QuestionType(r.Type),
		Options:  r.Options,
		Position: r.Position,
	}
}

// SurveyRespondRequest carries one respondent's answers keyed by question id.
type SurveyRespondRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}
