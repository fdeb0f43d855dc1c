package interfaces

import (
	"context"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
)

// ISurveyRepository abstracts DynamoDB persistence for surveys, their
// questions and their responses.
//
// CreateResponse is a conditional put on the deterministic (survey,
// respondent) key and must fail with ErrAlreadyExists on a duplicate.
// Publish is a compare-and-swap from draft.

type ISurveyRepository interface {
	CreateSurvey(ctx context.Context, s entities.Survey) (entities.Survey, error)
	GetSurvey(ctx context.Context, id string) (entities.Survey, error)
	ListSurveys(ctx context.Context) ([]entities.Survey, error)
	Publish(ctx context.Context, id string) (entities.Survey, error)

	CreateQuestion(ctx context.Context, q entities.SurveyQuestion) (entities.SurveyQuestion, error)
	ListQuestions(ctx context.Context, surveyID string) ([]entities.SurveyQuestion, error)

	CreateResponse(ctx context.Context, r entities.SurveyResponse) (entities.SurveyResponse, error)
	ListResponses(ctx context.Context, surveyID string) ([]entities.SurveyResponse, error)
	CountResponses(ctx context.Context) (int, error)
}
