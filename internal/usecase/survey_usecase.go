package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSurveyInput   = errors.New("invalid survey input")
	ErrSurveyNotFound       = errors.New("survey not found")
	ErrSurveyNotPublished   = errors.New("survey is not published")
	ErrSurveyNotDraft       = errors.New("survey is not a draft")
	ErrAlreadyResponded     = errors.New("this user already responded to the survey")
	ErrInvalidSurveyAnswers = errors.New("survey answers cannot be empty")
)

// SurveyDetail bundles a survey with its ordered questions for read paths.
type SurveyDetail struct {
	Survey    entities.Survey
	Questions []entities.SurveyQuestion
}

// ISurveyUseCase covers authoring (editors), publication and responding.

type ISurveyUseCase interface {
	Create(ctx context.Context, createdBy, title, description string) (entities.Survey, error)
	AddQuestion(ctx context.Context, q entities.SurveyQuestion) (entities.SurveyQuestion, error)
	Publish(ctx context.Context, surveyID string) (entities.Survey, error)
	List(ctx context.Context) ([]entities.Survey, error)
	Get(ctx context.Context, surveyID string) (SurveyDetail, error)
	Respond(ctx context.Context, surveyID, respondentID string, answers map[string]string) (entities.SurveyResponse, error)
	ListResponses(ctx context.Context, surveyID string) ([]entities.SurveyResponse, error)
}

type SurveyUseCase struct {
	repo interfaces.ISurveyRepository
}

var _ ISurveyUseCase = (*SurveyUseCase)(nil)

func NewSurveyUseCase(repo interfaces.ISurveyRepository) *SurveyUseCase {
	return &SurveyUseCase{repo: repo}
}

func (u *SurveyUseCase) Create(ctx context.Context, createdBy, title, description string) (entities.Survey, error) {
	title = strings.TrimSpace(title)
	createdBy = strings.TrimSpace(createdBy)
	if title == "" || createdBy == "" {
		return entities.Survey{}, ErrInvalidSurveyInput
	}

	now := time.Now().UTC()
	s := entities.Survey{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Status:      entities.SurveyStatusDraft,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.CreateSurvey(ctx, s)
}

func (u *SurveyUseCase) AddQuestion(ctx context.Context, q entities.SurveyQuestion) (entities.SurveyQuestion, error) {
	q.Text = strings.TrimSpace(q.Text)
	if q.SurveyID == "" || q.Text == "" {
		return entities.SurveyQuestion{}, ErrInvalidSurveyInput
	}
	switch q.Type {
	case entities.QuestionTypeText, entities.QuestionTypeSingle, entities.QuestionTypeMulti, entities.QuestionTypeScale:
	default:
		return entities.SurveyQuestion{}, ErrInvalidSurveyInput
	}

	survey, err := u.getSurvey(ctx, q.SurveyID)
	if err != nil {
		return entities.SurveyQuestion{}, err
	}
	if survey.Status != entities.SurveyStatusDraft {
		return entities.SurveyQuestion{}, ErrSurveyNotDraft
	}

	q.ID = uuid.NewString()
	return u.repo.CreateQuestion(ctx, q)
}

func (u *SurveyUseCase) Publish(ctx context.Context, surveyID string) (entities.Survey, error) {
	if _, err := u.getSurvey(ctx, surveyID); err != nil {
		return entities.Survey{}, err
	}

	published, err := u.repo.Publish(ctx, surveyID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Survey{}, ErrSurveyNotDraft
		}
		return entities.Survey{}, err
	}
	return published, nil
}

func (u *SurveyUseCase) List(ctx context.Context) ([]entities.Survey, error) {
	return u.repo.ListSurveys(ctx)
}

func (u *SurveyUseCase) Get(ctx context.Context, surveyID string) (SurveyDetail, error) {
	survey, err := u.getSurvey(ctx, surveyID)
	if err != nil {
		return SurveyDetail{}, err
	}

	questions, err := u.repo.ListQuestions(ctx, survey.ID)
	if err != nil {
		return SurveyDetail{}, err
	}
	return SurveyDetail{Survey: survey, Questions: questions}, nil
}

func (u *SurveyUseCase) Respond(ctx context.Context, surveyID, respondentID string, answers map[string]string) (entities.SurveyResponse, error) {
	respondentID = strings.TrimSpace(respondentID)
	if respondentID == "" {
		return entities.SurveyResponse{}, ErrInvalidSurveyInput
	}
	if len(answers) == 0 {
		return entities.SurveyResponse{}, ErrInvalidSurveyAnswers
	}

	survey, err := u.getSurvey(ctx, surveyID)
	if err != nil {
		return entities.SurveyResponse{}, err
	}
	if survey.Status != entities.SurveyStatusPublished {
		return entities.SurveyResponse{}, ErrSurveyNotPublished
	}

	r := entities.SurveyResponse{
		ID:           entities.ResponseKey(survey.ID, respondentID),
		SurveyID:     survey.ID,
		RespondentID: respondentID,
		Answers:      answers,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := u.repo.CreateResponse(ctx, r)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.SurveyResponse{}, ErrAlreadyResponded
		}
		return entities.SurveyResponse{}, err
	}
	return created, nil
}

func (u *SurveyUseCase) ListResponses(ctx context.Context, surveyID string) ([]entities.SurveyResponse, error) {
	survey, err := u.getSurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListResponses(ctx, survey.ID)
}

func (u *SurveyUseCase) getSurvey(ctx context.Context, surveyID string) (entities.Survey, error) {
	surveyID = strings.TrimSpace(surveyID)
	if surveyID == "" {
		return entities.Survey{}, ErrInvalidSurveyInput
	}

	s, err := u.repo.GetSurvey(ctx, surveyID)
	if err != nil {
		return entities.Survey{}, err
	}
	if s.ID == "" {
		return entities.Survey{}, ErrSurveyNotFound
	}
	return s, nil
}
