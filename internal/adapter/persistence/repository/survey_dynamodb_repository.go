package repository

import (
	"context"
	"sort"
	"time"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSurveysTableName         = "surveys"
	defaultSurveyQuestionsTableName = "survey_questions"
	defaultSurveyResponsesTableName = "survey_responses"
	surveyIndex                     = "survey_id-index"
)

type surveyItem struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description"`
	Status      string `dynamodbav:"status"`
	CreatedBy   string `dynamodbav:"created_by"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type surveyQuestionItem struct {
	ID       string   `dynamodbav:"id"`
	SurveyID string   `dynamodbav:"survey_id"`
	Text     string   `dynamodbav:"text"`
	Type     string   `dynamodbav:"type"`
	Options  []string `dynamodbav:"options"`
	Position int      `dynamodbav:"position"`
}

type surveyResponseItem struct {
	ID           string            `dynamodbav:"id"`
	SurveyID     string            `dynamodbav:"survey_id"`
	RespondentID string            `dynamodbav:"respondent_id"`
	Answers      map[string]string `dynamodbav:"answers"`
	CreatedAt    string            `dynamodbav:"created_at"`
}

// SurveyDynamoRepository persists surveys, questions and responses across
// three DynamoDB tables.
//
// Table requirements:
//   - surveys PK: id (string)
//   - survey_questions PK: id (string), GSI survey_id-index: survey_id
//   - survey_responses PK: id (string) = "<survey_id>#<respondent_id>",
//     GSI survey_id-index: survey_id
//
// The deterministic response PK turns the one-response-per-respondent rule
// into a conditional put; Publish is a compare-and-swap from draft.

type SurveyDynamoRepository struct {
	ddb            *dynamodb.Client
	surveysTable   string
	questionsTable string
	responsesTable string
}

var _ interfaces.ISurveyRepository = (*SurveyDynamoRepository)(nil)

func NewSurveyDynamoRepository(ddb *dynamodb.Client) *SurveyDynamoRepository {
	return &SurveyDynamoRepository{
		ddb:            ddb,
		surveysTable:   getenvDefault("SURVEYS_TABLE", defaultSurveysTableName),
		questionsTable: getenvDefault("SURVEY_QUESTIONS_TABLE", defaultSurveyQuestionsTableName),
		responsesTable: getenvDefault("SURVEY_RESPONSES_TABLE", defaultSurveyResponsesTableName),
	}
}

func (r *SurveyDynamoRepository) CreateSurvey(ctx context.Context, s entities.Survey) (entities.Survey, error) {
	av, err := attributevalue.MarshalMap(toSurveyItem(s))
	if err != nil {
		return entities.Survey{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.surveysTable),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Survey{}, interfaces.ErrAlreadyExists
		}
		return entities.Survey{}, err
	}
	return s, nil
}

func (r *SurveyDynamoRepository) GetSurvey(ctx context.Context, id string) (entities.Survey, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.surveysTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Survey{}, err
	}
	if len(out.Item) == 0 {
		return entities.Survey{}, nil
	}

	var it surveyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Survey{}, err
	}
	return fromSurveyItem(it), nil
}

func (r *SurveyDynamoRepository) ListSurveys(ctx context.Context) ([]entities.Survey, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.surveysTable),
	})
	if err != nil {
		return nil, err
	}

	surveys := make([]entities.Survey, 0, len(out.Items))
	for _, item := range out.Items {
		var it surveyItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		surveys = append(surveys, fromSurveyItem(it))
	}
	return surveys, nil
}

// Publish flips the survey from draft to published; any other stored status
// fails the condition.
func (r *SurveyDynamoRepository) Publish(ctx context.Context, id string) (entities.Survey, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.surveysTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :draft"),
		UpdateExpression:    aws.String("SET #status = :published, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":draft":      &types.AttributeValueMemberS{Value: string(entities.SurveyStatusDraft)},
			":published":  &types.AttributeValueMemberS{Value: string(entities.SurveyStatusPublished)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Survey{}, interfaces.ErrConditionFailed
		}
		return entities.Survey{}, err
	}

	var it surveyItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Survey{}, err
	}
	return fromSurveyItem(it), nil
}

func (r *SurveyDynamoRepository) CreateQuestion(ctx context.Context, q entities.SurveyQuestion) (entities.SurveyQuestion, error) {
	av, err := attributevalue.MarshalMap(toSurveyQuestionItem(q))
	if err != nil {
		return entities.SurveyQuestion{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.questionsTable),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.SurveyQuestion{}, interfaces.ErrAlreadyExists
		}
		return entities.SurveyQuestion{}, err
	}
	return q, nil
}

func (r *SurveyDynamoRepository) ListQuestions(ctx context.Context, surveyID string) ([]entities.SurveyQuestion, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.questionsTable),
		IndexName:              aws.String(surveyIndex),
		KeyConditionExpression: aws.String("#survey_id = :survey_id"),
		ExpressionAttributeNames: map[string]string{
			"#survey_id": "survey_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":survey_id": &types.AttributeValueMemberS{Value: surveyID},
		},
	})
	if err != nil {
		return nil, err
	}

	questions := make([]entities.SurveyQuestion, 0, len(out.Items))
	for _, item := range out.Items {
		var it surveyQuestionItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		questions = append(questions, fromSurveyQuestionItem(it))
	}
	// GSI order is not the authoring order.
	sort.Slice(questions, func(i, j int) bool { return questions[i].Position < questions[j].Position })
	return questions, nil
}

func (r *SurveyDynamoRepository) CreateResponse(ctx context.Context, resp entities.SurveyResponse) (entities.SurveyResponse, error) {
	av, err := attributevalue.MarshalMap(toSurveyResponseItem(resp))
	if err != nil {
		return entities.SurveyResponse{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.responsesTable),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.SurveyResponse{}, interfaces.ErrAlreadyExists
		}
		return entities.SurveyResponse{}, err
	}
	return resp, nil
}

func (r *SurveyDynamoRepository) ListResponses(ctx context.Context, surveyID string) ([]entities.SurveyResponse, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.responsesTable),
		IndexName:              aws.String(surveyIndex),
		KeyConditionExpression: aws.String("#survey_id = :survey_id"),
		ExpressionAttributeNames: map[string]string{
			"#survey_id": "survey_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":survey_id": &types.AttributeValueMemberS{Value: surveyID},
		},
	})
	if err != nil {
		return nil, err
	}

	responses := make([]entities.SurveyResponse, 0, len(out.Items))
	for _, item := range out.Items {
		var it surveyResponseItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		responses = append(responses, fromSurveyResponseItem(it))
	}
	return responses, nil
}

func (r *SurveyDynamoRepository) CountResponses(ctx context.Context) (int, error) {
	var total int
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.responsesTable),
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return total, nil
}

func toSurveyItem(s entities.Survey) surveyItem {
	return surveyItem{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Status:      string(s.Status),
		CreatedBy:   s.CreatedBy,
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

func fromSurveyItem(it surveyItem) entities.Survey {
	return entities.Survey{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Status:      entities.SurveyStatus(it.Status),
		CreatedBy:   it.CreatedBy,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func toSurveyQuestionItem(q entities.SurveyQuestion) surveyQuestionItem {
	return surveyQuestionItem{
		ID:       q.ID,
		SurveyID: q.SurveyID,
		Text:     q.Text,
		Type:     string(q.Type),
		Options:  q.Options,
		Position: q.Position,
	}
}

func fromSurveyQuestionItem(it surveyQuestionItem) entities.SurveyQuestion {
	return entities.SurveyQuestion{
		ID:       it.ID,
		SurveyID: it.SurveyID,
		Text:     it.Text,
		Type:     entities.QuestionType(it.Type),
		Options:  it.Options,
		Position: it.Position,
	}
}

func toSurveyResponseItem(r entities.SurveyResponse) surveyResponseItem {
	return surveyResponseItem{
		ID:           r.ID,
		SurveyID:     r.SurveyID,
		RespondentID: r.RespondentID,
		Answers:      r.Answers,
		CreatedAt:    formatTime(r.CreatedAt),
	}
}

func fromSurveyResponseItem(it surveyResponseItem) entities.SurveyResponse {
	return entities.SurveyResponse{
		ID:           it.ID,
		SurveyID:     it.SurveyID,
		RespondentID: it.RespondentID,
		Answers:      it.Answers,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
