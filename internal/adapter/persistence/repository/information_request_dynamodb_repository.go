package repository

import (
	"context"
	"time"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName = "information_requests"
	requestRequesterIndex    = "requester_id-index"
)

type informationRequestItem struct {
	ID          string `dynamodbav:"id"`
	AssetID     string `dynamodbav:"asset_id"`
	RequesterID string `dynamodbav:"requester_id"`
	Status      string `dynamodbav:"status"`
	Note        string `dynamodbav:"note"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// InformationRequestDynamoRepository persists InformationRequest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string) = "<asset_id>#<requester_id>"
//   - GSI requester_id-index: requester_id (string)
//
// The deterministic PK makes the one-request-per-pair rule a conditional put,
// and UpdateStatus conditions on the status the caller read so racing writers
// get exactly one winner.

type InformationRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInformationRequestRepository = (*InformationRequestDynamoRepository)(nil)

func NewInformationRequestDynamoRepository(ddb *dynamodb.Client) *InformationRequestDynamoRepository {
	return &InformationRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INFORMATION_REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *InformationRequestDynamoRepository) Create(ctx context.Context, req entities.InformationRequest) (entities.InformationRequest, error) {
	av, err := attributevalue.MarshalMap(toInformationRequestItem(req))
	if err != nil {
		return entities.InformationRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.InformationRequest{}, interfaces.ErrAlreadyExists
		}
		return entities.InformationRequest{}, err
	}
	return req, nil
}

func (r *InformationRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.InformationRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InformationRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.InformationRequest{}, nil
	}

	var it informationRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InformationRequest{}, err
	}
	return fromInformationRequestItem(it), nil
}

func (r *InformationRequestDynamoRepository) List(ctx context.Context) ([]entities.InformationRequest, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInformationRequests(out.Items)
}

func (r *InformationRequestDynamoRepository) ListByRequester(ctx context.Context, requesterID string) ([]entities.InformationRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestRequesterIndex),
		KeyConditionExpression: aws.String("#requester_id = :requester_id"),
		ExpressionAttributeNames: map[string]string{
			"#requester_id": "requester_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":requester_id": &types.AttributeValueMemberS{Value: requesterID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInformationRequests(out.Items)
}

// UpdateStatus is the compare-and-swap write: the new status lands only when
// the stored status still equals from.
func (r *InformationRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.RequestStatus) (entities.InformationRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: string(from)},
			":status":     &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.InformationRequest{}, interfaces.ErrConditionFailed
		}
		return entities.InformationRequest{}, err
	}

	var it informationRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.InformationRequest{}, err
	}
	return fromInformationRequestItem(it), nil
}

func (r *InformationRequestDynamoRepository) CountByStatus(ctx context.Context) (map[entities.RequestStatus]int, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ProjectionExpression:     aws.String("#status"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.RequestStatus]int)
	for _, item := range out.Items {
		var it struct {
			Status string `dynamodbav:"status"`
		}
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		counts[entities.RequestStatus(it.Status)]++
	}
	return counts, nil
}

func unmarshalInformationRequests(items []map[string]types.AttributeValue) ([]entities.InformationRequest, error) {
	requests := make([]entities.InformationRequest, 0, len(items))
	for _, item := range items {
		var it informationRequestItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		requests = append(requests, fromInformationRequestItem(it))
	}
	return requests, nil
}

func toInformationRequestItem(r entities.InformationRequest) informationRequestItem {
	return informationRequestItem{
		ID:          r.ID,
		AssetID:     r.AssetID,
		RequesterID: r.RequesterID,
		Status:      string(r.Status),
		Note:        r.Note,
		CreatedAt:   formatTime(r.CreatedAt),
		UpdatedAt:   formatTime(r.UpdatedAt),
	}
}

func fromInformationRequestItem(it informationRequestItem) entities.InformationRequest {
	return entities.InformationRequest{
		ID:          it.ID,
		AssetID:     it.AssetID,
		RequesterID: it.RequesterID,
		Status:      entities.RequestStatus(it.Status),
		Note:        it.Note,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
