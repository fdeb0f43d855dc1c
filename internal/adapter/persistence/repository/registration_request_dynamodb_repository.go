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

const defaultRegistrationsTableName = "registration_requests"

type registrationRequestItem struct {
	ID           string `dynamodbav:"id"`
	Email        string `dynamodbav:"email"`
	FullName     string `dynamodbav:"full_name"`
	Organization string `dynamodbav:"organization"`
	Message      string `dynamodbav:"message"`
	Status       string `dynamodbav:"status"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// RegistrationRequestDynamoRepository persists RegistrationRequest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Approve writes the member profile (into the profiles table, email guard
// included) and flips the request to approved in one TransactWriteItems call.

type RegistrationRequestDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	profilesTable string
}

var _ interfaces.IRegistrationRequestRepository = (*RegistrationRequestDynamoRepository)(nil)

func NewRegistrationRequestDynamoRepository(ddb *dynamodb.Client) *RegistrationRequestDynamoRepository {
	return &RegistrationRequestDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("REGISTRATION_REQUESTS_TABLE", defaultRegistrationsTableName),
		profilesTable: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *RegistrationRequestDynamoRepository) Create(ctx context.Context, req entities.RegistrationRequest) (entities.RegistrationRequest, error) {
	av, err := attributevalue.MarshalMap(toRegistrationRequestItem(req))
	if err != nil {
		return entities.RegistrationRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.RegistrationRequest{}, interfaces.ErrAlreadyExists
		}
		return entities.RegistrationRequest{}, err
	}
	return req, nil
}

func (r *RegistrationRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.RegistrationRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RegistrationRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.RegistrationRequest{}, nil
	}

	var it registrationRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RegistrationRequest{}, err
	}
	return fromRegistrationRequestItem(it), nil
}

func (r *RegistrationRequestDynamoRepository) List(ctx context.Context) ([]entities.RegistrationRequest, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	requests := make([]entities.RegistrationRequest, 0, len(out.Items))
	for _, item := range out.Items {
		var it registrationRequestItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		requests = append(requests, fromRegistrationRequestItem(it))
	}
	return requests, nil
}

// Approve flips the request to approved and creates the member profile in one
// transaction. A request no longer pending maps to ErrConditionFailed; a
// profile id or email collision maps to ErrAlreadyExists.
func (r *RegistrationRequestDynamoRepository) Approve(ctx context.Context, requestID string, profile entities.Profile) error {
	profileAV, err := attributevalue.MarshalMap(toProfileItem(profile))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: requestID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
					UpdateExpression:    aws.String("SET #status = :approved, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending":    &types.AttributeValueMemberS{Value: string(entities.RegistrationStatusPending)},
						":approved":   &types.AttributeValueMemberS{Value: string(entities.RegistrationStatusApproved)},
						":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.profilesTable),
					Item:                     profileAV,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			profileEmailGuardPut(r.profilesTable, profile.Email),
		},
	})
	if err != nil {
		for _, idx := range transactionConditionIndexes(err) {
			if idx == 0 {
				return interfaces.ErrConditionFailed
			}
			return interfaces.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *RegistrationRequestDynamoRepository) Reject(ctx context.Context, requestID string) (entities.RegistrationRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: requestID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :rejected, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.RegistrationStatusPending)},
			":rejected":   &types.AttributeValueMemberS{Value: string(entities.RegistrationStatusRejected)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.RegistrationRequest{}, interfaces.ErrConditionFailed
		}
		return entities.RegistrationRequest{}, err
	}

	var it registrationRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RegistrationRequest{}, err
	}
	return fromRegistrationRequestItem(it), nil
}

func toRegistrationRequestItem(r entities.RegistrationRequest) registrationRequestItem {
	return registrationRequestItem{
		ID:           r.ID,
		Email:        r.Email,
		FullName:     r.FullName,
		Organization: r.Organization,
		Message:      r.Message,
		Status:       string(r.Status),
		CreatedAt:    formatTime(r.CreatedAt),
		UpdatedAt:    formatTime(r.UpdatedAt),
	}
}

func fromRegistrationRequestItem(it registrationRequestItem) entities.RegistrationRequest {
	return entities.RegistrationRequest{
		ID:           it.ID,
		Email:        it.Email,
		FullName:     it.FullName,
		Organization: it.Organization,
		Message:      it.Message,
		Status:       entities.RegistrationStatus(it.Status),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
