package repository

import (
	"context"
	"strings"
	"time"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProfilesTableName = "profiles"
	profileEmailIndex        = "email-index"

	// emailGuardPrefix keys the single-attribute items that make email
	// uniqueness a conditional-put concern; the email GSI alone cannot
	// enforce it.
	emailGuardPrefix = "email#"
)

type profileItem struct {
	ID           string `dynamodbav:"id"`
	Email        string `dynamodbav:"email"`
	FullName     string `dynamodbav:"full_name"`
	Organization string `dynamodbav:"organization"`
	Role         string `dynamodbav:"role"`
	Active       bool   `dynamodbav:"active"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// ProfileDynamoRepository persists Profile entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI email-index: email (string)
//
// Create writes the profile and an "email#<email>" guard item in one
// transaction, both conditional on not-exists, so two sign-ups racing on the
// same email produce exactly one profile.

type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) Create(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	av, err := attributevalue.MarshalMap(toProfileItem(p))
	if err != nil {
		return entities.Profile{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			profileEmailGuardPut(r.tableName, p.Email),
		},
	})
	if err != nil {
		if len(transactionConditionIndexes(err)) > 0 {
			return entities.Profile{}, interfaces.ErrAlreadyExists
		}
		return entities.Profile{}, err
	}
	return p, nil
}

func (r *ProfileDynamoRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func (r *ProfileDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Profile, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(profileEmailIndex),
		KeyConditionExpression: aws.String("#email = :email"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Items) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func (r *ProfileDynamoRepository) List(ctx context.Context) ([]entities.Profile, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("attribute_exists(#email)"),
		ExpressionAttributeNames: map[string]string{"#email": "email"},
	})
	if err != nil {
		return nil, err
	}

	profiles := make([]entities.Profile, 0, len(out.Items))
	for _, item := range out.Items {
		var it profileItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		profiles = append(profiles, fromProfileItem(it))
	}
	return profiles, nil
}

func (r *ProfileDynamoRepository) UpdateRole(ctx context.Context, id string, role entities.Role) (entities.Profile, error) {
	return r.update(ctx, id, "SET #role = :val, #updated_at = :updated_at",
		map[string]string{"#role": "role"},
		&types.AttributeValueMemberS{Value: string(role)},
	)
}

func (r *ProfileDynamoRepository) UpdateActive(ctx context.Context, id string, active bool) (entities.Profile, error) {
	return r.update(ctx, id, "SET #active = :val, #updated_at = :updated_at",
		map[string]string{"#active": "active"},
		&types.AttributeValueMemberBOOL{Value: active},
	)
}

func (r *ProfileDynamoRepository) update(ctx context.Context, id, expr string, names map[string]string, val types.AttributeValue) (entities.Profile, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeNames: mergeNames(names, map[string]string{
			"#id":         "id",
			"#updated_at": "updated_at",
		}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":val":        val,
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Profile{}, interfaces.ErrConditionFailed
		}
		return entities.Profile{}, err
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

// profileEmailGuardPut builds the conditional put of the email guard item.
// Shared with the registration approval transaction.
func profileEmailGuardPut(tableName, email string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName: aws.String(tableName),
			Item: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: emailGuardPrefix + strings.ToLower(email)},
			},
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}
}

func toProfileItem(p entities.Profile) profileItem {
	return profileItem{
		ID:           p.ID,
		Email:        p.Email,
		FullName:     p.FullName,
		Organization: p.Organization,
		Role:         string(p.Role),
		Active:       p.Active,
		PasswordHash: p.PasswordHash,
		CreatedAt:    formatTime(p.CreatedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
	}
}

func fromProfileItem(it profileItem) entities.Profile {
	return entities.Profile{
		ID:           it.ID,
		Email:        it.Email,
		FullName:     it.FullName,
		Organization: it.Organization,
		Role:         entities.Role(it.Role),
		Active:       it.Active,
		PasswordHash: it.PasswordHash,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
