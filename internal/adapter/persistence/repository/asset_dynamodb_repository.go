package repository

import (
	"context"
	"strconv"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAssetsTableName = "assets"
	assetOwnerIndex        = "owner_id-index"
)

type assetItem struct {
	ID             string `dynamodbav:"id"`
	OwnerID        string `dynamodbav:"owner_id"`
	Purpose        string `dynamodbav:"purpose"`
	Category       string `dynamodbav:"category"`
	Subcategory    string `dynamodbav:"subcategory"`
	Country        string `dynamodbav:"country"`
	City           string `dynamodbav:"city"`
	Area           string `dynamodbav:"area"`
	PriceAmount    string `dynamodbav:"price_amount"`
	PriceCurrency  string `dynamodbav:"price_currency"`
	ExpectedReturn string `dynamodbav:"expected_return"`
	Description    string `dynamodbav:"description"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// AssetDynamoRepository persists Asset entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI owner_id-index: owner_id (string)

type AssetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAssetRepository = (*AssetDynamoRepository)(nil)

func NewAssetDynamoRepository(ddb *dynamodb.Client) *AssetDynamoRepository {
	return &AssetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ASSETS_TABLE", defaultAssetsTableName),
	}
}

func (r *AssetDynamoRepository) Create(ctx context.Context, a entities.Asset) (entities.Asset, error) {
	av, err := attributevalue.MarshalMap(toAssetItem(a))
	if err != nil {
		return entities.Asset{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Asset{}, interfaces.ErrAlreadyExists
		}
		return entities.Asset{}, err
	}
	return a, nil
}

func (r *AssetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Asset, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Asset{}, err
	}
	if len(out.Item) == 0 {
		return entities.Asset{}, nil
	}

	var it assetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Asset{}, err
	}
	return fromAssetItem(it), nil
}

func (r *AssetDynamoRepository) List(ctx context.Context) ([]entities.Asset, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalAssets(out.Items)
}

func (r *AssetDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Asset, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(assetOwnerIndex),
		KeyConditionExpression: aws.String("#owner_id = :owner_id"),
		ExpressionAttributeNames: map[string]string{
			"#owner_id": "owner_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalAssets(out.Items)
}

func (r *AssetDynamoRepository) Update(ctx context.Context, a entities.Asset) (entities.Asset, error) {
	av, err := attributevalue.MarshalMap(toAssetItem(a))
	if err != nil {
		return entities.Asset{}, err
	}

	// Full replace guarded on existence; ownership was checked upstream.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Asset{}, interfaces.ErrConditionFailed
		}
		return entities.Asset{}, err
	}
	return a, nil
}

func (r *AssetDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func unmarshalAssets(items []map[string]types.AttributeValue) ([]entities.Asset, error) {
	assets := make([]entities.Asset, 0, len(items))
	for _, item := range items {
		var it assetItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		assets = append(assets, fromAssetItem(it))
	}
	return assets, nil
}

func toAssetItem(a entities.Asset) assetItem {
	return assetItem{
		ID:             a.ID,
		OwnerID:        a.OwnerID,
		Purpose:        string(a.Purpose),
		Category:       a.Category,
		Subcategory:    a.Subcategory,
		Country:        a.Country,
		City:           a.City,
		Area:           a.Area,
		PriceAmount:    floatToString(a.PriceAmount),
		PriceCurrency:  a.PriceCurrency,
		ExpectedReturn: floatToString(a.ExpectedReturn),
		Description:    a.Description,
		CreatedAt:      formatTime(a.CreatedAt),
	}
}

func fromAssetItem(it assetItem) entities.Asset {
	price, _ := strconv.ParseFloat(it.PriceAmount, 64)
	ret, _ := strconv.ParseFloat(it.ExpectedReturn, 64)
	return entities.Asset{
		ID:             it.ID,
		OwnerID:        it.OwnerID,
		Purpose:        entities.AssetPurpose(it.Purpose),
		Category:       it.Category,
		Subcategory:    it.Subcategory,
		Country:        it.Country,
		City:           it.City,
		Area:           it.Area,
		PriceAmount:    price,
		PriceCurrency:  it.PriceCurrency,
		ExpectedReturn: ret,
		Description:    it.Description,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
