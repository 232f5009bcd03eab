package repository

import (
	"context"

	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID           string `dynamodbav:"id"`
	UserID       string `dynamodbav:"user_id"`
	Width        string `dynamodbav:"width"`
	Height       string `dynamodbav:"height"`
	WindowCount  int    `dynamodbav:"window_count"`
	MeshType     string `dynamodbav:"mesh_type"`
	MaterialType string `dynamodbav:"material_type"`
	TotalPrice   string `dynamodbav:"total_price"`
	Status       string `dynamodbav:"status"`
	Location     string `dynamodbav:"location,omitempty"`
	Notes        string `dynamodbav:"notes,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableOr(tableName, defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toQuoteItem(q)); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var it quoteItem
	found, err := getItemByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error) {
	raw, err := queryByUser(ctx, r.ddb, r.tableName, userID)
	if err != nil {
		return nil, err
	}
	return unmarshalQuotes(raw)
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return unmarshalQuotes(raw)
}

func (r *QuoteDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	var it quoteItem
	found, err := updateByID(ctx, r.ddb, r.tableName, id, "",
		"SET #status = :status, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		&it,
	)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func unmarshalQuotes(raw []map[string]types.AttributeValue) ([]entities.Quote, error) {
	quotes := make([]entities.Quote, 0, len(raw))
	for _, av := range raw {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:           q.ID,
		UserID:       q.UserID,
		Width:        floatToString(q.Width),
		Height:       floatToString(q.Height),
		WindowCount:  q.WindowCount,
		MeshType:     q.MeshType,
		MaterialType: q.MaterialType,
		TotalPrice:   floatToString(q.TotalPrice),
		Status:       string(q.Status),
		Location:     q.Location,
		Notes:        q.Notes,
		CreatedAt:    formatTime(q.CreatedAt),
		UpdatedAt:    formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:           it.ID,
		UserID:       it.UserID,
		Width:        parseFloat(it.Width),
		Height:       parseFloat(it.Height),
		WindowCount:  it.WindowCount,
		MeshType:     it.MeshType,
		MaterialType: it.MaterialType,
		TotalPrice:   parseFloat(it.TotalPrice),
		Status:       entities.QuoteStatus(it.Status),
		Location:     it.Location,
		Notes:        it.Notes,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
