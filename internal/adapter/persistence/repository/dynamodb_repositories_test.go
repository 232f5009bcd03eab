package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dynamoStub records requests and answers from canned responses.
type dynamoStub struct {
	putErr      error
	getItem     map[string]map[string]types.AttributeValue
	updateOut   map[string]types.AttributeValue
	updateErr   error
	queryPages  []*dynamodb.QueryOutput
	scanPages   []*dynamodb.ScanOutput
	transactErr error

	puts      []*dynamodb.PutItemInput
	updates   []*dynamodb.UpdateItemInput
	queries   []*dynamodb.QueryInput
	scans     int
	transacts []*dynamodb.TransactWriteItemsInput
}

func (s *dynamoStub) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	s.puts = append(s.puts, in)
	return &dynamodb.PutItemOutput{}, s.putErr
}

func (s *dynamoStub) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: s.getItem[id]}, nil
}

func (s *dynamoStub) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	s.updates = append(s.updates, in)
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &dynamodb.UpdateItemOutput{Attributes: s.updateOut}, nil
}

func (s *dynamoStub) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	s.queries = append(s.queries, in)
	out := s.queryPages[0]
	s.queryPages = s.queryPages[1:]
	return out, nil
}

func (s *dynamoStub) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	s.scans++
	out := s.scanPages[0]
	s.scanPages = s.scanPages[1:]
	return out, nil
}

func (s *dynamoStub) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	s.transacts = append(s.transacts, in)
	return &dynamodb.TransactWriteItemsOutput{}, s.transactErr
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

func TestQuoteDynamoRepository_CreateEncodesMoneyAsString(t *testing.T) {
	stub := &dynamoStub{}
	repo := NewQuoteDynamoRepository(stub, "quotes-test")

	_, err := repo.Create(context.Background(), entities.Quote{ID: "q-1", UserID: "u-1", Width: 1.2, Height: 1.5, WindowCount: 2, TotalPrice: 11520, Status: entities.QuoteStatusPending})
	require.NoError(t, err)
	require.Len(t, stub.puts, 1)

	put := stub.puts[0]
	assert.Equal(t, "quotes-test", *put.TableName)
	assert.Equal(t, "attribute_not_exists(#id)", *put.ConditionExpression)
	assert.Equal(t, "11520", put.Item["total_price"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "1.2", put.Item["width"].(*types.AttributeValueMemberS).Value)
}

func TestQuoteDynamoRepository_CreateDuplicate(t *testing.T) {
	stub := &dynamoStub{putErr: &types.ConditionalCheckFailedException{}}
	repo := NewQuoteDynamoRepository(stub, "quotes")

	_, err := repo.Create(context.Background(), entities.Quote{ID: "q-1"})
	assert.True(t, errors.Is(err, interfaces.ErrDuplicateKey))
}

func TestQuoteDynamoRepository_ListByUserIDPaginates(t *testing.T) {
	stub := &dynamoStub{queryPages: []*dynamodb.QueryOutput{
		{
			Items:            []map[string]types.AttributeValue{mustMarshal(t, quoteItem{ID: "q-1", UserID: "u-1", TotalPrice: "100"})},
			LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "q-1"}},
		},
		{Items: []map[string]types.AttributeValue{mustMarshal(t, quoteItem{ID: "q-2", UserID: "u-1", TotalPrice: "250.5"})}},
	}}
	repo := NewQuoteDynamoRepository(stub, "quotes")

	quotes, err := repo.ListByUserID(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.InDelta(t, 250.5, quotes[1].TotalPrice, 0.0001)
	require.Len(t, stub.queries, 2)
	assert.Equal(t, "user_id-index", *stub.queries[0].IndexName)
	assert.NotNil(t, stub.queries[1].ExclusiveStartKey)
}

func TestQuoteDynamoRepository_UpdateStatusMissing(t *testing.T) {
	stub := &dynamoStub{updateErr: &types.ConditionalCheckFailedException{}}
	repo := NewQuoteDynamoRepository(stub, "quotes")

	q, err := repo.UpdateStatusByID(context.Background(), "q-404", entities.QuoteStatusPaid)
	require.NoError(t, err)
	assert.Empty(t, q.ID)
	assert.Equal(t, "attribute_exists(#id)", *stub.updates[0].ConditionExpression)
}

func TestUserDynamoRepository_CreateWritesEmailGuard(t *testing.T) {
	stub := &dynamoStub{}
	repo := NewUserDynamoRepository(stub, "users")

	_, err := repo.Create(context.Background(), entities.User{ID: "u-1", Name: "A", Email: "a@example.com", Role: entities.RoleUser, CreatedAt: time.Now()})
	require.NoError(t, err)
	require.Len(t, stub.transacts, 1)

	items := stub.transacts[0].TransactItems
	require.Len(t, items, 2)
	assert.Equal(t, "email#a@example.com", items[1].Put.Item["id"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "u-1", items[1].Put.Item["owner_id"].(*types.AttributeValueMemberS).Value)
}

func TestUserDynamoRepository_CreateDuplicateEmail(t *testing.T) {
	stub := &dynamoStub{transactErr: &types.TransactionCanceledException{}}
	repo := NewUserDynamoRepository(stub, "users")

	_, err := repo.Create(context.Background(), entities.User{ID: "u-2", Email: "a@example.com"})
	assert.True(t, errors.Is(err, interfaces.ErrDuplicateKey))
}

func TestUserDynamoRepository_GetByEmailFollowsGuard(t *testing.T) {
	stub := &dynamoStub{getItem: map[string]map[string]types.AttributeValue{
		"email#a@example.com": mustMarshal(t, emailGuardItem{ID: "email#a@example.com", OwnerID: "u-1"}),
		"u-1":                 mustMarshal(t, userItem{ID: "u-1", Name: "A", Email: "a@example.com", Role: "admin"}),
	}}
	repo := NewUserDynamoRepository(stub, "users")

	u, err := repo.GetByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.True(t, u.IsAdmin())

	none, err := repo.GetByEmail(context.Background(), "b@example.com")
	require.NoError(t, err)
	assert.Empty(t, none.ID)
}

func TestPaymentDynamoRepository_CompleteWithQuoteTransaction(t *testing.T) {
	stub := &dynamoStub{getItem: map[string]map[string]types.AttributeValue{
		"p-1": mustMarshal(t, paymentItem{ID: "p-1", UserID: "u-1", QuoteID: "q-1", Amount: "11520", Status: "initiated"}),
	}}
	repo := NewPaymentDynamoRepository(stub, "payments", "quotes")

	p, err := repo.CompleteWithQuote(context.Background(), "p-1", "ABCDEF1234")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusCompleted, p.Status)
	assert.Equal(t, "ABCDEF1234", p.ConfirmationCode)

	require.Len(t, stub.transacts, 1)
	items := stub.transacts[0].TransactItems
	require.Len(t, items, 2)
	assert.Equal(t, "payments", *items[0].Update.TableName)
	assert.Contains(t, *items[0].Update.ConditionExpression, "#status = :initiated")
	assert.Equal(t, "quotes", *items[1].Update.TableName)
	assert.Equal(t, "q-1", items[1].Update.Key["id"].(*types.AttributeValueMemberS).Value)
}

func TestPaymentDynamoRepository_CompleteCanceled(t *testing.T) {
	stub := &dynamoStub{
		getItem: map[string]map[string]types.AttributeValue{
			"p-1": mustMarshal(t, paymentItem{ID: "p-1", QuoteID: "q-1", Status: "completed"}),
		},
		transactErr: &types.TransactionCanceledException{},
	}
	repo := NewPaymentDynamoRepository(stub, "payments", "quotes")

	p, err := repo.CompleteWithQuote(context.Background(), "p-1", "CODE")
	require.NoError(t, err)
	assert.Empty(t, p.ID)
}

func TestPaymentDynamoRepository_CompleteMissingPayment(t *testing.T) {
	stub := &dynamoStub{}
	repo := NewPaymentDynamoRepository(stub, "payments", "quotes")

	p, err := repo.CompleteWithQuote(context.Background(), "p-404", "CODE")
	require.NoError(t, err)
	assert.Empty(t, p.ID)
	assert.Empty(t, stub.transacts)
}

func TestPaymentDynamoRepository_MarkFailed(t *testing.T) {
	stub := &dynamoStub{updateOut: mustMarshal(t, paymentItem{ID: "p-1", Status: "failed", FailureReason: "rejected"})}
	repo := NewPaymentDynamoRepository(stub, "payments", "quotes")

	p, err := repo.MarkFailed(context.Background(), "p-1", "rejected")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusFailed, p.Status)
	assert.Equal(t, "attribute_exists(#id) AND #status = :initiated", *stub.updates[0].ConditionExpression)
}

func TestContactMessageDynamoRepository_List(t *testing.T) {
	stub := &dynamoStub{scanPages: []*dynamodb.ScanOutput{
		{Items: []map[string]types.AttributeValue{mustMarshal(t, contactMessageItem{ID: "m-1", Name: "N", Message: "hi", CreatedAt: "2024-05-01T10:00:00Z"})}},
	}}
	repo := NewContactMessageDynamoRepository(stub, "contact_messages")

	msgs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, 2024, msgs[0].CreatedAt.Year())
	assert.Equal(t, 1, stub.scans)
}

func TestDynamoTables_SpecsUseGivenNamesOrDefaults(t *testing.T) {
	t.Setenv("USERS_TABLE", "from-env")

	specs := DynamoTables{Quotes: "prod_quotes"}.Specs()
	require.Len(t, specs, 4)
	assert.Equal(t, "users", specs[0].Name)
	assert.Equal(t, "prod_quotes", specs[1].Name)
	assert.Equal(t, "payments", specs[2].Name)
	assert.Equal(t, "contact_messages", specs[3].Name)
	assert.Contains(t, specs[1].GSIs, userIDIndex)
}
