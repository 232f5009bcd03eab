package database

import (
	"context"
	"errors"
	"testing"

	"meshguard_api/internal/adapter/persistence/repository"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tableCreatorStub struct {
	created []*dynamodb.CreateTableInput
	exists  map[string]bool
}

func (s *tableCreatorStub) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	if s.exists[*in.TableName] {
		return nil, &types.ResourceInUseException{}
	}
	s.created = append(s.created, in)
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureTables_CreatesMissingAndSkipsExisting(t *testing.T) {
	stub := &tableCreatorStub{exists: map[string]bool{"users": true}}
	specs := repository.DynamoTables{Users: "users", Quotes: "quotes", Payments: "payments", ContactMessages: "contact_messages"}.Specs()

	require.NoError(t, EnsureTables(context.Background(), stub, specs))
	require.Len(t, stub.created, 3)

	quotes := stub.created[0]
	assert.Equal(t, "quotes", *quotes.TableName)
	require.Len(t, quotes.GlobalSecondaryIndexes, 1)
	assert.Equal(t, "user_id-index", *quotes.GlobalSecondaryIndexes[0].IndexName)
	assert.Len(t, quotes.AttributeDefinitions, 2)
	assert.Empty(t, stub.created[2].GlobalSecondaryIndexes)
}

type failingCreator struct{}

func (failingCreator) CreateTable(context.Context, *dynamodb.CreateTableInput, ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	return nil, errors.New("boom")
}

func TestEnsureTables_PropagatesErrors(t *testing.T) {
	err := EnsureTables(context.Background(), failingCreator{}, []repository.DynamoTableSpec{{Name: "users"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create table users")
}

func TestOpenSQL_SQLiteInMemory(t *testing.T) {
	db, err := OpenSQL("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	assert.True(t, db.Migrator().HasTable("quotes"))
	assert.True(t, db.Migrator().HasTable("payments"))
}

func TestOpenSQL_UnsupportedDriver(t *testing.T) {
	_, err := OpenSQL("mysql", "dsn")
	require.Error(t, err)
}

func TestNewDynamoDBConfig_Credentials(t *testing.T) {
	ctx := context.Background()

	cfg, err := NewDynamoDBConfig(ctx, DynamoSettings{Endpoint: "http://localhost:8000"})
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Region)
	creds, err := cfg.Credentials.Retrieve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
	assert.Equal(t, "local", creds.SecretAccessKey)

	cfg, err = NewDynamoDBConfig(ctx, DynamoSettings{Region: "eu-west-1", AccessKeyID: "AKIA1", SecretAccessKey: "shh", SessionToken: "tok"})
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
	creds, err = cfg.Credentials.Retrieve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AKIA1", creds.AccessKeyID)
	assert.Equal(t, "shh", creds.SecretAccessKey)
	assert.Equal(t, "tok", creds.SessionToken)
}
