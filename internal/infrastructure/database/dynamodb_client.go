package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"meshguard_api/internal/adapter/persistence/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const localCredential = "local"

// DynamoSettings selects the region, credentials and, for DynamoDB Local, the endpoint.
type DynamoSettings struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// ConnectDynamoDB creates a DynamoDB client.
//
// Credentials are static; an empty key pair falls back to "local" so DynamoDB
// Local works without setup.
func ConnectDynamoDB(ctx context.Context, s DynamoSettings) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func NewDynamoDBConfig(ctx context.Context, s DynamoSettings) (aws.Config, error) {
	region := s.Region
	if region == "" {
		region = "us-east-1"
	}

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	accessKey, secretKey := s.AccessKeyID, s.SecretAccessKey
	if accessKey == "" {
		accessKey = localCredential
	}
	if secretKey == "" {
		secretKey = localCredential
	}
	creds := credentials.NewStaticCredentialsProvider(accessKey, secretKey, s.SessionToken)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}

	if s.Endpoint != "" {
		endpoint := s.Endpoint
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// TableCreator is the part of *dynamodb.Client used by EnsureTables.
type TableCreator interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTables creates every table (PAY_PER_REQUEST, PK id) that does not exist yet.
func EnsureTables(ctx context.Context, api TableCreator, specs []repository.DynamoTableSpec) error {
	for _, spec := range specs {
		in := &dynamodb.CreateTableInput{
			TableName:   aws.String(spec.Name),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
		}
		for index, attr := range spec.GSIs {
			in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
				AttributeName: aws.String(attr), AttributeType: types.ScalarAttributeTypeS,
			})
			in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
				IndexName: aws.String(index),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			})
		}

		if _, err := api.CreateTable(ctx, in); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				log.Printf("[database][dynamodb] table exists name=%s", spec.Name)
				continue
			}
			return fmt.Errorf("create table %s: %w", spec.Name, err)
		}
		log.Printf("[database][dynamodb] table created name=%s gsis=%d", spec.Name, len(spec.GSIs))
	}
	return nil
}
