package repository

import (
	"context"

	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultContactMessagesTableName = "contact_messages"

type contactMessageItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"created_at"`
}

type ContactMessageDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IContactMessageRepository = (*ContactMessageDynamoRepository)(nil)

func NewContactMessageDynamoRepository(ddb DynamoAPI, tableName string) *ContactMessageDynamoRepository {
	return &ContactMessageDynamoRepository{
		ddb:       ddb,
		tableName: tableOr(tableName, defaultContactMessagesTableName),
	}
}

func (r *ContactMessageDynamoRepository) Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
	it := contactMessageItem{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		CreatedAt: formatTime(m.CreatedAt),
	}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.ContactMessage{}, err
	}
	return m, nil
}

func (r *ContactMessageDynamoRepository) List(ctx context.Context) ([]entities.ContactMessage, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.ContactMessage, 0, len(raw))
	for _, av := range raw {
		var it contactMessageItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, entities.ContactMessage{
			ID:        it.ID,
			Name:      it.Name,
			Email:     it.Email,
			Phone:     it.Phone,
			Message:   it.Message,
			CreatedAt: parseTime(it.CreatedAt),
		})
	}
	return out, nil
}
