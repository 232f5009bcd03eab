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

const (
	defaultUsersTableName = "users"
	emailGuardPrefix      = "email#"
)

type userItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	Phone        string `dynamodbav:"phone,omitempty"`
	Role         string `dynamodbav:"role"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// emailGuardItem reserves an email address. It lives in the users table under
// id "email#<email>" and points at the owning user.
type emailGuardItem struct {
	ID      string `dynamodbav:"id"`
	OwnerID string `dynamodbav:"owner_id"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Email uniqueness is enforced by writing the user and its email guard item in
// one transaction, both conditioned on attribute_not_exists(id).

type UserDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: tableOr(tableName, defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	userAV, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}
	guardAV, err := attributevalue.MarshalMap(emailGuardItem{ID: emailGuardPrefix + u.Email, OwnerID: u.ID})
	if err != nil {
		return entities.User{}, err
	}

	cond := aws.String("attribute_not_exists(#id)")
	names := map[string]string{"#id": "id"}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: userAV, ConditionExpression: cond, ExpressionAttributeNames: names}},
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: guardAV, ConditionExpression: cond, ExpressionAttributeNames: names}},
		},
	})
	if err != nil {
		if isTransactionCanceled(err) {
			return entities.User{}, errDuplicate(err)
		}
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var it userItem
	found, err := getItemByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found || it.Email == "" {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	var guard emailGuardItem
	found, err := getItemByID(ctx, r.ddb, r.tableName, emailGuardPrefix+email, &guard)
	if err != nil || !found || guard.OwnerID == "" {
		return entities.User{}, err
	}
	return r.GetByID(ctx, guard.OwnerID)
}

func (r *UserDynamoRepository) UpdateRole(ctx context.Context, id string, role entities.Role) (entities.User, error) {
	var it userItem
	found, err := updateByID(ctx, r.ddb, r.tableName, id, "",
		"SET #role = :role",
		map[string]types.AttributeValue{
			":role": &types.AttributeValueMemberS{Value: string(role)},
		},
		map[string]string{"#role": "role"},
		&it,
	)
	if err != nil || !found {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("attribute_not_exists(#owner)"),
		ExpressionAttributeNames: map[string]string{"#owner": "owner_id"},
	})
	if err != nil {
		return nil, err
	}
	users := make([]entities.User, 0, len(raw))
	for _, av := range raw {
		var it userItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		users = append(users, fromUserItem(it))
	}
	return users, nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        u.Phone,
		Role:         string(u.Role),
		CreatedAt:    formatTime(u.CreatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		Phone:        it.Phone,
		Role:         entities.Role(it.Role),
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
