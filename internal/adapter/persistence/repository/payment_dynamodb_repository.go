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

const defaultPaymentsTableName = "payments"

type paymentItem struct {
	ID               string `dynamodbav:"id"`
	UserID           string `dynamodbav:"user_id"`
	QuoteID          string `dynamodbav:"quote_id"`
	Amount           string `dynamodbav:"amount"`
	Phone            string `dynamodbav:"phone"`
	ConfirmationCode string `dynamodbav:"confirmation_code,omitempty"`
	FailureReason    string `dynamodbav:"failure_reason,omitempty"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// CompleteWithQuote updates the payment and its quote (in the quotes table) with
// TransactWriteItems, so both writes land or neither does.

type PaymentDynamoRepository struct {
	ddb         DynamoAPI
	tableName   string
	quotesTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName, quotesTable string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:         ddb,
		tableName:   tableOr(tableName, defaultPaymentsTableName),
		quotesTable: tableOr(quotesTable, defaultQuotesTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPaymentItem(p)); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var it paymentItem
	found, err := getItemByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error) {
	raw, err := queryByUser(ctx, r.ddb, r.tableName, userID)
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(raw)
}

func (r *PaymentDynamoRepository) List(ctx context.Context) ([]entities.Payment, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(raw)
}

// CompleteWithQuote returns a zero Payment when the payment is missing, no longer
// initiated, or its quote is gone.
func (r *PaymentDynamoRepository) CompleteWithQuote(ctx context.Context, paymentID, confirmationCode string) (entities.Payment, error) {
	current, err := r.GetByID(ctx, paymentID)
	if err != nil || current.ID == "" {
		return entities.Payment{}, err
	}

	now := nowString()
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: paymentID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :initiated"),
				UpdateExpression:    aws.String("SET #status = :completed, #code = :code, #updated_at = :now"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#code":       "confirmation_code",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":initiated": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusInitiated)},
					":completed": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCompleted)},
					":code":      &types.AttributeValueMemberS{Value: confirmationCode},
					":now":       &types.AttributeValueMemberS{Value: now},
				},
			}},
			{Update: &types.Update{
				TableName: aws.String(r.quotesTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: current.QuoteID},
				},
				ConditionExpression: aws.String("attribute_exists(#id)"),
				UpdateExpression:    aws.String("SET #status = :paid, #updated_at = :now"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":paid": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPaid)},
					":now":  &types.AttributeValueMemberS{Value: now},
				},
			}},
		},
	})
	if err != nil {
		if isTransactionCanceled(err) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}

	current.Status = entities.PaymentStatusCompleted
	current.ConfirmationCode = confirmationCode
	current.UpdatedAt = parseTime(now)
	return current, nil
}

func (r *PaymentDynamoRepository) MarkFailed(ctx context.Context, paymentID, reason string) (entities.Payment, error) {
	var it paymentItem
	found, err := updateByID(ctx, r.ddb, r.tableName, paymentID, "#status = :initiated",
		"SET #status = :failed, #reason = :reason, #updated_at = :now",
		map[string]types.AttributeValue{
			":initiated": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusInitiated)},
			":failed":    &types.AttributeValueMemberS{Value: string(entities.PaymentStatusFailed)},
			":reason":    &types.AttributeValueMemberS{Value: reason},
			":now":       &types.AttributeValueMemberS{Value: nowString()},
		},
		map[string]string{
			"#status":     "status",
			"#reason":     "failure_reason",
			"#updated_at": "updated_at",
		},
		&it,
	)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func unmarshalPayments(raw []map[string]types.AttributeValue) ([]entities.Payment, error) {
	payments := make([]entities.Payment, 0, len(raw))
	for _, av := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:               p.ID,
		UserID:           p.UserID,
		QuoteID:          p.QuoteID,
		Amount:           floatToString(p.Amount),
		Phone:            p.Phone,
		ConfirmationCode: p.ConfirmationCode,
		FailureReason:    p.FailureReason,
		Status:           string(p.Status),
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:               it.ID,
		UserID:           it.UserID,
		QuoteID:          it.QuoteID,
		Amount:           parseFloat(it.Amount),
		Phone:            it.Phone,
		ConfirmationCode: it.ConfirmationCode,
		FailureReason:    it.FailureReason,
		Status:           entities.PaymentStatus(it.Status),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
