package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/railflow/salesops/internal/domain/entities"
	"github.com/railflow/salesops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const accountIndexName = "account_id-index"

type billingRecordItem struct {
	ID          string `dynamodbav:"id"`
	Kind        string `dynamodbav:"kind"`
	AccountID   int64  `dynamodbav:"account_id"`
	ContactID   int64  `dynamodbav:"contact_id"`
	StatementNo string `dynamodbav:"statement_no"`
	HashKey     string `dynamodbav:"hash_key"`
	Amount      string `dynamodbav:"amount"`
	Summary     string `dynamodbav:"summary"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// BillingRecordDynamoRepository persists the audit trail of issued estimates
// and invoices.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (account_id-index): account_id (number)
//
// Amounts are stored as strings to keep the decimal representation exact.
type BillingRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingRecordRepository = (*BillingRecordDynamoRepository)(nil)

func NewBillingRecordDynamoRepository(ddb *dynamodb.Client, tableName string) *BillingRecordDynamoRepository {
	return &BillingRecordDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BillingRecordDynamoRepository) Create(ctx context.Context, rec entities.BillingRecord) (entities.BillingRecord, error) {
	av, err := attributevalue.MarshalMap(toBillingRecordItem(rec))
	if err != nil {
		return entities.BillingRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.BillingRecord{}, err
	}
	return rec, nil
}

func (r *BillingRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingRecord{}, nil
	}

	var it billingRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingRecord{}, err
	}
	return fromBillingRecordItem(it), nil
}

func (r *BillingRecordDynamoRepository) ListByAccountID(ctx context.Context, accountID int64) ([]entities.BillingRecord, error) {
	key, err := attributevalue.Marshal(accountID)
	if err != nil {
		return nil, err
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(accountIndexName),
		KeyConditionExpression: aws.String("#account_id = :account_id"),
		ExpressionAttributeNames: map[string]string{
			"#account_id": "account_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":account_id": key,
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.BillingRecord, 0, len(out.Items))
	for _, item := range out.Items {
		var it billingRecordItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		records = append(records, fromBillingRecordItem(it))
	}
	return records, nil
}

func toBillingRecordItem(rec entities.BillingRecord) billingRecordItem {
	return billingRecordItem{
		ID:          rec.ID,
		Kind:        string(rec.Kind),
		AccountID:   rec.AccountID,
		ContactID:   rec.ContactID,
		StatementNo: rec.StatementNo,
		HashKey:     rec.HashKey,
		Amount:      rec.Amount.String(),
		Summary:     rec.Summary,
		CreatedAt:   rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBillingRecordItem(it billingRecordItem) entities.BillingRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.BillingRecord{
		ID:          it.ID,
		Kind:        entities.BillingRecordKind(it.Kind),
		AccountID:   it.AccountID,
		ContactID:   it.ContactID,
		StatementNo: it.StatementNo,
		HashKey:     it.HashKey,
		Amount:      amount,
		Summary:     it.Summary,
		CreatedAt:   createdAt,
	}
}
