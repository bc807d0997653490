package repository

import (
	"context"
	"log"
	"time"

	"ordenes_xpto/internal/domain/entities"
	"ordenes_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type recordItem struct {
	ID            string `dynamodbav:"id"`
	Description   string `dynamodbav:"description"`
	ConnectionTag string `dynamodbav:"connection_tag"`
	RecordedAt    string `dynamodbav:"recorded_at"`
}

// DynamoDBAPI is the subset of *dynamodb.Client used by the records sink.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// RecordDynamoRepository stores persistence records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type RecordDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IPersistenceSink = (*RecordDynamoRepository)(nil)

func NewRecordDynamoRepository(ddb DynamoDBAPI, tableName string) *RecordDynamoRepository {
	return &RecordDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *RecordDynamoRepository) Record(ctx context.Context, description string, connectionTag string) error {
	_, err := r.Create(ctx, entities.PersistenceRecord{
		ID:            uuid.NewString(),
		Description:   description,
		ConnectionTag: connectionTag,
		RecordedAt:    r.now().UTC(),
	})
	return err
}

func (r *RecordDynamoRepository) Create(ctx context.Context, rec entities.PersistenceRecord) (entities.PersistenceRecord, error) {
	av, err := attributevalue.MarshalMap(toRecordItem(rec))
	if err != nil {
		return entities.PersistenceRecord{}, err
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
		log.Printf("[persistence][dynamodb] put failed table=%s record_id=%s err=%v", r.tableName, rec.ID, err)
		return entities.PersistenceRecord{}, err
	}
	log.Printf("[persistence][dynamodb] recorded table=%s record_id=%s", r.tableName, rec.ID)
	return rec, nil
}

func (r *RecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.PersistenceRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PersistenceRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PersistenceRecord{}, nil
	}

	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PersistenceRecord{}, err
	}
	return fromRecordItem(it), nil
}

func toRecordItem(rec entities.PersistenceRecord) recordItem {
	return recordItem{
		ID:            rec.ID,
		Description:   rec.Description,
		ConnectionTag: rec.ConnectionTag,
		RecordedAt:    formatTime(rec.RecordedAt),
	}
}

func fromRecordItem(it recordItem) entities.PersistenceRecord {
	return entities.PersistenceRecord{
		ID:            it.ID,
		Description:   it.Description,
		ConnectionTag: it.ConnectionTag,
		RecordedAt:    parseTime(it.RecordedAt),
	}
}
