package repository

import (
	"context"
	"time"

	"fleetval/internal/domain/entities"
	"fleetval/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultHistoryTableName = "report_status_history"

type statusHistoryItem struct {
	ReportID  string `dynamodbav:"report_id"`
	SK        string `dynamodbav:"sk"`
	ID        string `dynamodbav:"id"`
	OldStatus string `dynamodbav:"old_status,omitempty"`
	NewStatus string `dynamodbav:"new_status"`
	ChangedBy string `dynamodbav:"changed_by"`
	Reason    string `dynamodbav:"reason,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// StatusHistoryDynamoRepository persists the append-only audit rows.
//
// Table requirements:
//   - PK: report_id (string)
//   - SK: sk (string, created_at#entry_id; RFC3339Nano keeps lexicographic
//     order chronological)
//
// Rows are never updated or deleted.

type StatusHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStatusHistoryRepository = (*StatusHistoryDynamoRepository)(nil)

func NewStatusHistoryDynamoRepository(ddb *dynamodb.Client) *StatusHistoryDynamoRepository {
	return &StatusHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STATUS_HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *StatusHistoryDynamoRepository) Append(ctx context.Context, e entities.StatusHistoryEntry) error {
	createdAt := e.CreatedAt.UTC().Format(time.RFC3339Nano)
	it := statusHistoryItem{
		ReportID:  e.ReportID,
		SK:        createdAt + "#" + e.ID,
		ID:        e.ID,
		OldStatus: string(e.OldStatus),
		NewStatus: string(e.NewStatus),
		ChangedBy: e.ChangedBy,
		Reason:    e.Reason,
		CreatedAt: createdAt,
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "sk",
		},
	})
	return err
}

func (r *StatusHistoryDynamoRepository) ListByReportID(ctx context.Context, reportID string) ([]entities.StatusHistoryEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("report_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: reportID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.StatusHistoryEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it statusHistoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		entries = append(entries, entities.StatusHistoryEntry{
			ID:        it.ID,
			ReportID:  it.ReportID,
			OldStatus: entities.ReportStatus(it.OldStatus),
			NewStatus: entities.ReportStatus(it.NewStatus),
			ChangedBy: it.ChangedBy,
			Reason:    it.Reason,
			CreatedAt: createdAt,
		})
	}
	return entries, nil
}
