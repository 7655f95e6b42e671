package repository

import (
	"context"
	"errors"
	"time"

	"fleetval/internal/domain/entities"
	"fleetval/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReportsTableName = "reports"
	defaultClaimsTableName  = "payment_intent_claims"
	reportsIntentIndex      = "payment_intent_id-index"
	reportsOwnerIndex       = "owner_id-index"
	reportsCreditIndex      = "credit_intent_id-index"
)

var ErrPaymentIntentConflict = errors.New("report already bound to a different payment intent")

type reportItem struct {
	ID                 string `dynamodbav:"id"`
	OwnerID            string `dynamodbav:"owner_id"`
	Kind               string `dynamodbav:"report_kind"`
	Status             string `dynamodbav:"status"`
	FleetTier          string `dynamodbav:"fleet_tier,omitempty"`
	UnitCount          int    `dynamodbav:"unit_count,omitempty"`
	PaymentIntentID    string `dynamodbav:"payment_intent_id,omitempty"`
	CreditIntentID     string `dynamodbav:"credit_intent_id,omitempty"`
	AmountPaidMinor    int64  `dynamodbav:"amount_paid_minor,omitempty"`
	AmountPaidCurrency string `dynamodbav:"amount_paid_currency,omitempty"`
	PaymentStatus      string `dynamodbav:"payment_status,omitempty"`
	ValuationsIncluded int    `dynamodbav:"valuations_included,omitempty"`
	ValuationsUsed     int    `dynamodbav:"valuations_used,omitempty"`
	Deleted            bool   `dynamodbav:"deleted"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
	SubmittedAt        string `dynamodbav:"submitted_at,omitempty"`
	InProgressAt       string `dynamodbav:"in_progress_at,omitempty"`
	CompletedAt        string `dynamodbav:"completed_at,omitempty"`
	DeliveredAt        string `dynamodbav:"delivered_at,omitempty"`
	NeedMoreInfoAt     string `dynamodbav:"need_more_info_at,omitempty"`
	OverdueAt          string `dynamodbav:"overdue_at,omitempty"`
	TurnaroundDeadline string `dynamodbav:"turnaround_deadline,omitempty"`
}

type intentClaimItem struct {
	PaymentIntentID string `dynamodbav:"payment_intent_id"`
	ReportID        string `dynamodbav:"report_id"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// ReportDynamoRepository persists Report entities in DynamoDB.
//
// Table requirements:
//   - reports: PK id (string); GSIs payment_intent_id-index, owner_id-index,
//     credit_intent_id-index
//   - payment_intent_claims: PK payment_intent_id (string)
//
// GSI queries are eventually consistent; the claims table (consistent,
// conditional PutItem) is the authoritative dedup point for reconciliation.
// All list/find reads apply the not-deleted filter; soft-deleted rows stay in
// the table for audit only.

type ReportDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	claimsTable string
}

var _ interfaces.IReportRepository = (*ReportDynamoRepository)(nil)

func NewReportDynamoRepository(ddb *dynamodb.Client) *ReportDynamoRepository {
	return &ReportDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("REPORTS_TABLE", defaultReportsTableName),
		claimsTable: getenvDefault("PAYMENT_INTENT_CLAIMS_TABLE", defaultClaimsTableName),
	}
}

func (r *ReportDynamoRepository) Create(ctx context.Context, report entities.Report) (entities.Report, error) {
	av, err := attributevalue.MarshalMap(toReportItem(report))
	if err != nil {
		return entities.Report{}, err
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
		return entities.Report{}, err
	}
	return report, nil
}

func (r *ReportDynamoRepository) GetByID(ctx context.Context, id string) (entities.Report, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Report{}, err
	}
	if len(out.Item) == 0 {
		return entities.Report{}, nil
	}

	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Report{}, err
	}
	if it.Deleted {
		return entities.Report{}, nil
	}
	return fromReportItem(it), nil
}

func (r *ReportDynamoRepository) FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.Report, error) {
	items, err := r.queryNotDeleted(ctx, reportsIntentIndex, "payment_intent_id = :v", paymentIntentID)
	if err != nil {
		return entities.Report{}, err
	}
	if len(items) == 0 {
		return entities.Report{}, nil
	}
	return items[0], nil
}

func (r *ReportDynamoRepository) LatestDraftByOwnerID(ctx context.Context, ownerID string) (entities.Report, error) {
	items, err := r.queryNotDeleted(ctx, reportsOwnerIndex, "owner_id = :v", ownerID)
	if err != nil {
		return entities.Report{}, err
	}

	var latest entities.Report
	for _, it := range items {
		if it.Status != entities.StatusDraft {
			continue
		}
		if latest.ID == "" || it.CreatedAt.After(latest.CreatedAt) {
			latest = it
		}
	}
	return latest, nil
}

func (r *ReportDynamoRepository) ListByCreditIntentID(ctx context.Context, creditIntentID string) ([]entities.Report, error) {
	return r.queryNotDeleted(ctx, reportsCreditIndex, "credit_intent_id = :v", creditIntentID)
}

func (r *ReportDynamoRepository) ListByStatus(ctx context.Context, status entities.ReportStatus) ([]entities.Report, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :status AND #deleted = :deleted"),
		ExpressionAttributeNames: map[string]string{
			"#status":  "status",
			"#deleted": "deleted",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(status)},
			":deleted": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalReports(out.Items)
}

func (r *ReportDynamoRepository) queryNotDeleted(ctx context.Context, index, keyCondition, keyValue string) ([]entities.Report, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCondition),
		FilterExpression:       aws.String("#deleted = :deleted"),
		ExpressionAttributeNames: map[string]string{
			"#deleted": "deleted",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v":       &types.AttributeValueMemberS{Value: keyValue},
			":deleted": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalReports(out.Items)
}

func (r *ReportDynamoRepository) ClaimPaymentIntent(ctx context.Context, paymentIntentID, reportID string) (string, error) {
	claim := intentClaimItem{
		PaymentIntentID: paymentIntentID,
		ReportID:        reportID,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(claim)
	if err != nil {
		return "", err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.claimsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pid)"),
		ExpressionAttributeNames: map[string]string{
			"#pid": "payment_intent_id",
		},
	})
	if err == nil {
		return reportID, nil
	}

	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) {
		return "", err
	}

	// Lost the claim race: the stored claim names the canonical report.
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.claimsTable),
		Key: map[string]types.AttributeValue{
			"payment_intent_id": &types.AttributeValueMemberS{Value: paymentIntentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", errors.New("payment intent claim vanished after conditional failure")
	}
	var existing intentClaimItem
	if err := attributevalue.UnmarshalMap(out.Item, &existing); err != nil {
		return "", err
	}
	return existing.ReportID, nil
}

func (r *ReportDynamoRepository) AttachPayment(ctx context.Context, reportID, paymentIntentID string, amount entities.Money, paymentStatus string) (entities.Report, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: reportID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#pid) OR #pid = :pid)"),
		UpdateExpression: aws.String("SET #pid = :pid, #amount = :amount, #currency = :currency, " +
			"#payment_status = :payment_status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#pid":            "payment_intent_id",
			"#amount":         "amount_paid_minor",
			"#currency":       "amount_paid_currency",
			"#payment_status": "payment_status",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid":            &types.AttributeValueMemberS{Value: paymentIntentID},
			":amount":         &types.AttributeValueMemberN{Value: formatInt64(amount.AmountMinor)},
			":currency":       &types.AttributeValueMemberS{Value: amount.Currency},
			":payment_status": &types.AttributeValueMemberS{Value: paymentStatus},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Report{}, ErrPaymentIntentConflict
		}
		return entities.Report{}, err
	}

	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Report{}, err
	}
	return fromReportItem(it), nil
}

// statusTimestampAttr maps a target status to the attribute stamped when the
// report first enters it.
func statusTimestampAttr(s entities.ReportStatus) string {
	switch s {
	case entities.StatusSubmitted:
		return "submitted_at"
	case entities.StatusInProgress:
		return "in_progress_at"
	case entities.StatusCompleted:
		return "completed_at"
	case entities.StatusDelivered:
		return "delivered_at"
	case entities.StatusNeedMoreInfo:
		return "need_more_info_at"
	case entities.StatusOverdue:
		return "overdue_at"
	}
	return ""
}

func (r *ReportDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.ReportStatus, enteredAt time.Time, deadline *time.Time) (entities.Report, error) {
	now := enteredAt.UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :to, #updated_at = :now"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":from": &types.AttributeValueMemberS{Value: string(from)},
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":now":  &types.AttributeValueMemberS{Value: now},
	}

	// Timestamps record the FIRST entry into a status; NEED_MORE_INFO
	// round-trips keep the original instant via if_not_exists.
	if attr := statusTimestampAttr(to); attr != "" {
		expr += ", #stamp = if_not_exists(#stamp, :now)"
		names["#stamp"] = attr
	}
	if deadline != nil {
		expr += ", #deadline = if_not_exists(#deadline, :deadline)"
		names["#deadline"] = "turnaround_deadline"
		values[":deadline"] = &types.AttributeValueMemberS{Value: deadline.UTC().Format(time.RFC3339Nano)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// First committer won; caller re-reads and re-evaluates.
			return entities.Report{}, nil
		}
		return entities.Report{}, err
	}

	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Report{}, err
	}
	return fromReportItem(it), nil
}

func (r *ReportDynamoRepository) InitUsageMetadata(ctx context.Context, reportID, creditIntentID string, included, used int) (entities.Report, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: reportID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #included = if_not_exists(#included, :included), " +
			"#used = if_not_exists(#used, :used), #credit = if_not_exists(#credit, :credit), #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#included":   "valuations_included",
			"#used":       "valuations_used",
			"#credit":     "credit_intent_id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":included":   &types.AttributeValueMemberN{Value: formatInt(included)},
			":used":       &types.AttributeValueMemberN{Value: formatInt(used)},
			":credit":     &types.AttributeValueMemberS{Value: creditIntentID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Report{}, err
	}

	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Report{}, err
	}
	return fromReportItem(it), nil
}

func (r *ReportDynamoRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #deleted = :deleted, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#deleted":    "deleted",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":deleted":    &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Already gone; nothing to hide.
			return nil
		}
		return err
	}
	return nil
}

func unmarshalReports(raw []map[string]types.AttributeValue) ([]entities.Report, error) {
	items := make([]entities.Report, 0, len(raw))
	for _, m := range raw {
		var it reportItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromReportItem(it))
	}
	return items, nil
}

func toReportItem(r entities.Report) reportItem {
	it := reportItem{
		ID:                 r.ID,
		OwnerID:            r.OwnerID,
		Kind:               string(r.Kind),
		Status:             string(r.Status),
		FleetTier:          string(r.FleetTier),
		UnitCount:          r.UnitCount,
		PaymentIntentID:    r.PaymentIntentID,
		CreditIntentID:     r.CreditIntentID,
		PaymentStatus:      r.PaymentStatus,
		ValuationsIncluded: r.ValuationsIncluded,
		ValuationsUsed:     r.ValuationsUsed,
		Deleted:            r.Deleted,
		CreatedAt:          r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          r.UpdatedAt.UTC().Format(time.RFC3339Nano),
		SubmittedAt:        formatOptionalTime(r.SubmittedAt),
		InProgressAt:       formatOptionalTime(r.InProgressAt),
		CompletedAt:        formatOptionalTime(r.CompletedAt),
		DeliveredAt:        formatOptionalTime(r.DeliveredAt),
		NeedMoreInfoAt:     formatOptionalTime(r.NeedMoreInfoAt),
		OverdueAt:          formatOptionalTime(r.OverdueAt),
		TurnaroundDeadline: formatOptionalTime(r.TurnaroundDeadline),
	}
	if r.AmountPaid != nil {
		it.AmountPaidMinor = r.AmountPaid.AmountMinor
		it.AmountPaidCurrency = r.AmountPaid.Currency
	}
	return it
}

func fromReportItem(it reportItem) entities.Report {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	r := entities.Report{
		ID:                 it.ID,
		OwnerID:            it.OwnerID,
		Kind:               entities.ReportKind(it.Kind),
		Status:             entities.ReportStatus(it.Status),
		FleetTier:          entities.FleetTier(it.FleetTier),
		UnitCount:          it.UnitCount,
		PaymentIntentID:    it.PaymentIntentID,
		CreditIntentID:     it.CreditIntentID,
		PaymentStatus:      it.PaymentStatus,
		ValuationsIncluded: it.ValuationsIncluded,
		ValuationsUsed:     it.ValuationsUsed,
		Deleted:            it.Deleted,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
		SubmittedAt:        parseOptionalTime(it.SubmittedAt),
		InProgressAt:       parseOptionalTime(it.InProgressAt),
		CompletedAt:        parseOptionalTime(it.CompletedAt),
		DeliveredAt:        parseOptionalTime(it.DeliveredAt),
		NeedMoreInfoAt:     parseOptionalTime(it.NeedMoreInfoAt),
		OverdueAt:          parseOptionalTime(it.OverdueAt),
		TurnaroundDeadline: parseOptionalTime(it.TurnaroundDeadline),
	}
	if it.AmountPaidMinor != 0 || it.AmountPaidCurrency != "" {
		m := entities.NewMoney(it.AmountPaidMinor, it.AmountPaidCurrency)
		r.AmountPaid = &m
	}
	return r
}
