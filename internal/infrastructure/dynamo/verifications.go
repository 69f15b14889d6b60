package dynamo

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/travelpoint-api/internal/domain"
)

// ItemAPI is the subset of the DynamoDB client used by VerificationStore.
type ItemAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type verificationItem struct {
	Email     string                      `dynamodbav:"email"`
	Type      string                      `dynamodbav:"type"`
	Code      string                      `dynamodbav:"code,omitempty"`
	Payload   *domain.RegistrationPayload `dynamodbav:"payload,omitempty"`
	Failures  int                         `dynamodbav:"failures,omitempty"`
	ExpiresAt int64                       `dynamodbav:"expires_at,omitempty"`
}

// VerificationStore keeps OTP codes and pending registrations in one table.
// PK: email, SK: type ("otp" | "pending")
type VerificationStore struct {
	client    ItemAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

func NewVerificationStore(client ItemAPI, tableName string, ttl time.Duration) *VerificationStore {
	return &VerificationStore{client: client, tableName: tableName, ttl: ttl, now: time.Now}
}

func (s *VerificationStore) Save(ctx context.Context, email, code string) error {
	return s.put(ctx, &verificationItem{Email: email, Type: typeOTP, Code: code})
}

func (s *VerificationStore) Validate(ctx context.Context, email, code string) (bool, error) {
	it, err := s.get(ctx, email, typeOTP)
	if err != nil || it == nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(it.Code), []byte(code)) == 1, nil
}

// RecordFailure atomically bumps the failure count on the current code. A missing or
// expired code records nothing.
func (s *VerificationStore) RecordFailure(ctx context.Context, email string) (int, error) {
	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.tableName),
		Key:                 compositeKey(fieldEmail, email, fieldType, typeOTP),
		UpdateExpression:    aws.String("ADD #f :one"),
		ConditionExpression: aws.String("attribute_exists(#e) AND (attribute_not_exists(#x) OR #x > :now)"),
		ExpressionAttributeNames: map[string]string{
			"#f": fieldFailures,
			"#e": fieldEmail,
			"#x": fieldExpiresAt,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(s.now().Unix(), 10)},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("record otp failure: %w", err)
	}
	var n int
	if err := attributevalue.Unmarshal(out.Attributes[fieldFailures], &n); err != nil {
		return 0, fmt.Errorf("unmarshal otp failures: %w", err)
	}
	return n, nil
}

func (s *VerificationStore) Delete(ctx context.Context, email string) error {
	return s.delete(ctx, email, typeOTP)
}

func (s *VerificationStore) Stash(ctx context.Context, p *domain.RegistrationPayload) error {
	return s.put(ctx, &verificationItem{Email: p.Email, Type: typePending, Payload: p})
}

func (s *VerificationStore) Peek(ctx context.Context, email string) (*domain.RegistrationPayload, error) {
	it, err := s.get(ctx, email, typePending)
	if err != nil {
		return nil, err
	}
	if it == nil || it.Payload == nil {
		return nil, fmt.Errorf("pending registration: %w", domain.ErrNotFound)
	}
	return it.Payload, nil
}

func (s *VerificationStore) Discard(ctx context.Context, email string) error {
	return s.delete(ctx, email, typePending)
}

func (s *VerificationStore) put(ctx context.Context, it *verificationItem) error {
	it.ExpiresAt = expiresAt(s.now(), s.ttl)
	item, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("marshal verification: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put verification %s: %w", it.Type, err)
	}
	return nil
}

// get returns nil without error when the item is absent or expired.
func (s *VerificationStore) get(ctx context.Context, email, verType string) (*verificationItem, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            compositeKey(fieldEmail, email, fieldType, verType),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get verification %s: %w", verType, err)
	}
	if out.Item == nil {
		return nil, nil
	}
	var it verificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("unmarshal verification: %w", err)
	}
	if expired(it.ExpiresAt, s.now()) {
		return nil, nil
	}
	return &it, nil
}

func (s *VerificationStore) delete(ctx context.Context, email, verType string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       compositeKey(fieldEmail, email, fieldType, verType),
	})
	if err != nil {
		return fmt.Errorf("delete verification %s: %w", verType, err)
	}
	return nil
}
