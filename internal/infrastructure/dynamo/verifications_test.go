package dynamo

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travelpoint-api/internal/domain"
)

// fakeTable keeps items keyed by "email|type".
type fakeTable struct {
	items  map[string]map[string]types.AttributeValue
	getErr error
}

func newFakeTable() *fakeTable {
	return &fakeTable{items: map[string]map[string]types.AttributeValue{}}
}

func itemKey(k map[string]types.AttributeValue) string {
	return k[fieldEmail].(*types.AttributeValueMemberS).Value + "|" + k[fieldType].(*types.AttributeValueMemberS).Value
}

func (f *fakeTable) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.items[itemKey(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeTable) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dynamodb.GetItemOutput{Item: f.items[itemKey(in.Key)]}, nil
}

func (f *fakeTable) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	delete(f.items, itemKey(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

// UpdateItem supports only the failure counter update: it honours attribute_exists on the
// key and the expiry bound carried in :now.
func (f *fakeTable) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	item, ok := f.items[itemKey(in.Key)]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{}
	}
	now, _ := strconv.ParseInt(in.ExpressionAttributeValues[":now"].(*types.AttributeValueMemberN).Value, 10, 64)
	if exp, ok := item[fieldExpiresAt].(*types.AttributeValueMemberN); ok {
		if v, _ := strconv.ParseInt(exp.Value, 10, 64); v <= now {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	n := 0
	if cur, ok := item[fieldFailures].(*types.AttributeValueMemberN); ok {
		n, _ = strconv.Atoi(cur.Value)
	}
	n++
	item[fieldFailures] = &types.AttributeValueMemberN{Value: strconv.Itoa(n)}
	return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{fieldFailures: item[fieldFailures]}}, nil
}

func TestVerificationStore_OTPRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewVerificationStore(newFakeTable(), "registration_verifications", 10*time.Minute)

	require.NoError(t, s.Save(ctx, "a@b.com", "123456"))

	ok, err := s.Validate(ctx, "a@b.com", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Validate(ctx, "a@b.com", "654321")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Delete(ctx, "a@b.com"))
	ok, err = s.Validate(ctx, "a@b.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerificationStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewVerificationStore(newFakeTable(), "t", 0)

	require.NoError(t, s.Save(ctx, "a@b.com", "111111"))
	require.NoError(t, s.Save(ctx, "a@b.com", "222222"))

	ok, _ := s.Validate(ctx, "a@b.com", "111111")
	assert.False(t, ok)
	ok, _ = s.Validate(ctx, "a@b.com", "222222")
	assert.True(t, ok)
}

func TestVerificationStore_ExpiredEntriesAreInvisible(t *testing.T) {
	ctx := context.Background()
	s := NewVerificationStore(newFakeTable(), "t", time.Minute)
	base := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time { return base }

	require.NoError(t, s.Save(ctx, "a@b.com", "123456"))
	require.NoError(t, s.Stash(ctx, &domain.RegistrationPayload{Email: "a@b.com"}))

	s.now = func() time.Time { return base.Add(2 * time.Minute) }

	ok, err := s.Validate(ctx, "a@b.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Peek(ctx, "a@b.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerificationStore_PendingRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewVerificationStore(newFakeTable(), "t", time.Minute)
	p := &domain.RegistrationPayload{Email: "a@b.com", FirstName: "Ann", Username: "annlee", PasswordHash: "$2a$10$digest"}

	require.NoError(t, s.Stash(ctx, p))

	got, err := s.Peek(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	require.NoError(t, s.Discard(ctx, "a@b.com"))
	_, err = s.Peek(ctx, "a@b.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerificationStore_RecordFailure(t *testing.T) {
	ctx := context.Background()
	s := NewVerificationStore(newFakeTable(), "t", time.Minute)
	base := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time { return base }

	n, err := s.RecordFailure(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Zero(t, n, "no code yet")

	require.NoError(t, s.Save(ctx, "a@b.com", "123456"))
	_, err = s.RecordFailure(ctx, "a@b.com")
	require.NoError(t, err)
	n, err = s.RecordFailure(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ok, err := s.Validate(ctx, "a@b.com", "123456")
	require.NoError(t, err)
	assert.True(t, ok, "the counter does not disturb the code")

	require.NoError(t, s.Save(ctx, "a@b.com", "654321"))
	n, _ = s.RecordFailure(ctx, "a@b.com")
	assert.Equal(t, 1, n, "a new code starts a new count")

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	n, err = s.RecordFailure(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Zero(t, n, "expired code")
}

func TestVerificationStore_GetErrorPropagates(t *testing.T) {
	tbl := newFakeTable()
	tbl.getErr = errors.New("throttled")
	s := NewVerificationStore(tbl, "t", 0)

	_, err := s.Validate(context.Background(), "a@b.com", "1")
	assert.ErrorContains(t, err, "throttled")
}
