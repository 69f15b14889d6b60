package dynamo

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// compositeKey builds a DynamoDB primary key with two string attributes (PK + SK).
func compositeKey(pkName, pkValue, skName, skValue string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		pkName: &types.AttributeValueMemberS{Value: pkValue},
		skName: &types.AttributeValueMemberS{Value: skValue},
	}
}

// expiresAt returns the epoch-seconds TTL attribute value, or 0 when ttl is disabled.
func expiresAt(now time.Time, ttl time.Duration) int64 {
	if ttl <= 0 {
		return 0
	}
	return now.Add(ttl).Unix()
}

// expired reports whether an item is past its TTL. DynamoDB deletes expired items
// lazily, so reads must check as well.
func expired(exp int64, now time.Time) bool {
	return exp != 0 && exp <= now.Unix()
}
