package google

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travelpoint-api/internal/domain"
	"google.golang.org/api/idtoken"
)

func returning(claims map[string]interface{}, err error) validateFunc {
	return func(context.Context, string, string) (*idtoken.Payload, error) {
		if err != nil {
			return nil, err
		}
		return &idtoken.Payload{Subject: "g-1", Claims: claims}, nil
	}
}

func TestVerify_ExtractsIdentity(t *testing.T) {
	v := &Verifier{clientID: "cid", validate: func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
		assert.Equal(t, "tok", token)
		assert.Equal(t, "cid", aud)
		return &idtoken.Payload{Subject: "g-1", Claims: map[string]interface{}{
			"email": "a@b.com", "email_verified": true, "name": "Ann Lee",
		}}, nil
	}}

	p, err := v.Verify(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, &Payload{Subject: "g-1", Email: "a@b.com", Name: "Ann Lee"}, p)
}

func TestVerify_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		validate validateFunc
	}{
		{"invalid token", returning(nil, errors.New("bad audience"))},
		{"missing email", returning(map[string]interface{}{"email_verified": true}, nil)},
		{"unverified email", returning(map[string]interface{}{"email": "a@b.com", "email_verified": false}, nil)},
		{"verification claim absent", returning(map[string]interface{}{"email": "a@b.com"}, nil)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := &Verifier{clientID: "cid", validate: tc.validate}
			_, err := v.Verify(context.Background(), "tok")
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}
