package google

import (
	"context"
	"fmt"

	"github.com/travelpoint-api/internal/domain"
	"google.golang.org/api/idtoken"
)

// Payload is the identity a verified Google ID token vouches for.
type Payload struct {
	Subject string
	Email   string
	Name    string
}

type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// Verifier checks Google ID tokens issued for one OAuth client.
type Verifier struct {
	clientID string
	validate validateFunc
}

func NewVerifier(clientID string) *Verifier {
	return &Verifier{clientID: clientID, validate: idtoken.Validate}
}

// Verify accepts only tokens for this client whose email Google has verified.
// Every rejection wraps domain.ErrUnauthorized.
func (v *Verifier) Verify(ctx context.Context, token string) (*Payload, error) {
	p, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google token: %w", domain.ErrUnauthorized)
	}
	email, _ := p.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("google token has no email: %w", domain.ErrUnauthorized)
	}
	if verified, _ := p.Claims["email_verified"].(bool); !verified {
		return nil, fmt.Errorf("google email is not verified: %w", domain.ErrUnauthorized)
	}
	name, _ := p.Claims["name"].(string)
	return &Payload{Subject: p.Subject, Email: email, Name: name}, nil
}
