package http

import (
	"context"
	"io"

	"github.com/travelpoint-api/internal/application/auth"
	"github.com/travelpoint-api/internal/infrastructure/google"
	jwtinfra "github.com/travelpoint-api/internal/infrastructure/jwt"
	"github.com/travelpoint-api/internal/infrastructure/postgres"
	"github.com/travelpoint-api/internal/infrastructure/smtp"
	"github.com/travelpoint-api/internal/infrastructure/sns"
)

// ObjectStore is the minimal interface the router requires from an object storage backend.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo      *postgres.UserRepo
	FollowRepo    *postgres.FollowRepo
	PostRepo      *postgres.PostRepo
	GuideRepo     *postgres.GuideRepo
	EquipmentRepo *postgres.EquipmentRepo
	VehicleRepo   *postgres.VehicleRepo
	AuthorityRepo *postgres.AuthorityRepo
	BookingRepo   *postgres.BookingRepo

	// OTPs and Pending are usually the same backend: memory, redis or dynamo.
	OTPs    auth.OTPStore
	Pending auth.PendingStore

	Objects     ObjectStore
	Mailer      smtp.Mailer
	SMSSender   sns.SMSSender    // nil disables booking notifications
	Google      *google.Verifier // nil disables Google login
	JWTProvider *jwtinfra.Provider
}
