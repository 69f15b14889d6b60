package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/travelpoint-api/internal/domain"
	"github.com/travelpoint-api/internal/infrastructure/google"
	"github.com/travelpoint-api/internal/pkg/password"
	"github.com/travelpoint-api/internal/pkg/validate"
)

const (
	otpEmailSubject = "Your OTP Code"
	otpEmailBody    = "Your OTP code is: "
)

type Service interface {
	SubmitRegistration(ctx context.Context, req domain.RegisterRequest) error
	VerifyOTP(ctx context.Context, req domain.VerifyOTPRequest) (*domain.AuthResult, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error)
	LoginWithGoogle(ctx context.Context, req domain.GoogleLoginRequest) (*domain.AuthResult, error)
	CurrentUser(ctx context.Context, email string) (*domain.User, error)
}

// OTPStore holds at most one code per email; Save overwrites and clears the failure count.
// RecordFailure returns the number of wrong codes tried against the current code, or 0
// when no code is active.
type OTPStore interface {
	Save(ctx context.Context, email, code string) error
	Validate(ctx context.Context, email, code string) (bool, error)
	RecordFailure(ctx context.Context, email string) (int, error)
	Delete(ctx context.Context, email string) error
}

// PendingStore holds at most one unverified registration per email; Stash overwrites.
// Peek returns a domain.ErrNotFound-wrapped error when nothing is pending.
type PendingStore interface {
	Stash(ctx context.Context, p *domain.RegistrationPayload) error
	Peek(ctx context.Context, email string) (*domain.RegistrationPayload, error)
	Discard(ctx context.Context, email string) error
}

type userStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type tokenIssuer interface {
	Issue(subject string, userID int64, userType int) (string, error)
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

type googleVerifier interface {
	Verify(ctx context.Context, token string) (*google.Payload, error)
}

// CodeGenerator produces a fresh OTP code.
type CodeGenerator func() (string, error)

type ServiceDeps struct {
	OTPs    OTPStore
	Pending PendingStore
	Users   userStore
	Tokens  tokenIssuer
	Mailer  mailer
	Google  googleVerifier // nil disables Google login
	NewCode CodeGenerator  // defaults to SixDigitCode
	// SingleUseOTP deletes the code once it has produced an account.
	SingleUseOTP bool
	// MaxAttempts wrong codes discard the pending registration. Zero means unlimited.
	MaxAttempts int
}

type service struct {
	otps         OTPStore
	pending      PendingStore
	users        userStore
	tokens       tokenIssuer
	mailer       mailer
	google       googleVerifier
	newCode      CodeGenerator
	singleUseOTP bool
	maxAttempts  int
}

func NewService(d ServiceDeps) Service {
	newCode := d.NewCode
	if newCode == nil {
		newCode = SixDigitCode
	}
	return &service{
		otps:         d.OTPs,
		pending:      d.Pending,
		users:        d.Users,
		tokens:       d.Tokens,
		mailer:       d.Mailer,
		google:       d.Google,
		newCode:      newCode,
		singleUseOTP: d.SingleUseOTP,
		maxAttempts:  d.MaxAttempts,
	}
}

// SixDigitCode returns a uniformly random code in 000000-999999.
func SixDigitCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *service) SubmitRegistration(ctx context.Context, req domain.RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return domain.Invalid(err.Error())
	}
	hash, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %v: %w", err, domain.ErrInternal)
	}
	code, err := s.newCode()
	if err != nil {
		return fmt.Errorf("generate otp: %v: %w", err, domain.ErrInternal)
	}
	if err := s.otps.Save(ctx, req.Email, code); err != nil {
		return persistenceFailure("save otp", req.Email, err)
	}
	if err := s.pending.Stash(ctx, req.Payload(hash)); err != nil {
		return persistenceFailure("stash pending registration", req.Email, err)
	}
	if err := s.mailer.SendEmail(req.Email, otpEmailSubject, otpEmailBody+code); err != nil {
		slog.Error("otp email failed", "email", req.Email, "err", err)
		return domain.ErrNotification
	}
	slog.Info("registration pending verification", "email", req.Email)
	return nil
}

func (s *service) VerifyOTP(ctx context.Context, req domain.VerifyOTPRequest) (*domain.AuthResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Invalid(err.Error())
	}
	p, err := s.pending.Peek(ctx, req.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNoPendingRegistration
	}
	if err != nil {
		return nil, persistenceFailure("peek pending registration", req.Email, err)
	}

	ok, err := s.otps.Validate(ctx, req.Email, req.OTP)
	if err != nil {
		return nil, persistenceFailure("validate otp", req.Email, err)
	}
	if !ok {
		return nil, s.rejectCode(ctx, req.Email)
	}

	u := &domain.User{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Username:     p.Username,
		PhoneNumber:  p.PhoneNumber,
		Location:     p.Location,
		PasswordHash: p.PasswordHash,
		NICPassport:  p.NICPassport,
		Email:        p.Email,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, persistenceFailure("create user", req.Email, err)
	}

	result, err := s.issue(u.Email, u.UserID, u.Type)
	if err != nil {
		return nil, err
	}

	// The account exists now; failing to clear transient state must not fail the request.
	s.discardPending(ctx, req.Email, s.singleUseOTP)
	slog.Info("user registered", "email", u.Email, "user_id", u.UserID)
	return result, nil
}

// rejectCode counts a wrong code. Once maxAttempts is reached the registration is
// dropped and the caller must register again.
func (s *service) rejectCode(ctx context.Context, email string) error {
	if s.maxAttempts <= 0 {
		return domain.ErrInvalidOTP
	}
	n, err := s.otps.RecordFailure(ctx, email)
	if err != nil {
		return persistenceFailure("record otp failure", email, err)
	}
	if n < s.maxAttempts {
		return domain.ErrInvalidOTP
	}
	slog.Warn("otp attempts exhausted", "email", email, "attempts", n)
	s.discardPending(ctx, email, true)
	return domain.ErrTooManyOTPAttempts
}

func (s *service) discardPending(ctx context.Context, email string, deleteOTP bool) {
	if err := s.pending.Discard(ctx, email); err != nil {
		slog.Warn("failed to discard pending registration", "email", email, "err", err)
	}
	if deleteOTP {
		if err := s.otps.Delete(ctx, email); err != nil {
			slog.Warn("failed to delete otp", "email", email, "err", err)
		}
	}
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Invalid(err.Error())
	}
	u, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, persistenceFailure("get user", req.Email, err)
	}
	ok, err := password.Verify(req.Password, u.PasswordHash)
	if err != nil {
		slog.Error("stored password digest unreadable", "user_id", u.UserID, "err", err)
		return nil, fmt.Errorf("verify password: %w", domain.ErrInternal)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return s.issue(u.Email, u.UserID, u.Type)
}

func (s *service) LoginWithGoogle(ctx context.Context, req domain.GoogleLoginRequest) (*domain.AuthResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Invalid(err.Error())
	}
	if s.google == nil {
		return nil, fmt.Errorf("google login is not configured: %w", domain.ErrUnauthorized)
	}
	gp, err := s.google.Verify(ctx, req.IDToken)
	if err != nil {
		return nil, err
	}

	var userID int64
	var userType int
	u, err := s.users.GetByEmail(ctx, gp.Email)
	switch {
	case err == nil:
		userID, userType = u.UserID, u.Type
	case !errors.Is(err, domain.ErrNotFound):
		return nil, persistenceFailure("get user", gp.Email, err)
	}
	return s.issue(gp.Email, userID, userType)
}

func (s *service) CurrentUser(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, persistenceFailure("get user", email, err)
	}
	return u, nil
}

func (s *service) issue(email string, userID int64, userType int) (*domain.AuthResult, error) {
	tok, err := s.tokens.Issue(email, userID, userType)
	if err != nil {
		slog.Error("token issue failed", "email", email, "err", err)
		return nil, fmt.Errorf("issue token: %w", domain.ErrInternal)
	}
	return &domain.AuthResult{
		AccessToken: tok,
		TokenType:   domain.TokenTypeBearer,
		Email:       email,
		UserID:      userID,
		UserType:    userType,
	}, nil
}

// persistenceFailure logs the cause and returns the opaque persistence error.
func persistenceFailure(op, email string, err error) error {
	slog.Error(op+" failed", "email", email, "err", err)
	return domain.ErrPersistence
}
