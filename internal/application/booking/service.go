package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/travelpoint-api/internal/domain"
	"github.com/travelpoint-api/internal/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateBookingRequest) (*domain.Booking, error)
	Get(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, page domain.Page) ([]domain.Booking, error)
}

type bookingStore interface {
	Create(ctx context.Context, b *domain.Booking) error
	Get(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, page domain.Page) ([]domain.Booking, error)
}

type userLookup interface {
	Get(ctx context.Context, id int64) (*domain.User, error)
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type ServiceDeps struct {
	BookingRepo bookingStore
	UserRepo    userLookup
	SMS         smsSender // nil disables provider notifications
}

type service struct {
	repo  bookingStore
	users userLookup
	sms   smsSender
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.BookingRepo, users: deps.UserRepo, sms: deps.SMS}
}

func (s *service) Create(ctx context.Context, req domain.CreateBookingRequest) (*domain.Booking, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Invalid(err.Error())
	}
	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}
	b := &domain.Booking{
		Type:        req.Type,
		ProviderID:  req.ProviderID,
		CustomerID:  req.CustomerID,
		ItemID:      req.ItemID,
		BookDate:    req.BookDate,
		BookTime:    req.BookTime,
		ServiceDate: req.ServiceDate,
		ServiceTime: req.ServiceTime,
		DeliverDate: req.DeliverDate,
		DeliverTime: req.DeliverTime,
		Quantity:    req.Quantity,
		Status:      status,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	s.notifyProvider(ctx, b)
	return b, nil
}

// notifyProvider texts the provider about a new booking. Failures are logged only.
func (s *service) notifyProvider(ctx context.Context, b *domain.Booking) {
	if s.sms == nil {
		return
	}
	provider, err := s.users.Get(ctx, b.ProviderID)
	if err != nil {
		slog.Warn("booking notification skipped", "booking_id", b.BookingID, "err", err)
		return
	}
	if provider.PhoneNumber == "" {
		return
	}
	msg := fmt.Sprintf("TravelPoint: new %s booking #%d for %s at %s (qty %d).",
		b.Type, b.BookingID, b.BookDate, b.BookTime, b.Quantity)
	if err := s.sms.SendSMS(ctx, provider.PhoneNumber, msg); err != nil {
		slog.Error("booking notification failed", "booking_id", b.BookingID, "provider_id", b.ProviderID, "err", err)
	}
}

func (s *service) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("Booking")
	}
	return b, err
}

func (s *service) List(ctx context.Context, page domain.Page) ([]domain.Booking, error) {
	return s.repo.List(ctx, page)
}
