// Package listing manages the provider listings travellers can book or consult:
// guides, equipment, vehicles and authorities. Every listing starts out pending review.
package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/travelpoint-api/internal/domain"
)

// Column names used in partial update maps.
const (
	colName         = "name"
	colType         = "type"
	colDescription  = "description"
	colLocation     = "location"
	colLanguage     = "language"
	colPreference   = "preference"
	colPrice        = "price"
	colAvailability = "availability"
	colCondition    = "condition"
	colPricePerDay  = "price_per_day"
	colCapacity     = "capacity"
	colMilage       = "milage"
)

var errNoFields = fmt.Errorf("no fields to update: %w", domain.ErrBadRequest)

type store[T any] interface {
	Get(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, page domain.Page) ([]T, error)
	LatestFor(ctx context.Context, ownerID int64) (*T, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

type mediaStore interface {
	StoreImage(ctx context.Context, folder string, up domain.Upload) (string, error)
	StoreDocument(ctx context.Context, folder string, up domain.Upload) (string, error)
}

// core implements the reads, updates and deletes shared by every listing kind.
type core[T any] struct {
	repo     store[T]
	media    mediaStore
	resource string
	folder   string
}

func (c core[T]) notFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound(c.resource)
	}
	return err
}

func (c core[T]) Get(ctx context.Context, id int64) (*T, error) {
	v, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, c.notFound(err)
	}
	return v, nil
}

func (c core[T]) List(ctx context.Context, page domain.Page) ([]T, error) {
	return c.repo.List(ctx, page)
}

// Status returns the owner's most recent listing, which carries its review status.
func (c core[T]) Status(ctx context.Context, ownerID int64) (*T, error) {
	v, err := c.repo.LatestFor(ctx, ownerID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("no %s registration found for this user: %w", strings.ToLower(c.resource), domain.ErrNotFound)
	}
	return v, err
}

func (c core[T]) Delete(ctx context.Context, id int64) error {
	return c.notFound(c.repo.Delete(ctx, id))
}

func (c core[T]) update(ctx context.Context, id int64, updates map[string]interface{}) (*T, error) {
	if len(updates) == 0 {
		return nil, errNoFields
	}
	if err := c.repo.Update(ctx, id, updates); err != nil {
		return nil, c.notFound(err)
	}
	return c.Get(ctx, id)
}

// attachments stores the optional photo and document and returns their URLs.
func (c core[T]) attachments(ctx context.Context, photo, document *domain.Upload) (photoURL, documentURL *string, err error) {
	if photo != nil {
		url, err := c.media.StoreImage(ctx, c.folder+"/photos", *photo)
		if err != nil {
			return nil, nil, err
		}
		photoURL = &url
	}
	if document != nil {
		url, err := c.media.StoreDocument(ctx, c.folder+"/documents", *document)
		if err != nil {
			return nil, nil, err
		}
		documentURL = &url
	}
	return photoURL, documentURL, nil
}

// created maps an owner foreign-key miss to a user-not-found error.
func created(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrUserNotFound
	}
	return err
}

func setIf[V any](updates map[string]interface{}, col string, v *V) {
	if v != nil {
		updates[col] = *v
	}
}
