package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/travelpoint-api/internal/domain"
	"github.com/travelpoint-api/internal/pkg/id"
)

const (
	MaxImageBytes    = 20 << 20
	MaxDocumentBytes = 10 << 20
	// MaxImagePixels bounds width*height, since decoders allocate the full canvas from
	// the header before reading any pixel data.
	MaxImagePixels = 40_000_000

	// Stored images are scaled to 1/scaleDivisor of their original dimensions.
	scaleDivisor = 3
	jpegQuality  = 85
)

func init() {
	// pdfcpu otherwise creates a config directory under the user's home on first use.
	api.DisableConfigDir()
}

type Service interface {
	// StoreImage normalises an image to a downscaled JPEG and returns its URL.
	StoreImage(ctx context.Context, folder string, up domain.Upload) (string, error)
	// StoreDocument validates a PDF and returns its URL.
	StoreDocument(ctx context.Context, folder string, up domain.Upload) (string, error)
}

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

type service struct {
	store objectStore
}

func NewService(store objectStore) Service {
	return &service{store: store}
}

func (s *service) StoreImage(ctx context.Context, folder string, up domain.Upload) (string, error) {
	raw, err := readLimited(up.Reader, MaxImageBytes)
	if err != nil {
		return "", err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return "", domain.Invalid(fmt.Sprintf("%s is not a supported image", up.Filename))
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return "", domain.Invalid(fmt.Sprintf("%s exceeds %d pixels", up.Filename, MaxImagePixels))
	}
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return "", domain.Invalid(fmt.Sprintf("%s is not a supported image", up.Filename))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, downscale(img), imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	url, err := s.store.Upload(ctx, id.ObjectKey(folder, ".jpg"), &buf, "image/jpeg")
	if err != nil {
		slog.Error("image upload failed", "folder", folder, "err", err)
		return "", fmt.Errorf("store image: %v: %w", err, domain.ErrInternal)
	}
	return url, nil
}

func (s *service) StoreDocument(ctx context.Context, folder string, up domain.Upload) (string, error) {
	raw, err := readLimited(up.Reader, MaxDocumentBytes)
	if err != nil {
		return "", err
	}
	if err := api.Validate(bytes.NewReader(raw), model.NewDefaultConfiguration()); err != nil {
		return "", domain.Invalid(fmt.Sprintf("%s is not a valid PDF", up.Filename))
	}

	url, err := s.store.Upload(ctx, id.ObjectKey(folder, ".pdf"), bytes.NewReader(raw), "application/pdf")
	if err != nil {
		slog.Error("document upload failed", "folder", folder, "err", err)
		return "", fmt.Errorf("store document: %v: %w", err, domain.ErrInternal)
	}
	return url, nil
}

// downscale resizes img to a third of each dimension, never below 1px, and
// flattens it onto an opaque RGB canvas.
func downscale(img image.Image) image.Image {
	b := img.Bounds()
	w := max(b.Dx()/scaleDivisor, 1)
	h := max(b.Dy()/scaleDivisor, 1)
	resized := imaging.Resize(img, w, h, imaging.Lanczos)
	return imaging.Overlay(imaging.New(w, h, color.White), resized, image.Pt(0, 0), 1.0)
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if r == nil {
		return nil, domain.Invalid("empty upload")
	}
	raw, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %v: %w", err, domain.ErrBadRequest)
	}
	if int64(len(raw)) > limit {
		return nil, domain.Invalid(fmt.Sprintf("upload exceeds %d bytes", limit))
	}
	if len(raw) == 0 {
		return nil, domain.Invalid("empty upload")
	}
	return raw, nil
}
