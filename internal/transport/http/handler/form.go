package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/travelpoint-api/internal/domain"
)

const maxMemory = 32 << 20

// form reads typed multipart fields. The first conversion failure is kept in err
// and later reads become no-ops; opened files are released by Close.
type form struct {
	r       *http.Request
	err     error
	closers []io.Closer
}

func parseForm(r *http.Request) (*form, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", domain.ErrBadRequest)
	}
	return &form{r: r}, nil
}

func (f *form) Close() {
	for _, c := range f.closers {
		_ = c.Close()
	}
	if f.r.MultipartForm != nil {
		_ = f.r.MultipartForm.RemoveAll()
	}
}

// optString returns nil when the field is absent.
func (f *form) optString(key string) *string {
	vals, ok := f.r.MultipartForm.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	v := strings.TrimSpace(vals[0])
	return &v
}

func (f *form) text(key string) string {
	if v := f.optString(key); v != nil {
		return *v
	}
	return ""
}

func (f *form) fail(key, kind string) {
	if f.err == nil {
		f.err = domain.Invalid(fmt.Sprintf("field '%s' must be %s", key, kind))
	}
}

func (f *form) optInt64(key string) *int64 {
	v := f.optString(key)
	if v == nil || *v == "" {
		return nil
	}
	n, err := strconv.ParseInt(*v, 10, 64)
	if err != nil {
		f.fail(key, "an integer")
		return nil
	}
	return &n
}

func (f *form) integer(key string) int64 {
	if n := f.optInt64(key); n != nil {
		return *n
	}
	return 0
}

func (f *form) optInt(key string) *int {
	n := f.optInt64(key)
	if n == nil {
		return nil
	}
	i := int(*n)
	return &i
}

func (f *form) optFloat(key string) *float64 {
	v := f.optString(key)
	if v == nil || *v == "" {
		return nil
	}
	n, err := strconv.ParseFloat(*v, 64)
	if err != nil {
		f.fail(key, "a number")
		return nil
	}
	return &n
}

func (f *form) number(key string) float64 {
	if n := f.optFloat(key); n != nil {
		return *n
	}
	return 0
}

func (f *form) optBool(key string) *bool {
	v := f.optString(key)
	if v == nil || *v == "" {
		return nil
	}
	b, err := strconv.ParseBool(*v)
	if err != nil {
		f.fail(key, "a boolean")
		return nil
	}
	return &b
}

// int64List parses a comma separated list such as "3, 7,9".
func (f *form) int64List(key string) []int64 {
	v := f.optString(key)
	if v == nil || *v == "" {
		return nil
	}
	var out []int64
	for _, part := range strings.Split(*v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			f.fail(key, "a comma separated list of ids")
			return nil
		}
		out = append(out, n)
	}
	return out
}

// file returns the first upload under key, or nil when none was sent.
func (f *form) file(key string) *domain.Upload {
	headers := f.r.MultipartForm.File[key]
	if len(headers) == 0 {
		return nil
	}
	return f.open(key, headers[0])
}

func (f *form) files(key string) []domain.Upload {
	var out []domain.Upload
	for _, h := range f.r.MultipartForm.File[key] {
		if up := f.open(key, h); up != nil {
			out = append(out, *up)
		}
	}
	return out
}

func (f *form) open(key string, h *multipart.FileHeader) *domain.Upload {
	if f.err != nil {
		return nil
	}
	file, err := h.Open()
	if err != nil {
		f.fail(key, "a readable file")
		return nil
	}
	f.closers = append(f.closers, file)
	return &domain.Upload{
		Reader:      file,
		Filename:    h.Filename,
		ContentType: h.Header.Get("Content-Type"),
		Size:        h.Size,
	}
}
