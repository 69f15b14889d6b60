package id

import (
	"crypto/rand"
	"strings"

	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string. ULIDs are lexicographically sortable
// by creation time, so uploaded objects list in upload order.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// ObjectKey returns "<folder>/<ulid><ext>" with the ULID lowercased.
func ObjectKey(folder, ext string) string {
	return strings.Trim(folder, "/") + "/" + strings.ToLower(New()) + ext
}
