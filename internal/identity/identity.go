// Package identity turns the caller identity supplied by the auth layer into
// a stable person id.
package identity

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/nikmy/interviewme/pkg/errors"
)

var ErrAnonymous = errors.Error("caller identity is not available")

type Identity struct {
	ID    string
	Email string
}

// Resolve returns id when it is set. Otherwise the id is derived from the
// email, so the same email always maps to the same person.
func Resolve(id, email string) (Identity, error) {
	email = strings.TrimSpace(email)
	id = strings.TrimSpace(id)

	if id != "" {
		return Identity{ID: id, Email: email}, nil
	}

	if email == "" {
		return Identity{}, ErrAnonymous
	}

	return Identity{ID: FromEmail(email), Email: email}, nil
}

// FromEmail is the 32-bit polynomial string hash of email over UTF-16 code
// units, formatted as a signed decimal. It matches ids issued by the legacy
// auth layer.
func FromEmail(email string) string {
	var h int32
	for _, unit := range utf16.Encode([]rune(email)) {
		h = 31*h + int32(unit)
	}
	return strconv.FormatInt(int64(h), 10)
}
