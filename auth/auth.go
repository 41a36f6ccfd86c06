package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidAuthorKey = errors.New("invalid author key")

// GenerateAuthorKey creates an HMAC-based key for an author ID.
// This is deterministic and verifiable, so nothing needs to be stored.
func GenerateAuthorKey(authorID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(authorID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAuthorKey checks that the provided key matches the author ID.
func ValidateAuthorKey(authorID, key, salt string) error {
	expected := GenerateAuthorKey(authorID, salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidAuthorKey
	}
	return nil
}
