package auth

import "testing"

func TestGenerateAuthorKey(t *testing.T) {
	key1 := GenerateAuthorKey("author-123", "salt1")
	key2 := GenerateAuthorKey("author-123", "salt1")

	if key1 != key2 {
		t.Error("same author and salt should produce the same key")
	}

	key3 := GenerateAuthorKey("author-456", "salt1")
	if key1 == key3 {
		t.Error("different authors should produce different keys")
	}

	key4 := GenerateAuthorKey("author-123", "salt2")
	if key1 == key4 {
		t.Error("different salts should produce different keys")
	}
}

func TestValidateAuthorKey(t *testing.T) {
	salt := "test-salt"
	authorID := "author-123"
	key := GenerateAuthorKey(authorID, salt)

	if err := ValidateAuthorKey(authorID, key, salt); err != nil {
		t.Errorf("valid key rejected: %v", err)
	}

	if err := ValidateAuthorKey(authorID, "wrong-key", salt); err == nil {
		t.Error("invalid key accepted")
	}

	if err := ValidateAuthorKey("author-456", key, salt); err == nil {
		t.Error("key accepted for the wrong author")
	}

	if err := ValidateAuthorKey(authorID, key, "wrong-salt"); err == nil {
		t.Error("key accepted under the wrong salt")
	}
}
