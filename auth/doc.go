/*
Package auth provides author credential verification.

Write endpoints identify the caller with two headers: X-Author-Id names the
author and X-Author-Key proves it. Keys are HMAC-SHA256 over the author ID
with a server-side salt, so they are deterministic and need no storage:

	key := auth.GenerateAuthorKey(authorID, cfg.AuthorKeySalt)
	err := auth.ValidateAuthorKey(authorID, key, cfg.AuthorKeySalt)

Comparison uses hmac.Equal to stay constant-time.
*/
package auth
