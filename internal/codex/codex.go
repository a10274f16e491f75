// Package codex obfuscates sequential user ids for use in public storage
// paths. The mapping is keyed, one-way, and collision resistant; it is not
// encryption and is not meant to be reversed.
package codex

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
)

type Codex struct {
	key []byte
}

func New(secret string) *Codex {
	return &Codex{key: []byte(secret)}
}

// Encode maps a user id to a deterministic path-safe token.
func (c *Codex) Encode(userID int64) string {
	mac := hmac.New(sha256.New, c.key)
	mac.Write([]byte(strconv.FormatInt(userID, 10)))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
