// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package sec

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// GenerateSecureToken returns a URL-safe random token of the given byte length.
//
// Used for pending two-factor tokens: opaque, unguessable, never signed.
func GenerateSecureToken(byteLength int) (string, error) {
	buffer := make([]byte, byteLength)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("sec: failed to generate secure token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buffer), nil
}

// GenerateNumericCode returns a random numeric code of the given digit count.
//
// Used for two-factor verification codes delivered out of band. The code is
// uniformly distributed and may carry leading zeros.
func GenerateNumericCode(digits int) (string, error) {
	var code strings.Builder
	for i := 0; i < digits; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("sec: failed to generate verification code: %w", err)
		}
		code.WriteByte(byte('0' + n.Int64()))
	}
	return code.String(), nil
}

// HashToken returns the hex-encoded SHA-256 digest of a token.
//
// Stored values are hashes only, so a leaked store never yields usable
// tokens or verification codes.
func HashToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}

// VerifyTokenHash compares a plain token against a stored hash in constant time.
func VerifyTokenHash(token, storedHash string) bool {
	return hmac.Equal([]byte(HashToken(token)), []byte(storedHash))
}
