// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package sec

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"net/url"
	"time"
)

// # Time-Based One-Time Passwords (RFC 6238)
//
// Used by accounts enrolled with the authenticator two-factor method.
// Parameters are fixed to what the common authenticator apps expect:
// SHA-1, 30-second step, 6 digits.

const (
	totpStep   = 30 * time.Second
	totpDigits = 6

	// totpWindow is the number of adjacent time steps accepted on either
	// side of the current one, absorbing clock drift and typing delay.
	totpWindow = 1
)

// totpEncoding is unpadded base32, the alphabet authenticator apps scan.
var totpEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateTOTPSecret returns a new random shared secret, base32-encoded.
func GenerateTOTPSecret() (string, error) {
	buffer := make([]byte, 20)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("sec: failed to generate totp secret: %w", err)
	}
	return totpEncoding.EncodeToString(buffer), nil
}

// TOTPCode computes the code for a secret at the given instant.
func TOTPCode(secret string, at time.Time) (string, error) {
	key, err := totpEncoding.DecodeString(secret)
	if err != nil {
		return "", fmt.Errorf("sec: invalid totp secret: %w", err)
	}
	return hotp(key, uint64(at.Unix())/uint64(totpStep.Seconds())), nil
}

// ValidateTOTP reports whether a code is valid for the secret at the given
// instant, accepting adjacent time steps within the drift window.
func ValidateTOTP(secret, code string, at time.Time) bool {
	key, err := totpEncoding.DecodeString(secret)
	if err != nil {
		return false
	}

	counter := int64(at.Unix()) / int64(totpStep.Seconds())
	for offset := -int64(totpWindow); offset <= int64(totpWindow); offset++ {
		candidate := counter + offset
		if candidate < 0 {
			continue
		}
		if hmac.Equal([]byte(hotp(key, uint64(candidate))), []byte(code)) {
			return true
		}
	}
	return false
}

// OtpauthURL builds the otpauth:// provisioning URI encoded into the
// enrollment QR code.
func OtpauthURL(secret, accountName, issuer string) string {
	values := url.Values{}
	values.Set("secret", secret)
	values.Set("issuer", issuer)
	values.Set("algorithm", "SHA1")
	values.Set("digits", fmt.Sprintf("%d", totpDigits))
	values.Set("period", fmt.Sprintf("%d", int(totpStep.Seconds())))

	return fmt.Sprintf("otpauth://totp/%s:%s?%s",
		url.PathEscape(issuer), url.PathEscape(accountName), values.Encode())
}

// hotp computes the RFC 4226 truncated counter-based code.
func hotp(key []byte, counter uint64) string {
	var message [8]byte
	binary.BigEndian.PutUint64(message[:], counter)

	mac := hmac.New(sha1.New, key)
	mac.Write(message[:])
	digest := mac.Sum(nil)

	offset := digest[len(digest)-1] & 0x0f
	truncated := binary.BigEndian.Uint32(digest[offset:offset+4]) & 0x7fffffff

	return fmt.Sprintf("%06d", truncated%1000000)
}
