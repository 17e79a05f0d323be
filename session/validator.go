package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// IsValid reports whether token's embedded expiry lies after now. It is a
// purely local check: the token payload is decoded, never verified, so a
// token judged valid here may still be rejected by the server. False on any
// structural or parse failure.
func IsValid(token string, now time.Time) bool {
	expMillis, err := tokenExpiry(token)
	if err != nil {
		return false
	}
	return now.UnixMilli() < expMillis
}

// tokenExpiry extracts the exp claim (seconds since epoch) from a compact
// JWT and returns it in milliseconds.
func tokenExpiry(token string) (int64, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return 0, errors.New("token is not in compact JWS form")
	}
	payload, err := decodeSegment(parts[1])
	if err != nil {
		return 0, err
	}
	var claims struct {
		Exp *float64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return 0, err
	}
	if claims.Exp == nil {
		return 0, errors.New("token has no exp claim")
	}
	return int64(*claims.Exp * 1000), nil
}

// decodeSegment handles both unpadded (per RFC 7515) and padded base64url.
func decodeSegment(seg string) ([]byte, error) {
	if b, err := base64.RawURLEncoding.DecodeString(seg); err == nil {
		return b, nil
	}
	return base64.URLEncoding.DecodeString(seg)
}
