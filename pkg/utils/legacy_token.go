package utils

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Legacy mobile token: base64("<userID>:<unixTimestamp>"). Kept for
// compatibility with mobile clients that still hold these tokens. The
// timestamp is informational only and is never checked for expiry.

// EncodeLegacyToken builds a mobile token for the given user.
func EncodeLegacyToken(userID uuid.UUID) string {
	raw := fmt.Sprintf("%s:%d", userID.String(), time.Now().Unix())
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodeLegacyToken extracts the user ID from a mobile token. The issued-at
// timestamp is returned but callers must not treat it as an expiry.
func DecodeLegacyToken(token string) (uuid.UUID, int64, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("decode legacy token: %w", err)
	}

	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 {
		return uuid.Nil, 0, fmt.Errorf("malformed legacy token")
	}

	userID, err := uuid.Parse(parts[0])
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("legacy token user id: %w", err)
	}

	issuedAt, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("legacy token timestamp: %w", err)
	}

	return userID, issuedAt, nil
}
