package utils

import (
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token := EncodeLegacyToken(userID)
	decodedID, issuedAt, err := DecodeLegacyToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, decodedID)
	assert.Greater(t, issuedAt, int64(0))
}

func TestLegacyTokenZeroTimestampStillDecodes(t *testing.T) {
	userID := uuid.New()
	raw := fmt.Sprintf("%s:0", userID.String())
	token := base64.StdEncoding.EncodeToString([]byte(raw))

	decodedID, issuedAt, err := DecodeLegacyToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, decodedID)
	assert.Equal(t, int64(0), issuedAt)
}

func TestDecodeLegacyTokenMalformed(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"not base64", "!!not-base64!!"},
		{"no separator", base64.StdEncoding.EncodeToString([]byte("just-a-string"))},
		{"bad uuid", base64.StdEncoding.EncodeToString([]byte("not-a-uuid:12345"))},
		{"bad timestamp", base64.StdEncoding.EncodeToString([]byte(uuid.New().String() + ":yesterday"))},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeLegacyToken(tc.token)
			assert.Error(t, err)
		})
	}
}
