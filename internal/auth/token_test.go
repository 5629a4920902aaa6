package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("super-secret", 60)

	token, expiresAt, err := tm.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	subject, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestParseTokenExpired(t *testing.T) {
	tm := &TokenManager{secret: []byte("super-secret"), ttl: -time.Minute}

	token, _, err := tm.GenerateToken("user-123")
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("right-secret", 60).GenerateToken("user-123")
	require.NoError(t, err)

	_, err = NewTokenManager("wrong-secret", 60).ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenTamperedPayload(t *testing.T) {
	tm := NewTokenManager("super-secret", 60)

	token, _, err := tm.GenerateToken("user-123")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = tm.ParseToken(tampered)
	assert.Error(t, err)
}

func TestParseTokenMalformed(t *testing.T) {
	tm := NewTokenManager("super-secret", 60)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		_, err := tm.ParseToken(tok)
		assert.Error(t, err, "token %q", tok)
	}
}

func TestNewTokenManagerDefaultTTL(t *testing.T) {
	tm := NewTokenManager("super-secret", 0)
	assert.Equal(t, time.Hour, tm.ttl)
}
