// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/moviedb/internal/platform/sec"
)

const testSecret = "unit-test-secret"

// fakeClock is a settable time source shared by issue and verify.
type fakeClock struct {
	current time.Time
}

func (clock *fakeClock) Now() time.Time { return clock.current }

func newTokenService(t *testing.T, clock *fakeClock) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(testSecret, "movie-api", time.Hour, sec.WithClock(clock.Now))
	require.NoError(t, err)
	return service
}

/*
TestTokenService_RoundTrip verifies that an issued token verifies and carries its claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	service := newTokenService(t, clock)

	token, err := service.Issue("user-1", "alice")
	require.NoError(t, err)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, clock.current.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

/*
TestTokenService_Expiry checks the one-hour boundary with a simulated clock.
*/
func TestTokenService_Expiry(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		wantErr error
	}{
		{"fresh", 0, nil},
		{"fifty_nine_minutes", 59 * time.Minute, nil},
		{"one_hour_and_a_second", time.Hour + time.Second, sec.ErrTokenExpired},
		{"one_day", 24 * time.Hour, sec.ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{current: start}
			service := newTokenService(t, clock)

			token, err := service.Issue("user-1", "alice")
			require.NoError(t, err)

			clock.current = start.Add(tt.elapsed)
			_, err = service.Verify(token)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NotErrorIs(t, err, sec.ErrTokenInvalid)
			}
		})
	}
}

/*
TestTokenService_Tampered ensures any modification to the token is reported as invalid,
including on tokens that are also expired.
*/
func TestTokenService_Tampered(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{current: start}
	service := newTokenService(t, clock)

	token, err := service.Issue("user-1", "alice")
	require.NoError(t, err)
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	forgedPayload := base64.RawURLEncoding.EncodeToString([]byte(
		`{"sub":"admin","uid":"admin","unm":"mallory","iss":"movie-api","exp":4102444800}`,
	))
	expiredPayload := base64.RawURLEncoding.EncodeToString([]byte(
		`{"sub":"user-1","uid":"user-1","unm":"alice","iss":"movie-api","exp":1}`,
	))

	// Flip a character in the middle of the signature.
	signature := []byte(parts[2])
	middle := len(signature) / 2
	if signature[middle] == 'A' {
		signature[middle] = 'B'
	} else {
		signature[middle] = 'A'
	}

	tests := []struct {
		name  string
		token string
	}{
		{"forged_payload", parts[0] + "." + forgedPayload + "." + parts[2]},
		{"forged_expired_payload", parts[0] + "." + expiredPayload + "." + parts[2]},
		{"flipped_signature", parts[0] + "." + parts[1] + "." + string(signature)},
		{"missing_signature", parts[0] + "." + parts[1] + "."},
		{"malformed", "not.a.jwt"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Verify(tt.token)
			assert.ErrorIs(t, err, sec.ErrTokenInvalid)
			assert.NotErrorIs(t, err, sec.ErrTokenExpired)
		})
	}
}

/*
TestTokenService_ForeignTokens rejects tokens signed with another key or algorithm.
*/
func TestTokenService_ForeignTokens(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	service := newTokenService(t, clock)

	other, err := sec.NewTokenService("another-secret", "movie-api", time.Hour, sec.WithClock(clock.Now))
	require.NoError(t, err)
	foreign, err := other.Issue("user-1", "alice")
	require.NoError(t, err)

	_, err = service.Verify(foreign)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"uid": "user-1",
		"iss": "movie-api",
		"exp": clock.current.Add(time.Hour).Unix(),
	})
	noneToken, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.Verify(noneToken)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)

	wrongIssuer, err := sec.NewTokenService(testSecret, "someone-else", time.Hour, sec.WithClock(clock.Now))
	require.NoError(t, err)
	misissued, err := wrongIssuer.Issue("user-1", "alice")
	require.NoError(t, err)

	_, err = service.Verify(misissued)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)
}

/*
TestNewTokenService_RequiresSecret verifies that construction fails without a signing key.
*/
func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := sec.NewTokenService("", "movie-api", time.Hour)
	assert.ErrorIs(t, err, sec.ErrEmptySecret)

	_, err = sec.NewTokenService(testSecret, "movie-api", 0)
	assert.Error(t, err)
}
