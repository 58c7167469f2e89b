package utils

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"

	token, err := NewAccessToken(secret, 42, true, time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}
	if token.Token == "" {
		t.Fatal("empty token string")
	}

	claims, err := ParseAccessToken(secret, token.Token)
	if err != nil {
		t.Fatalf("ParseAccessToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("UserID = %d, want 42", claims.UserID)
	}
	if !claims.IsStaff {
		t.Fatal("IsStaff = false, want true")
	}
}

func TestParseAccessTokenRejects(t *testing.T) {
	const secret = "test-secret"

	good, err := NewAccessToken(secret, 7, false, time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}

	expired, err := NewAccessToken(secret, 7, false, -time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}

	tests := []struct {
		name   string
		secret string
		raw    string
	}{
		{"wrong secret", "other-secret", good.Token},
		{"garbage", secret, "not.a.token"},
		{"expired", secret, expired.Token},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAccessToken(tt.secret, tt.raw); err == nil {
				t.Fatal("ParseAccessToken() accepted an invalid token")
			}
		})
	}
}
