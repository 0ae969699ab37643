package jwt

import (
	"errors"
	"testing"
	"time"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestHMACService_AccessTokenRoundtrip(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateAccessToken(7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("UserID = %d, want 7", claims.UserID)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("TokenType = %q, want %q", claims.TokenType, TokenTypeAccess)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatal("access token classified as refresh")
	}
	if claims.Subject != "7" {
		t.Fatalf("Subject = %q, want %q", claims.Subject, "7")
	}
}

func TestHMACService_RefreshTokenRoundtrip(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateRefreshToken(11)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatal("refresh token not classified as refresh")
	}
	if claims.UserID != 11 {
		t.Fatalf("UserID = %d, want 11", claims.UserID)
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, err := svc.GenerateAccessToken(3)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestHMACService_WrongSecretRejected(t *testing.T) {
	svc := newTestService()
	other := NewHMACService("different-access", "different-refresh", 15*time.Minute, 24*time.Hour)

	token, err := svc.GenerateAccessToken(5)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := other.ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestHMACService_GarbageRejected(t *testing.T) {
	svc := newTestService()

	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestHMACService_MisconfiguredService(t *testing.T) {
	svc := NewHMACService("", "", 0, 0)

	if _, err := svc.GenerateAccessToken(1); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("access err = %v, want ErrTokenInvalid", err)
	}
	if _, err := svc.GenerateRefreshToken(1); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("refresh err = %v, want ErrTokenInvalid", err)
	}
}
