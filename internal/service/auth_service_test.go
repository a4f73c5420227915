package service

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/atharvgarg18/iet-csbs-backend/internal/config"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func testAuthService() *AuthService {
	cfg := &config.Config{
		BcryptCost:   bcrypt.MinCost,
		SessionTTL:   7 * 24 * time.Hour,
		CookieSecure: true,
	}
	return NewAuthService(cfg, nil, nil, zerolog.Nop())
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if len(token) != sessionTokenBytes*2 {
		t.Errorf("token length = %d, want %d", len(token), sessionTokenBytes*2)
	}
	if _, err := hex.DecodeString(token); err != nil {
		t.Errorf("token is not hex: %v", err)
	}
}

func TestGenerateTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateToken()
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token after %d generations", i)
		}
		seen[token] = true
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	s := testAuthService()

	hash, err := s.HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals plaintext")
	}

	if err := s.CheckPassword(hash, "secret123"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := s.CheckPassword(hash, "wrong"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
}

func TestCookieMaxAge(t *testing.T) {
	s := testAuthService()
	if got := s.CookieMaxAge(); got != 7*24*3600 {
		t.Errorf("CookieMaxAge = %d, want %d", got, 7*24*3600)
	}
	if !s.CookieSecure() {
		t.Error("CookieSecure should reflect config")
	}
}
