package session

import (
	"strings"
	"testing"
	"time"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

func testIdentity() *domain.Identity {
	return &domain.Identity{
		ID:            "cred_123",
		Email:         "jane.mwangi@clinic.co.ke",
		ProfileName:   "jane.mwangi",
		Role:          domain.RoleDoctor,
		HospitalName:  "Pumwani Maternity",
		LicenseNumber: "KMP-4521",
	}
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	token, err := codec.Encode(testIdentity())
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	got, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got.ID != "cred_123" || got.Email != "jane.mwangi@clinic.co.ke" {
		t.Fatalf("unexpected identity: %+v", got)
	}
	if got.Role != domain.RoleDoctor {
		t.Fatalf("expected doctor role, got %s", got.Role)
	}
	if got.ProfileName != "jane.mwangi" {
		t.Fatalf("profile name must be derived from email, got %q", got.ProfileName)
	}
	if got.HospitalName != "Pumwani Maternity" || got.LicenseNumber != "KMP-4521" {
		t.Fatalf("profile fields lost in round trip: %+v", got)
	}
}

func TestTokenCodec_Decode_Garbage(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c", "{\"id\":\"raw json\"}"} {
		if _, err := codec.Decode(token); err != domain.ErrInvalidSession {
			t.Fatalf("Decode(%q): expected ErrInvalidSession, got %v", token, err)
		}
	}
}

func TestTokenCodec_Decode_Tampered(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	token, err := codec.Encode(testIdentity())
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	// flip the payload segment
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three JWT segments, got %d", len(parts))
	}
	tampered := parts[0] + ".eyJyb2xlIjoiYWRtaW4ifQ." + parts[2]

	if _, err := codec.Decode(tampered); err != domain.ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession for tampered token, got %v", err)
	}
}

func TestTokenCodec_Decode_WrongSecret(t *testing.T) {
	signer := NewTokenCodec("secret-a", time.Hour)
	verifier := NewTokenCodec("secret-b", time.Hour)

	token, err := signer.Encode(testIdentity())
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if _, err := verifier.Decode(token); err != domain.ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession across secrets, got %v", err)
	}
}

func TestTokenCodec_Decode_Expired(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Millisecond)

	token, err := codec.Encode(testIdentity())
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := codec.Decode(token); err != domain.ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession for expired token, got %v", err)
	}
}
