package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssuer_RoundTrip(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	raw, err := iss.Issue(42, RoleVet)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := iss.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.SubjectID != 42 || claims.Role != RoleVet {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestIssuer_Expired(t *testing.T) {
	iss := NewIssuer("secret", time.Minute)
	base := time.Now()
	iss.now = func() time.Time { return base }

	raw, _ := iss.Issue(1, RoleUser)

	iss.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, err := iss.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestIssuer_WrongSecret(t *testing.T) {
	raw, _ := NewIssuer("secret", time.Hour).Issue(1, RoleUser)
	if _, err := NewIssuer("other", time.Hour).Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_RejectsOtherAlgorithms(t *testing.T) {
	claims := tokenClaims{
		Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	if _, err := NewIssuer("secret", time.Hour).Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected alg none to be rejected, got %v", err)
	}
}

func TestIssuer_RejectsUnknownRole(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	raw, _ := iss.Issue(1, Role("admin"))
	if _, err := iss.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected unknown role to be rejected, got %v", err)
	}
}
