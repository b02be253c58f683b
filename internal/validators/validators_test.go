package validators

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     error
	}{
		{"valid", "@Luis12345", nil},
		{"valid with cedilla upper", "çÇ#abcde", nil},
		{"J is outside the alphabet", "#Jjjjjjj", ErrPasswordWeak},
		{"J as the only uppercase", "#Jjkkkkk", ErrPasswordWeak},
		{"J does not block a valid mix", "#Kkjjjjj", nil},
		{"empty", "", ErrPasswordTooShort},
		{"six chars", "@Lu1s1", ErrPasswordTooShort},
		{"seven chars", "@Lu1s1a", nil},
		{"too long", "@L" + strings.Repeat("a", 199), ErrPasswordTooLong},
		{"exactly 200", "@L" + strings.Repeat("a", 198), nil},
		{"only lowercase", "luiscarlosmacedo", ErrPasswordWeak},
		{"only uppercase", "LUISCARLOSMACEDO", ErrPasswordWeak},
		{"only specials", "@!@@##*#@!%¨&*", ErrPasswordWeak},
		{"no special", "LuisCarlos123", ErrPasswordWeak},
		{"only digits", "1234567890", ErrPasswordWeak},
		{"accented lengths count runes", "Çç#çççç", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePassword(tt.password)
			if !errors.Is(got, tt.want) {
				t.Fatalf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestValidatePassword_ShortAlwaysRejected(t *testing.T) {
	for n := 0; n <= 6; n++ {
		p := strings.Repeat("A", n/2) + strings.Repeat("a", n-n/2)
		if n > 0 {
			p = "#" + p[1:]
		}
		if err := ValidatePassword(p); !errors.Is(err, ErrPasswordTooShort) {
			t.Fatalf("len %d: expected too short, got %v", n, err)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  error
	}{
		{"valid", "Luis11@gmail.com", nil},
		{"valid subdomain", "carlos@mail.example.com", nil},
		{"valid underscore and dot", "a_b.c@clinic.vet", nil},
		{"forbidden char", "L!uis123@gmail.com", ErrEmailForbiddenChar},
		{"forbidden dash", "luis-carlos@gmail.com", ErrEmailForbiddenChar},
		{"forbidden plus", "luis+tag@gmail.com", ErrEmailForbiddenChar},
		{"consecutive dots", "Luis..123@gmail.com", ErrEmailConsecutiveDots},
		{"space", "Luis 123@gmail.com", ErrEmailSpace},
		{"missing at", "Luis123gmail.com", ErrEmailMissingAt},
		{"local too short", "13@gmail.com", ErrEmailLocalTooShort},
		{"too long", strings.Repeat("a", 45) + "1232323232@gmail.com", ErrEmailTooLong},
		{"domain without dot", "edu121@gmail", ErrEmailDomainWithoutDot},
		{"short tld", "edu121@gmail.co", ErrEmailInvalidPattern},
		{"two ats", "edu121@gmail@x.com", ErrEmailInvalidPattern},
		{"accented local", "joão1@gmail.com", ErrEmailInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateEmail(tt.email)
			if !errors.Is(got, tt.want) {
				t.Fatalf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestValidateEmail_OrderFirstFailureWins(t *testing.T) {
	// forbidden char and consecutive dots at once: forbidden char is checked first
	if err := ValidateEmail("a!..b@x.com"); !errors.Is(err, ErrEmailForbiddenChar) {
		t.Fatalf("expected forbidden char, got %v", err)
	}
	// space and missing @: space is checked first
	if err := ValidateEmail("ab c"); !errors.Is(err, ErrEmailSpace) {
		t.Fatalf("expected space, got %v", err)
	}
}

func TestValidateCredentials_EmailBeforePassword(t *testing.T) {
	err := ValidateCredentials("13@gmail.com", "weak")
	if !errors.Is(err, ErrEmailLocalTooShort) {
		t.Fatalf("expected email violation first, got %v", err)
	}

	err = ValidateCredentials("Luis11@gmail.com", "weak")
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected password violation, got %v", err)
	}

	var v *Violation
	if !errors.As(err, &v) || v.Field != "password" {
		t.Fatalf("expected *Violation on field password, got %#v", err)
	}

	if err := ValidateCredentials("Luis11@gmail.com", "@Luis12345"); err != nil {
		t.Fatalf("expected valid credentials, got %v", err)
	}
}
