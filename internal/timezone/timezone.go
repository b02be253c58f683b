package timezone

import (
	"errors"
	"strings"
	"time"
)

// DefaultTimezone é o fuso de referência das consultas.
const DefaultTimezone = "America/Fortaleza"

var ErrInvalidDateTime = errors.New("invalid_date_time")

// Fortaleza não tem horário de verão; o offset fixo cobre ambientes sem tzdata.
var reference = func() *time.Location {
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.FixedZone("-03", -3*60*60)
}()

// layouts sem offset são interpretados no fuso de referência
var localLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func Location() *time.Location {
	return reference
}

func Now() time.Time {
	return time.Now().In(reference)
}

// In normaliza t para o fuso de referência.
func In(t time.Time) time.Time {
	return t.In(reference)
}

// ParseDateTime aceita RFC 3339 ou data e hora locais ("2006-01-02 15:04").
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDateTime
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(reference), nil
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, reference); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDateTime
}

// ParseDate interpreta "2006-01-02" como meia-noite no fuso de referência.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), reference)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime
	}
	return t, nil
}
