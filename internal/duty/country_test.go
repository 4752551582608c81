package duty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"customsduty/internal/duty"
)

func TestResolveCountry(t *testing.T) {
	reference := []string{"US,U S A", "JP,JAPAN", "DE, GERMANY", "CN,CHINA"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty input", "", duty.DefaultCountry},
		{"blank input", "   ", duty.DefaultCountry},
		{"by code", "jp", "JP,JAPAN"},
		{"by name", " japan ", "JP,JAPAN"},
		{"by whole entry", "us,u s a", "US,U S A"},
		{"name with spaces in entry", "germany", "DE, GERMANY"},
		{"no match", "ATLANTIS", duty.DefaultCountry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, duty.ResolveCountry(tt.input, reference))
		})
	}
}

func TestResolveCountry_Idempotent(t *testing.T) {
	for _, entry := range duty.ReferenceCountries {
		once := duty.ResolveCountry(entry, duty.ReferenceCountries)
		assert.Equal(t, entry, once)
		assert.Equal(t, once, duty.ResolveCountry(once, duty.ReferenceCountries))
	}
}

func TestResolveCountry_FirstMatchWins(t *testing.T) {
	reference := []string{"KR,KOREA", "KP,KOREA"}
	assert.Equal(t, "KR,KOREA", duty.ResolveCountry("korea", reference))
}

func TestResolveCountry_EmptyReference(t *testing.T) {
	assert.Equal(t, duty.DefaultCountry, duty.ResolveCountry("JP", nil))
}
