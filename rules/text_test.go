package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  headache  ", "headache"},
		{"sore\nthroat\r\n\tand cough", "sore throat and cough"},
		{"too    many   spaces", "too many spaces"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeText(tt.in))
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Fever", "fever", "", "  ", "Night Sweats"})
	assert.Equal(t, []string{"fever", "night sweats"}, got)
}

func TestAnonymizeEmail(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"jane@example.com", "j***e@example.com"},
		{"jo@example.com", "j***@example.com"},
		{"j@example.com", "j***@example.com"},
		{"not-an-email", "not-an-email"},
		{"@example.com", "@example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AnonymizeEmail(tt.in))
	}
}
