package telemetry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSanitizer(t *testing.T) {
	tests := []struct {
		name  string
		level PIILevel
		salt  string
	}{
		{"none level", PIILevelNone, "chat-123"},
		{"hashed level", PIILevelHashed, "chat-456"},
		{"full level", PIILevelFull, "chat-789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSanitizer(tt.level, tt.salt)
			require.NotNil(t, s)
			assert.Equal(t, tt.level, s.level)
			assert.Equal(t, tt.salt, s.salt)
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		level    PIILevel
		email    string
		expected string
	}{
		{"none level", PIILevelNone, "jon@winterfell.com", "[REDACTED]"},
		{"full level", PIILevelFull, "jon@winterfell.com", "jon@winterfell.com"},
		{"empty string", PIILevelHashed, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSanitizer(tt.level, "chat-123")
			assert.Equal(t, tt.expected, s.SanitizeEmail(tt.email))
		})
	}
}

func TestSanitizeEmail_Hashed(t *testing.T) {
	s := NewSanitizer(PIILevelHashed, "chat-123")
	result := s.SanitizeEmail("arya@winterfell.com")

	assert.NotContains(t, result, "arya")
	assert.True(t, strings.HasPrefix(result, "[EMAIL:"))
	assert.Len(t, result, len("[EMAIL:]")+8)
}

func TestSanitizeContent_None(t *testing.T) {
	s := NewSanitizer(PIILevelNone, "chat-123")
	assert.Equal(t, "[REDACTED]", s.SanitizeContent("Winter is coming"))
}

func TestSanitizeContent_Full(t *testing.T) {
	s := NewSanitizer(PIILevelFull, "chat-123")
	input := "Write to jon@winterfell.com"
	assert.Equal(t, input, s.SanitizeContent(input))
}

func TestSanitizeContent_Hashed_Phone(t *testing.T) {
	s := NewSanitizer(PIILevelHashed, "chat-123")

	tests := []struct {
		name  string
		input string
	}{
		{"dashes", "Call me at 555-123-4567"},
		{"dots", "Call me at 555.123.4567"},
		{"spaces", "Call me at 555 123 4567"},
		{"no separator", "Call me at 5551234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.SanitizeContent(tt.input)
			assert.NotContains(t, result, "4567")
			assert.Contains(t, result, "[PHONE:")
			assert.Contains(t, result, "Call me at")
		})
	}
}

func TestSanitizeContent_MultiplePII(t *testing.T) {
	s := NewSanitizer(PIILevelHashed, "chat-123")
	input := "Ask Jon at jon@winterfell.com or 555-123-4567, the raven lands at 10.0.0.7."
	result := s.SanitizeContent(input)

	assert.NotContains(t, result, "jon@winterfell.com")
	assert.NotContains(t, result, "555-123-4567")
	assert.NotContains(t, result, "10.0.0.7")
	assert.Contains(t, result, "[EMAIL:")
	assert.Contains(t, result, "[PHONE:")
	assert.Contains(t, result, "[IP:")
	assert.Contains(t, result, "Ask Jon at")
}

func TestSanitizeContent_EmptyString(t *testing.T) {
	s := NewSanitizer(PIILevelHashed, "chat-123")
	assert.Equal(t, "", s.SanitizeContent(""))
}

func TestHash_Deterministic(t *testing.T) {
	s := NewSanitizer(PIILevelHashed, "chat-123")
	assert.Equal(t, s.hash("test@example.com"), s.hash("test@example.com"))
}

func TestHash_SaltSpecific(t *testing.T) {
	s1 := NewSanitizer(PIILevelHashed, "chat-123")
	s2 := NewSanitizer(PIILevelHashed, "chat-456")
	assert.NotEqual(t, s1.hash("test@example.com"), s2.hash("test@example.com"))
}

func BenchmarkSanitizeContent(b *testing.B) {
	s := NewSanitizer(PIILevelHashed, "chat-123")
	input := "Contact me at john@example.com or call 555-123-4567"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.SanitizeContent(input)
	}
}
