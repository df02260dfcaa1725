package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
)

// PIILevel defines the level of PII sanitization
type PIILevel string

const (
	// PIILevelNone redacts all user content
	PIILevelNone PIILevel = "none"
	// PIILevelHashed hashes PII with a per-deployment salt
	PIILevelHashed PIILevel = "hashed"
	// PIILevelFull performs no sanitization
	PIILevelFull PIILevel = "full"
)

// Sanitizer scrubs contact emails and message content before they reach logs and spans.
type Sanitizer struct {
	level PIILevel
	salt  string

	emailPattern *regexp.Regexp
	phonePattern *regexp.Regexp
	ipv4Pattern  *regexp.Regexp
}

// NewSanitizer creates a new PII sanitizer. An unknown level behaves like PIILevelHashed.
func NewSanitizer(level PIILevel, salt string) *Sanitizer {
	return &Sanitizer{
		level:        level,
		salt:         salt,
		emailPattern: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
		phonePattern: regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
		ipv4Pattern:  regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
	}
}

// SanitizeEmail renders a contact email according to the configured level.
func (s *Sanitizer) SanitizeEmail(email string) string {
	if email == "" {
		return ""
	}

	switch s.level {
	case PIILevelNone:
		return "[REDACTED]"
	case PIILevelFull:
		return email
	default:
		return fmt.Sprintf("[EMAIL:%s]", s.hash(email))
	}
}

// SanitizeContent sanitizes free text such as message content.
func (s *Sanitizer) SanitizeContent(input string) string {
	switch s.level {
	case PIILevelNone:
		return "[REDACTED]"
	case PIILevelFull:
		return input
	default:
		return s.hashPII(input)
	}
}

// hashPII detects and hashes PII in the input string
func (s *Sanitizer) hashPII(input string) string {
	result := s.emailPattern.ReplaceAllStringFunc(input, func(match string) string {
		return fmt.Sprintf("[EMAIL:%s]", s.hash(match))
	})

	result = s.phonePattern.ReplaceAllStringFunc(result, func(match string) string {
		return fmt.Sprintf("[PHONE:%s]", s.hash(match))
	})

	return s.ipv4Pattern.ReplaceAllStringFunc(result, func(match string) string {
		return fmt.Sprintf("[IP:%s]", s.hash(match))
	})
}

// hash creates a SHA-256 hash with the salt
func (s *Sanitizer) hash(data string) string {
	h := sha256.New()
	h.Write([]byte(data + s.salt))
	// first 8 chars are enough to correlate log lines
	return hex.EncodeToString(h.Sum(nil))[:8]
}
