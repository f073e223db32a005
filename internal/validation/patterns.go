package validation

import (
	"regexp"
	"strings"
)

// suspiciousPatterns is a fixed blocklist of SQL injection and XSS
// signatures. It is a heuristic, not a parser: false negatives are expected
// and acceptable because every persistence call is independently
// parameterized. False positives on legitimate text (e.g. a title that
// genuinely contains "DROP ... TABLE") are a known tradeoff; do not loosen
// the patterns without flagging that tradeoff.
var suspiciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bUNION\b.*\bSELECT\b`),
	regexp.MustCompile(`(?i)\bDROP\b.*\bTABLE\b`),
	regexp.MustCompile(`(?i)\bINSERT\b.*\bINTO\b`),
	regexp.MustCompile(`(?i)\bUPDATE\b.*\bSET\b`),
	regexp.MustCompile(`(?i)\bDELETE\b.*\bFROM\b`),
	regexp.MustCompile(`(?i)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)onerror\s*=`),
	regexp.MustCompile(`(?i)onload\s*=`),
	regexp.MustCompile(`(?i)<iframe`),
	regexp.MustCompile(`--\s*$`),
	regexp.MustCompile(`(?i);\s*DROP`),
	regexp.MustCompile(`(?i)'\s*(OR|AND)\s*'?\d*'?\s*=\s*'?\d*`),
}

const suspiciousMessage = "Invalid input detected. Please remove special characters or SQL/script keywords."

// NotSuspicious fails with SuspiciousInput when the uppercased value matches
// any blocklisted signature. This is defense-in-depth only and must never be
// the sole SQL injection defense.
func NotSuspicious() Rule {
	return func(value string) *FieldError {
		if value == "" {
			return nil
		}
		upper := strings.ToUpper(value)
		for _, pattern := range suspiciousPatterns {
			if pattern.MatchString(upper) {
				return &FieldError{Code: CodeSuspiciousInput, Message: suspiciousMessage}
			}
		}
		return nil
	}
}
