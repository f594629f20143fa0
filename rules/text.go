package rules

import (
	"regexp"
	"strings"
)

var (
	controlRuns = regexp.MustCompile(`[\r\n\t]+`)
	spaceRuns   = regexp.MustCompile(`\s{2,}`)
)

// SanitizeText trims free text and collapses line breaks, tabs and repeated spaces
func SanitizeText(s string) string {
	s = strings.TrimSpace(s)
	s = controlRuns.ReplaceAllString(s, " ")
	return spaceRuns.ReplaceAllString(s, " ")
}

// NormalizeTags trims and lower-cases tags, dropping empties and duplicates
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(SanitizeText(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// AnonymizeEmail masks the local part of an address for logs, j***e@example.com
func AnonymizeEmail(email string) string {
	user, domain, ok := strings.Cut(email, "@")
	if !ok || user == "" || domain == "" {
		return email
	}
	if len(user) <= 2 {
		return user[:1] + "***@" + domain
	}
	return user[:1] + "***" + user[len(user)-1:] + "@" + domain
}
