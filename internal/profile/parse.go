package profile

import (
	"regexp"
	"strconv"
	"strings"
)

// ParseIDList splits a comma-separated id selector. Blank and non-numeric
// tokens are dropped.
func ParseIDList(raw *string) []int64 {
	if raw == nil {
		return nil
	}

	var ids []int64
	for _, token := range strings.Split(*raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseZipCodes accepts comma-separated or newline-separated zip codes.
func ParseZipCodes(raw string) []string {
	if !strings.Contains(raw, ",") {
		raw = strings.NewReplacer("\r\n", ",", "\n", ",").Replace(raw)
	}
	raw = whitespace.ReplaceAllString(raw, "")

	var zips []string
	for _, zip := range strings.Split(raw, ",") {
		if zip != "" {
			zips = append(zips, zip)
		}
	}
	return zips
}

var domainJunk = regexp.MustCompile(`[^A-Za-z0-9\-.\n]`)

// SanitizeDomains strips everything but alphanumerics, hyphens, dots and
// newlines, then returns the non-empty lines.
func SanitizeDomains(raw string) []string {
	cleaned := domainJunk.ReplaceAllString(strings.TrimSpace(raw), "")

	var domains []string
	for _, d := range strings.Split(cleaned, "\n") {
		if d != "" {
			domains = append(domains, d)
		}
	}
	return domains
}
