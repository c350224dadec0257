package service

import "strings"

// maxSlugLength bounds derived slugs so CMS URLs stay manageable.
const maxSlugLength = 80

// Slug derives a URL-safe slug from a keyword: lower-cased, runs of
// non-alphanumeric characters collapsed to a single hyphen, truncated to a
// bounded length. Pure and deterministic, so retrying a failed publish
// targets the same CMS URL.
func Slug(keyword string) string {
	var b strings.Builder
	b.Grow(len(keyword))

	pendingHyphen := false
	for _, r := range strings.ToLower(keyword) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	slug := b.String()
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}
	return slug
}
