package generator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	nonWordChars = regexp.MustCompile(`[^\w\s-]`)
	spaceRuns    = regexp.MustCompile(`[-\s]+`)
)

// GenerateCourseID returns a unique course identifier
func GenerateCourseID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "bedrock_course_" + hex[:12]
}

// GenerateSlug derives a URL-friendly slug from a title. A time-derived
// suffix keeps slugs distinct even when two titles normalize to the same
// base string.
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = nonWordChars.ReplaceAllString(slug, "")
	slug = spaceRuns.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > 40 {
		slug = slug[:40]
	}

	ts := fmt.Sprintf("%d", time.Now().UnixNano())
	unique := slug + "-" + ts[len(ts)-6:]

	if len(unique) > 50 {
		unique = unique[:50]
	}
	return unique
}
